// Package audio provides the optional ambient drone behind the page: two
// detuned sine partials at very low gain, generated on the fly so no audio
// assets ship with the binary.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(44100)

	baseHz   = 110.0
	fifthHz  = 164.81
	gain     = 0.04
	beatRate = 0.1 // slow amplitude wobble, Hz
)

// Ambient owns the speaker session for the drone.
type Ambient struct {
	logger  *zap.Logger
	ctrl    *beep.Ctrl
	playing bool
}

func NewAmbient(logger *zap.Logger) *Ambient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ambient{logger: logger}
}

// Start initializes the speaker and begins the drone. Errors mean no audio
// device; the caller logs and moves on.
func (a *Ambient) Start() error {
	if a.playing {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	a.ctrl = &beep.Ctrl{Streamer: drone()}
	speaker.Play(a.ctrl)
	a.playing = true
	a.logger.Debug("ambient drone started")
	return nil
}

// Stop silences and clears the speaker.
func (a *Ambient) Stop() {
	if !a.playing {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	a.playing = false
	a.logger.Debug("ambient drone stopped")
}

// drone builds the endless streamer. Phase state lives in the closure.
func drone() beep.Streamer {
	var t float64
	step := 1.0 / float64(sampleRate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			wobble := 0.75 + 0.25*math.Sin(2*math.Pi*beatRate*t)
			v := gain * wobble *
				(math.Sin(2*math.Pi*baseHz*t) + 0.6*math.Sin(2*math.Pi*fifthHz*t))
			samples[i][0] = v
			samples[i][1] = v
			t += step
		}
		return len(samples), true
	})
}
