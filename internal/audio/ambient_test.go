package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDroneStreamsBoundedSamples(t *testing.T) {
	s := drone()
	buf := make([][2]float64, 512)

	n, ok := s.Stream(buf)
	require.True(t, ok, "the drone never ends")
	require.Equal(t, len(buf), n)

	peak := 0.0
	for _, smp := range buf {
		assert.Equal(t, smp[0], smp[1], "drone is mono on both channels")
		if a := math.Abs(smp[0]); a > peak {
			peak = a
		}
	}
	assert.Greater(t, peak, 0.0, "not silent")
	assert.Less(t, peak, 0.2, "quiet enough to sit under the page")
}

func TestDroneIsContinuousAcrossCalls(t *testing.T) {
	s := drone()
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	s.Stream(a)
	s.Stream(b)

	// The phase keeps advancing, so the next buffer must not restart the
	// waveform at the first buffer's opening sample.
	assert.NotEqual(t, a[0][0], b[0][0])
}

func TestAmbientStopWithoutStart(t *testing.T) {
	amb := NewAmbient(nil)
	amb.Stop()
}
