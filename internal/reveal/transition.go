package reveal

import "time"

const (
	// Duration is how long the fade/slide takes once a section is revealed.
	Duration = time.Second

	// HiddenOffset is the downward shift, in pixels, of a hidden section.
	HiddenOffset = 10.0
)

// Transition is the presentational side of a reveal: a progress clock that
// maps to an opacity ramp 0→1 and a vertical offset 10px→0 over Duration.
// It only ever moves forward; advance it while the section's flag is true.
type Transition struct {
	progress float64
}

// Advance moves the clock forward by dt, saturating at completion.
func (t *Transition) Advance(dt time.Duration) {
	if dt <= 0 || t.progress >= 1 {
		return
	}
	t.progress += float64(dt) / float64(Duration)
	if t.progress > 1 {
		t.progress = 1
	}
}

// Opacity is the current alpha in [0, 1].
func (t *Transition) Opacity() float64 { return t.progress }

// Offset is the current downward shift in pixels.
func (t *Transition) Offset() float64 { return HiddenOffset * (1 - t.progress) }

// Done reports whether the transition has finished.
func (t *Transition) Done() bool { return t.progress >= 1 }
