// Package host declares the small interfaces the page environment must
// provide: a drawing surface, a per-refresh frame scheduler, and a viewport
// intersection watcher. The core animation and reveal logic depend only on
// these, so they can run against synchronous fakes in tests.
package host

// Canvas is a 2D drawing surface sized to its container. The implementation
// owns all color choices; callers describe geometry and opacity only.
type Canvas interface {
	// Ready reports whether the surface can be drawn to. A canvas that is
	// not ready makes the particle field a silent no-op.
	Ready() bool

	// Size returns the current pixel dimensions of the surface.
	Size() (w, h float64)

	// Fade paints a translucent full-surface overlay in the background
	// color. Low alpha values leave trails from previous frames.
	Fade(alpha float64)

	// Dot draws a filled circle in the accent color at full opacity.
	Dot(x, y, r float64)

	// Line draws a line in the accent color at the given opacity in [0, 1].
	Line(x1, y1, x2, y2, opacity float64)
}

// FrameToken identifies a pending frame callback.
type FrameToken int

// FrameScheduler invokes a callback once on the next display refresh.
// A callback that wants to keep animating re-schedules itself.
type FrameScheduler interface {
	Schedule(fn func()) FrameToken

	// Cancel drops a pending callback. Cancelled tokens never fire.
	Cancel(tok FrameToken)
}

// IntersectionEvent reports the visible fraction of a watched section at the
// moment it crossed the watch threshold in either direction.
type IntersectionEvent struct {
	ID    string
	Ratio float64
}

// IntersectionWatcher reports threshold crossings for a set of sections.
type IntersectionWatcher interface {
	// Watch starts observing the given section IDs. The callback fires
	// whenever a section's visible fraction crosses the threshold.
	Watch(ids []string, threshold float64, fn func(IntersectionEvent))

	// UnwatchAll stops observing every section. No callbacks are delivered
	// afterwards.
	UnwatchAll()
}
