package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/obsidian-guide/internal/host"
)

// fakeWatcher hands the registered callback back to the test so events can
// be delivered synchronously.
type fakeWatcher struct {
	ids       []string
	threshold float64
	fn        func(host.IntersectionEvent)
	unwatched int
}

func (w *fakeWatcher) Watch(ids []string, threshold float64, fn func(host.IntersectionEvent)) {
	w.ids = ids
	w.threshold = threshold
	w.fn = fn
}

func (w *fakeWatcher) UnwatchAll() { w.unwatched++ }

func (w *fakeWatcher) deliver(id string, ratio float64) {
	w.fn(host.IntersectionEvent{ID: id, Ratio: ratio})
}

func TestObserverMarksSectionsIndependently(t *testing.T) {
	w := &fakeWatcher{}
	o := NewObserver(w, 0.1, nil)
	o.Start([]string{"concepts", "features"})

	require.NotNil(t, w.fn, "observer registered its callback")
	assert.Equal(t, 0.1, w.threshold)
	assert.False(t, o.Visible("concepts"))
	assert.False(t, o.Visible("features"))

	w.deliver("concepts", 0.5)

	assert.True(t, o.Visible("concepts"))
	assert.False(t, o.Visible("features"), "features waits for its own event")
}

func TestObserverIgnoresSubThresholdEvents(t *testing.T) {
	w := &fakeWatcher{}
	o := NewObserver(w, 0.1, nil)
	o.Start([]string{"hotkeys"})

	w.deliver("hotkeys", 0.05)
	assert.False(t, o.Visible("hotkeys"))

	w.deliver("hotkeys", 0.1)
	assert.True(t, o.Visible("hotkeys"), "threshold itself qualifies")
}

func TestObserverFlagsAreMonotonic(t *testing.T) {
	w := &fakeWatcher{}
	o := NewObserver(w, 0.1, nil)
	o.Start([]string{"plugins"})

	w.deliver("plugins", 0.9)
	require.True(t, o.Visible("plugins"))

	// Scrolling the section fully out of view reports a zero ratio; the
	// flag must survive it, and re-marking is a no-op.
	w.deliver("plugins", 0)
	w.deliver("plugins", 0.9)
	assert.True(t, o.Visible("plugins"))
}

func TestObserverStopDiscardsLateEvents(t *testing.T) {
	w := &fakeWatcher{}
	o := NewObserver(w, 0.1, nil)
	o.Start([]string{"themes"})
	o.Stop()

	assert.Equal(t, 1, w.unwatched)

	// Artificially deliver an event after teardown.
	w.deliver("themes", 1.0)
	assert.False(t, o.Visible("themes"))
}

func TestObserverThresholdFallback(t *testing.T) {
	o := NewObserver(&fakeWatcher{}, -1, nil)
	assert.Equal(t, DefaultThreshold, o.threshold)

	o = NewObserver(&fakeWatcher{}, 1.5, nil)
	assert.Equal(t, DefaultThreshold, o.threshold)
}

func TestTransitionRamp(t *testing.T) {
	var tr Transition
	assert.Equal(t, 0.0, tr.Opacity())
	assert.Equal(t, HiddenOffset, tr.Offset())

	tr.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, tr.Opacity(), 1e-9)
	assert.InDelta(t, 5.0, tr.Offset(), 1e-9)
	assert.False(t, tr.Done())

	tr.Advance(700 * time.Millisecond)
	assert.Equal(t, 1.0, tr.Opacity(), "progress saturates")
	assert.Equal(t, 0.0, tr.Offset())
	assert.True(t, tr.Done())

	tr.Advance(-time.Second)
	assert.Equal(t, 1.0, tr.Opacity(), "never moves backwards")
}
