package page

import "github.com/iburimskiy/obsidian-guide/internal/host"

// viewportWatcher is the scroll-driven host.IntersectionWatcher. The page
// publishes every section's visible fraction once per tick; the watcher
// edge-triggers the callback only when a fraction crosses the threshold,
// in either direction, matching how a real intersection observer reports.
type viewportWatcher struct {
	threshold float64
	fn        func(host.IntersectionEvent)
	above     map[string]bool
}

func newViewportWatcher() *viewportWatcher {
	return &viewportWatcher{}
}

func (w *viewportWatcher) Watch(ids []string, threshold float64, fn func(host.IntersectionEvent)) {
	w.threshold = threshold
	w.fn = fn
	w.above = make(map[string]bool, len(ids))
	for _, id := range ids {
		w.above[id] = false
	}
}

func (w *viewportWatcher) UnwatchAll() {
	w.fn = nil
	w.above = nil
}

// publish feeds one section's current visible fraction into the watcher.
// Unwatched IDs and non-crossing updates are dropped silently.
func (w *viewportWatcher) publish(id string, ratio float64) {
	if w.fn == nil {
		return
	}
	prev, ok := w.above[id]
	if !ok {
		return
	}
	above := ratio >= w.threshold
	if above == prev {
		return
	}
	w.above[id] = above
	w.fn(host.IntersectionEvent{ID: id, Ratio: ratio})
}
