// Package reveal flips page sections from hidden to visible the first time
// they scroll into view, and drives the presentational fade/slide that
// accompanies the flip.
package reveal

import (
	"go.uber.org/zap"

	"github.com/iburimskiy/obsidian-guide/internal/host"
)

// DefaultThreshold is the visible fraction of a section required to mark it
// revealed.
const DefaultThreshold = 0.1

// Observer watches a set of section IDs and records, monotonically, which
// of them have been on screen at least once. Flags are never reset; a
// section that scrolls back out of view stays revealed.
type Observer struct {
	watcher   host.IntersectionWatcher
	threshold float64
	logger    *zap.Logger

	active  bool
	visible map[string]bool
}

// NewObserver returns an inactive observer with the given threshold.
// A threshold outside (0, 1] falls back to DefaultThreshold.
func NewObserver(watcher host.IntersectionWatcher, threshold float64, logger *zap.Logger) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Observer{
		watcher:   watcher,
		threshold: threshold,
		logger:    logger,
	}
}

// Start begins watching the given sections. All flags start false.
func (o *Observer) Start(ids []string) {
	if o.active || o.watcher == nil {
		return
	}
	o.visible = make(map[string]bool, len(ids))
	o.active = true
	o.watcher.Watch(ids, o.threshold, o.onIntersect)
}

// Stop disconnects the watcher and discards pending state. Events delivered
// afterwards change nothing.
func (o *Observer) Stop() {
	if !o.active {
		return
	}
	o.active = false
	o.watcher.UnwatchAll()
}

// Visible reports whether a section has ever crossed the threshold.
func (o *Observer) Visible(id string) bool {
	return o.visible[id]
}

func (o *Observer) onIntersect(ev host.IntersectionEvent) {
	if !o.active || ev.Ratio < o.threshold {
		return
	}
	if o.visible[ev.ID] {
		return
	}
	o.visible[ev.ID] = true
	o.logger.Debug("section revealed",
		zap.String("section", ev.ID),
		zap.Float64("ratio", ev.Ratio))
}
