package page

import (
	"sort"

	"github.com/iburimskiy/obsidian-guide/internal/host"
)

// updateScheduler is the ebiten-backed host.FrameScheduler: callbacks
// scheduled during one tick run on the next, when Update pumps the queue.
// That gives the particle field exactly one frame per display refresh.
type updateScheduler struct {
	next    host.FrameToken
	pending map[host.FrameToken]func()
}

func newUpdateScheduler() *updateScheduler {
	return &updateScheduler{pending: map[host.FrameToken]func(){}}
}

func (s *updateScheduler) Schedule(fn func()) host.FrameToken {
	s.next++
	s.pending[s.next] = fn
	return s.next
}

func (s *updateScheduler) Cancel(tok host.FrameToken) {
	delete(s.pending, tok)
}

// pump runs every callback that was pending at the start of the tick, in
// scheduling order. Callbacks re-scheduled from inside run next tick.
func (s *updateScheduler) pump() {
	if len(s.pending) == 0 {
		return
	}
	toks := make([]host.FrameToken, 0, len(s.pending))
	for tok := range s.pending {
		toks = append(toks, tok)
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i] < toks[j] })
	for _, tok := range toks {
		fn, ok := s.pending[tok]
		if !ok {
			continue
		}
		delete(s.pending, tok)
		fn()
	}
}
