package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsCallbackOncePerPump(t *testing.T) {
	s := newUpdateScheduler()
	ran := 0
	s.Schedule(func() { ran++ })

	s.pump()
	s.pump()
	assert.Equal(t, 1, ran, "a callback fires once, not per pump")
}

func TestSchedulerReschedulingRunsNextTick(t *testing.T) {
	s := newUpdateScheduler()
	frames := 0
	var frame func()
	frame = func() {
		frames++
		s.Schedule(frame)
	}
	s.Schedule(frame)

	for i := 0; i < 5; i++ {
		s.pump()
	}
	assert.Equal(t, 5, frames, "self-rescheduling gives one frame per tick")
}

func TestSchedulerCancelPreventsDelivery(t *testing.T) {
	s := newUpdateScheduler()
	ran := false
	tok := s.Schedule(func() { ran = true })
	s.Cancel(tok)

	s.pump()
	assert.False(t, ran)
}

func TestSchedulerPreservesOrder(t *testing.T) {
	s := newUpdateScheduler()
	var order []int
	s.Schedule(func() { order = append(order, 1) })
	s.Schedule(func() { order = append(order, 2) })
	s.Schedule(func() { order = append(order, 3) })

	s.pump()
	assert.Equal(t, []int{1, 2, 3}, order)
}
