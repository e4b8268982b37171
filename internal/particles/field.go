// Package particles implements the network-of-dots background animation:
// a fixed set of drifting points, redrawn every frame over a fading trail,
// with lines connecting pairs that are close enough.
package particles

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/iburimskiy/obsidian-guide/internal/host"
)

const (
	// DefaultCount is the particle population per activation.
	DefaultCount = 80

	// LinkDistance is the pair distance below which a connecting line is
	// drawn. Opacity falls off linearly from 1 at distance 0 to 0 here.
	LinkDistance = 150.0

	fadeAlpha   = 0.1
	maxVelocity = 0.25
	minRadius   = 1.0
	maxRadius   = 3.0
)

// Particle is one moving point. Velocity is in pixels per frame and keeps a
// constant magnitude until a bounce inverts one of its components.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Field owns the particle set and the frame loop that redraws it.
type Field struct {
	canvas host.Canvas
	sched  host.FrameScheduler
	logger *zap.Logger
	rng    *rand.Rand

	count         int
	width, height float64
	particles     []Particle

	running bool
	token   host.FrameToken
}

// Option configures a Field before activation.
type Option func(*Field)

// WithCount overrides the particle population.
func WithCount(n int) Option {
	return func(f *Field) {
		if n > 0 {
			f.count = n
		}
	}
}

// WithRand injects a seeded source, used by tests for determinism.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// New returns an inactive field drawing to canvas on frames delivered by
// sched. Either may be nil, in which case Start is a no-op.
func New(canvas host.Canvas, sched host.FrameScheduler, logger *zap.Logger, opts ...Option) *Field {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Field{
		canvas: canvas,
		sched:  sched,
		logger: logger,
		count:  DefaultCount,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return f
}

// Start measures the surface, allocates the particle set and schedules the
// first frame. If the surface is unavailable the field stays inactive; that
// is not an error, the page just has no background animation.
func (f *Field) Start() {
	if f.running || f.canvas == nil || f.sched == nil || !f.canvas.Ready() {
		return
	}
	f.width, f.height = f.canvas.Size()
	f.particles = make([]Particle, f.count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.rng.Float64() * f.width,
			Y:      f.rng.Float64() * f.height,
			VX:     (f.rng.Float64() - 0.5) * 2 * maxVelocity,
			VY:     (f.rng.Float64() - 0.5) * 2 * maxVelocity,
			Radius: minRadius + f.rng.Float64()*(maxRadius-minRadius),
		}
	}
	f.running = true
	f.token = f.sched.Schedule(f.frame)
	f.logger.Debug("particle field started",
		zap.Int("count", f.count),
		zap.Float64("width", f.width),
		zap.Float64("height", f.height))
}

// Stop cancels the pending frame and drops all particle state. No frame
// runs after Stop returns.
func (f *Field) Stop() {
	if !f.running {
		return
	}
	f.running = false
	f.sched.Cancel(f.token)
	f.particles = nil
	f.logger.Debug("particle field stopped")
}

// Resize updates the bounds used by the bounce check. Existing particles
// keep their positions; ones left outside the new bounds bounce back on
// their next step.
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h
}

// Running reports whether the frame loop is active.
func (f *Field) Running() bool { return f.running }

// Particles exposes the live particle slice for inspection.
func (f *Field) Particles() []Particle { return f.particles }

func (f *Field) frame() {
	if !f.running {
		return
	}
	f.canvas.Fade(fadeAlpha)
	f.Step()
	f.draw()
	f.token = f.sched.Schedule(f.frame)
}

// Step advances every particle by one frame and applies the boundary
// bounce. The bounce is soft: it inverts the velocity component without
// clamping the position, so a fast particle can sit outside the bounds for
// one frame before it turns around. That overshoot is the behavior the page
// always had, so it stays.
func (f *Field) Step() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
		}
	}
}

func (f *Field) draw() {
	for i := range f.particles {
		p := &f.particles[i]
		f.canvas.Dot(p.X, p.Y, p.Radius)
	}
	// O(n²) over 80 particles is ~3200 pairs per frame, cheap enough that
	// spatial indexing would be noise.
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			a, b := &f.particles[i], &f.particles[j]
			if op, ok := LinkOpacity(a.X, a.Y, b.X, b.Y); ok {
				f.canvas.Line(a.X, a.Y, b.X, b.Y, op)
			}
		}
	}
}
