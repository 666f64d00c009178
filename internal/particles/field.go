package particles

import (
	"math/rand"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/olivierh59500/generative-gallery/internal/canvas"
)

// Field owns a particle population and the pointer state driving it, and
// renders itself onto a canvas.Host frame by frame.
type Field struct {
	cfg Config
	rng *rand.Rand
	log *zap.Logger

	particles     []Particle
	pointer       Pointer
	width, height int

	host        canvas.Host
	surface     canvas.Surface
	frame       canvas.FrameID
	unsubscribe func()

	last    time.Duration
	started bool
	paused  bool
}

// Option configures a Field.
type Option func(*Field)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(f *Field) { f.log = log }
}

// WithRand sets the random source used for (re)initialization.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) { f.rng = rng }
}

// New creates an unmounted field.
func New(cfg Config, opts ...Option) *Field {
	f := &Field{
		cfg: cfg,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return f
}

// Mount sizes the population to the host surface, subscribes to pointer
// input and schedules the first frame. Without a surface it does nothing.
func (f *Field) Mount(h canvas.Host) {
	s := h.Surface()
	if s == nil {
		f.log.Debug("particle field: no surface, skipping mount")
		return
	}
	f.host = h
	f.surface = s
	f.reinitialize(s.Size())
	f.started = false
	f.pointer = Pointer{}
	f.unsubscribe = h.Subscribe(f.pointerMoved, f.pointerLeft)
	f.frame = h.RequestFrame(f.tick)
	f.log.Debug("particle field mounted",
		zap.Int("count", len(f.particles)),
		zap.Int("width", f.width),
		zap.Int("height", f.height))
}

// Unmount cancels the pending frame and drops the pointer subscription.
func (f *Field) Unmount() {
	if f.host == nil {
		return
	}
	f.host.CancelFrame(f.frame)
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
	f.host = nil
	f.surface = nil
	f.log.Debug("particle field unmounted")
}

// SetPaused freezes or resumes the physics. Rendering continues while paused
// and the first tick after resuming integrates over zero time.
func (f *Field) SetPaused(paused bool) {
	if f.paused && !paused {
		f.started = false
	}
	f.paused = paused
}

// Paused reports whether the physics is frozen.
func (f *Field) Paused() bool { return f.paused }

// Particles returns a copy of the current population.
func (f *Field) Particles() []Particle { return slices.Clone(f.particles) }

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer { return f.pointer }

// Size returns the surface dimensions the population was generated for.
func (f *Field) Size() (int, int) { return f.width, f.height }

func (f *Field) pointerMoved(x, y float64) { f.pointer = At(x, y) }

func (f *Field) pointerLeft() { f.pointer = Pointer{} }

func (f *Field) reinitialize(width, height int) {
	f.width, f.height = width, height
	f.particles = Initialize(f.rng, f.cfg, float64(width), float64(height))
}

func (f *Field) tick(ts time.Duration) {
	if f.host == nil {
		return
	}

	if w, h := f.surface.Size(); w != f.width || h != f.height {
		f.log.Debug("particle field resized",
			zap.Int("width", w),
			zap.Int("height", h))
		f.reinitialize(w, h)
	}

	var dt float64
	if f.started && ts > f.last {
		dt = (ts - f.last).Seconds()
	}
	f.started = true
	f.last = ts

	if !f.paused {
		Step(f.particles, f.pointer, dt, float64(f.width), float64(f.height), f.cfg)
	}
	f.Render(f.surface)

	f.frame = f.host.RequestFrame(f.tick)
}

// Render clears s and draws every particle followed by the connecting lines.
func (f *Field) Render(s canvas.Surface) {
	s.Clear()
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
	ps := f.particles
	eachConnection(ps, f.cfg.ConnectDistance, func(i, j int) {
		s.StrokeLine(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y, f.cfg.LineWidth, f.cfg.LineColor)
	})
}
