package particles

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func speed(p Particle) float64 {
	return math.Hypot(p.VX, p.VY)
}

func TestInitialize(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	for _, size := range [][2]float64{{800, 600}, {50, 50}, {1920, 300}} {
		ps := Initialize(rng, cfg, size[0], size[1])
		require.Len(t, ps, DefaultCount)
		for i, p := range ps {
			assert.Equal(t, i, p.ID)
			assert.GreaterOrEqual(t, p.X, 0.0)
			assert.Less(t, p.X, size[0])
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.Less(t, p.Y, size[1])
			assert.GreaterOrEqual(t, p.VX, -cfg.BaseSpeed)
			assert.LessOrEqual(t, p.VX, cfg.BaseSpeed)
			assert.GreaterOrEqual(t, p.VY, -cfg.BaseSpeed)
			assert.LessOrEqual(t, p.VY, cfg.BaseSpeed)
			assert.GreaterOrEqual(t, p.Radius, MinRadius)
			assert.LessOrEqual(t, p.Radius, MaxRadius)
			assert.Equal(t, cfg.ParticleColor, p.Color)
		}
	}
}

func TestInitializeSpreadsOverSurface(t *testing.T) {
	ps := Initialize(rand.New(rand.NewSource(7)), DefaultConfig(), 1000, 1000)

	var quadrants [4]int
	for _, p := range ps {
		q := 0
		if p.X >= 500 {
			q++
		}
		if p.Y >= 500 {
			q += 2
		}
		quadrants[q]++
	}
	for q, n := range quadrants {
		assert.Greater(t, n, 15, "quadrant %d nearly empty", q)
	}
}

func TestStepWithoutPointerIsLinear(t *testing.T) {
	cfg := DefaultConfig()
	ps := []Particle{
		{X: 100, Y: 200, VX: 3, VY: -4, Radius: 1},
		{X: 400, Y: 10, VX: -15, VY: 15, Radius: 2},
	}
	want := []Particle{
		{X: 100 + 3*0.5, Y: 200 - 4*0.5, VX: 3, VY: -4, Radius: 1},
		{X: 400 - 15*0.5, Y: 10 + 15*0.5, VX: -15, VY: 15, Radius: 2},
	}

	Step(ps, Pointer{}, 0.5, 800, 600, cfg)

	assert.Equal(t, want, ps)
}

func TestStepScenario(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("no wrap", func(t *testing.T) {
		ps := []Particle{{X: 0, Y: 0, VX: 10, VY: 0, Radius: 1}}
		Step(ps, Pointer{}, 1.0, 50, 50, cfg)
		assert.Equal(t, 10.0, ps[0].X)
		assert.Equal(t, 0.0, ps[0].Y)
	})

	t.Run("wraps past right edge", func(t *testing.T) {
		ps := []Particle{{X: 0, Y: 0, VX: 10, VY: 0, Radius: 1}}
		Step(ps, Pointer{}, 6.0, 50, 50, cfg)
		assert.Equal(t, -1.0, ps[0].X)
		assert.Equal(t, 0.0, ps[0].Y)
	})

	t.Run("wraps past left edge", func(t *testing.T) {
		ps := []Particle{{X: 0, Y: 0, VX: -10, VY: 0, Radius: 1}}
		Step(ps, Pointer{}, 0.2, 50, 50, cfg)
		assert.Less(t, ps[0].X, 51.0)
		assert.Greater(t, ps[0].X, 50.99)
	})

	t.Run("wraps vertically", func(t *testing.T) {
		ps := []Particle{{X: 10, Y: 49, VX: 0, VY: 10, Radius: 2}}
		Step(ps, Pointer{}, 0.5, 50, 50, cfg)
		assert.Equal(t, -2.0, ps[0].Y)
		assert.Equal(t, 10.0, ps[0].X)
	})
}

func TestStepKeepsParticlesInBounds(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(3))
	const w, h = 320.0, 240.0
	ps := Initialize(rng, cfg, w, h)

	for frame := 0; frame < 500; frame++ {
		ptr := At(rng.Float64()*w, rng.Float64()*h)
		if frame%3 == 0 {
			ptr = Pointer{}
		}
		Step(ps, ptr, rng.Float64()*0.5, w, h, cfg)
		for _, p := range ps {
			require.GreaterOrEqual(t, p.X, -p.Radius)
			require.Less(t, p.X, w+p.Radius)
			require.GreaterOrEqual(t, p.Y, -p.Radius)
			require.Less(t, p.Y, h+p.Radius)
		}
	}
}

func TestStepClampsSpeed(t *testing.T) {
	cfg := DefaultConfig()
	limit := cfg.MaxSpeed() + 1e-9

	tests := []struct {
		name   string
		vx, vy float64
		ptr    Pointer
	}{
		{"fast horizontal", 1000, 0, Pointer{}},
		{"fast diagonal", -300, 400, Pointer{}},
		{"just above limit", 45.5, 0, Pointer{}},
		{"pushed by pointer", 44, 0, At(99, 100)},
		{"huge pointer push", 0, 0, At(100.001, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := []Particle{{X: 100, Y: 100, VX: tt.vx, VY: tt.vy, Radius: 1}}
			Step(ps, tt.ptr, 1.0, 800, 600, cfg)
			assert.LessOrEqual(t, speed(ps[0]), limit)
		})
	}

	t.Run("direction preserved", func(t *testing.T) {
		ps := []Particle{{X: 100, Y: 100, VX: -300, VY: 400, Radius: 1}}
		Step(ps, Pointer{}, 0, 800, 600, cfg)
		assert.InDelta(t, -27.0, ps[0].VX, 1e-9)
		assert.InDelta(t, 36.0, ps[0].VY, 1e-9)
	})

	t.Run("slow particles untouched", func(t *testing.T) {
		ps := []Particle{{X: 100, Y: 100, VX: 30, VY: -30, Radius: 1}}
		Step(ps, Pointer{}, 0, 800, 600, cfg)
		assert.Equal(t, 30.0, ps[0].VX)
		assert.Equal(t, -30.0, ps[0].VY)
	})
}

func TestRepulsion(t *testing.T) {
	cfg := DefaultConfig()
	p := Particle{X: 100, Y: 100}

	t.Run("linear falloff", func(t *testing.T) {
		ax, ay := Repulsion(p, At(70, 100), cfg)
		assert.Equal(t, 37.5, ax)
		assert.Equal(t, 0.0, ay)
	})

	t.Run("directed away from pointer", func(t *testing.T) {
		ax, ay := Repulsion(p, At(130, 140), cfg)
		want := cfg.RepulsionStrength * (1 - 50.0/cfg.InfluenceRadius)
		assert.InDelta(t, want, math.Hypot(ax, ay), 1e-9)
		assert.InDelta(t, -0.6*want, ax, 1e-9)
		assert.InDelta(t, -0.8*want, ay, 1e-9)
	})

	t.Run("near full strength close in", func(t *testing.T) {
		ax, ay := Repulsion(p, At(100, 99.9), cfg)
		assert.Equal(t, 0.0, ax)
		assert.InDelta(t, cfg.RepulsionStrength, ay, 0.1)
	})

	zero := []struct {
		name string
		ptr  Pointer
	}{
		{"absent", Pointer{}},
		{"absent ignores coordinates", Pointer{X: 100, Y: 101}},
		{"same position", At(100, 100)},
		{"on the boundary", At(220, 100)},
		{"outside", At(400, 400)},
	}
	for _, tt := range zero {
		t.Run(tt.name, func(t *testing.T) {
			ax, ay := Repulsion(p, tt.ptr, cfg)
			assert.Zero(t, ax)
			assert.Zero(t, ay)
		})
	}
}

func TestStepAppliesRepulsionOverTime(t *testing.T) {
	cfg := DefaultConfig()
	ps := []Particle{{X: 100, Y: 100, Radius: 1}}

	Step(ps, At(70, 100), 0.1, 800, 600, cfg)

	assert.InDelta(t, 3.75, ps[0].VX, 1e-9)
	assert.Zero(t, ps[0].VY)
	assert.InDelta(t, 100.375, ps[0].X, 1e-9)
}
