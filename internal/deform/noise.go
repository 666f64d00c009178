package deform

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	Octaves     = 4
	Persistence = 0.5
	Lacunarity  = 2.0
)

// Noise is fractal 2D Perlin noise remapped to [0,1].
type Noise struct {
	p *perlin.Perlin
}

// NewNoise returns a deterministic noise field for seed.
func NewNoise(seed int64) *Noise {
	return &Noise{p: perlin.NewPerlin(1/Persistence, Lacunarity, Octaves, seed)}
}

// FBM samples the field at (x, y).
func (n *Noise) FBM(x, y float64) float64 {
	return clamp(n.p.Noise2D(x, y)*0.5+0.5, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func smoothstep(e0, e1, x float64) float64 {
	t := clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}
