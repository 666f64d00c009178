// Package particles implements an interactive particle field: a fixed
// population of points drifting across a surface, pushed away from the
// pointer and joined by faint lines when close to each other.
package particles

import (
	"image/color"
	"math/rand"

	"github.com/olivierh59500/generative-gallery/internal/palette"
)

// Simulation constants
const (
	DefaultCount             = 150
	DefaultBaseSpeed         = 15.0  // px/s
	DefaultInfluenceRadius   = 120.0 // px
	DefaultRepulsionStrength = 50.0  // px/s²
	DefaultConnectDistance   = 100.0 // px
	DefaultLineWidth         = 0.5

	// SpeedLimitFactor bounds particle speed to a multiple of the base speed.
	SpeedLimitFactor = 3.0

	MinRadius = 1.0
	MaxRadius = 2.5
)

// Particle is one simulated point.
type Particle struct {
	ID     int         `json:"id"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	VX     float64     `json:"vx"`
	VY     float64     `json:"vy"`
	Radius float64     `json:"radius"`
	Color  color.NRGBA `json:"color"`
}

// Pointer is the last observed pointer position in surface coordinates.
// The zero value is an absent pointer.
type Pointer struct {
	X, Y    float64
	Present bool
}

// At returns a present pointer at (x, y).
func At(x, y float64) Pointer {
	return Pointer{X: x, Y: y, Present: true}
}

// Config holds the tunables of a field.
type Config struct {
	Count             int
	BaseSpeed         float64
	InfluenceRadius   float64
	RepulsionStrength float64
	ConnectDistance   float64
	LineWidth         float64
	ParticleColor     color.NRGBA
	LineColor         color.NRGBA
}

// DefaultConfig returns the cyan field shown in the gallery.
func DefaultConfig() Config {
	return Config{
		Count:             DefaultCount,
		BaseSpeed:         DefaultBaseSpeed,
		InfluenceRadius:   DefaultInfluenceRadius,
		RepulsionStrength: DefaultRepulsionStrength,
		ConnectDistance:   DefaultConnectDistance,
		LineWidth:         DefaultLineWidth,
		ParticleColor:     palette.HSLA(190, 1, 0.7, 0.8),
		LineColor:         palette.HSLA(190, 1, 0.7, 0.1),
	}
}

// MaxSpeed is the speed every particle is clamped to after forces apply.
func (c Config) MaxSpeed() float64 {
	return c.BaseSpeed * SpeedLimitFactor
}

// Initialize creates cfg.Count particles spread uniformly over
// [0,width)×[0,height) with each velocity component in [-BaseSpeed, BaseSpeed).
func Initialize(rng *rand.Rand, cfg Config, width, height float64) []Particle {
	ps := make([]Particle, cfg.Count)
	for i := range ps {
		ps[i] = Particle{
			ID:     i,
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			VX:     (rng.Float64()*2 - 1) * cfg.BaseSpeed,
			VY:     (rng.Float64()*2 - 1) * cfg.BaseSpeed,
			Radius: MinRadius + rng.Float64()*(MaxRadius-MinRadius),
			Color:  cfg.ParticleColor,
		}
	}
	return ps
}
