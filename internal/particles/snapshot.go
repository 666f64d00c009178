package particles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
)

var (
	ErrSizeMismatch    = errors.New("snapshot surface size does not match")
	ErrPopulation      = errors.New("snapshot population size does not match")
	ErrInvalidParticle = errors.New("snapshot particle out of range")
)

// Snapshot is a saved population together with the surface size it lives on.
type Snapshot struct {
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Particles []Particle `json:"particles"`
}

// Snapshot captures the current population.
func (f *Field) Snapshot() Snapshot {
	return Snapshot{Width: f.width, Height: f.height, Particles: slices.Clone(f.particles)}
}

// Restore replaces the population with s. A snapshot taken on a surface of
// another size, holding another number of particles, or holding a particle
// this field could never have produced is rejected.
func (f *Field) Restore(s Snapshot) error {
	if s.Width != f.width || s.Height != f.height {
		return fmt.Errorf("%w: have %dx%d, snapshot %dx%d",
			ErrSizeMismatch, f.width, f.height, s.Width, s.Height)
	}
	if len(s.Particles) != f.cfg.Count {
		return fmt.Errorf("%w: have %d, snapshot %d", ErrPopulation, f.cfg.Count, len(s.Particles))
	}
	for i, p := range s.Particles {
		if err := f.validate(p); err != nil {
			return fmt.Errorf("%w: particle %d: %v", ErrInvalidParticle, i, err)
		}
	}
	f.particles = slices.Clone(s.Particles)
	f.started = false
	f.log.Debug("particle field restored", zap.Int("count", len(s.Particles)))
	return nil
}

// SaveSnapshot writes s to filename as JSON.
func SaveSnapshot(filename string, s Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(filename string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(filename)
	if err != nil {
		return s, fmt.Errorf("read snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

// speedTolerance absorbs the rounding left by rescaling to the speed limit.
const speedTolerance = 1e-9

func (f *Field) validate(p Particle) error {
	if !(p.Radius >= MinRadius && p.Radius <= MaxRadius) {
		return fmt.Errorf("radius %g outside [%g, %g]", p.Radius, MinRadius, MaxRadius)
	}
	w, h := float64(f.width), float64(f.height)
	if !(p.X >= -p.Radius && p.X < w+p.Radius) || !(p.Y >= -p.Radius && p.Y < h+p.Radius) {
		return fmt.Errorf("position (%g, %g) off a %gx%g surface", p.X, p.Y, w, h)
	}
	limit := f.cfg.MaxSpeed() * (1 + speedTolerance)
	if !(p.VX*p.VX+p.VY*p.VY <= limit*limit) {
		return fmt.Errorf("velocity (%g, %g) faster than %g", p.VX, p.VY, f.cfg.MaxSpeed())
	}
	return nil
}
