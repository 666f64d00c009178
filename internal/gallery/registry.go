package gallery

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/olivierh59500/generative-gallery/internal/config"
	"github.com/olivierh59500/generative-gallery/internal/deform"
	"github.com/olivierh59500/generative-gallery/internal/moire"
	"github.com/olivierh59500/generative-gallery/internal/particles"
)

var ErrUnknownSlug = errors.New("unknown artwork")

// Factory builds a fresh, unmounted artwork.
type Factory func() Artwork

// Registry maps slugs to artwork factories.
type Registry struct {
	factories map[string]Factory
	log       *zap.Logger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{factories: make(map[string]Factory), log: log}
}

// Register binds slug to f, replacing any previous binding.
func (r *Registry) Register(slug string, f Factory) {
	r.factories[slug] = f
}

// New builds the artwork registered under slug.
func (r *Registry) New(slug string) (Artwork, error) {
	f, ok := r.factories[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlug, slug)
	}
	return f(), nil
}

// Load is New with a fallback: unknown slugs get an artwork that reports
// the failure on screen.
func (r *Registry) Load(slug string) Artwork {
	a, err := r.New(slug)
	if err != nil {
		r.log.Warn("Falling back to error artwork", zap.String("slug", slug), zap.Error(err))
		return NewFallback(slug)
	}
	return a
}

// Builtin registers every artwork of the default catalog, tuned by cfg.
func Builtin(cfg *config.Config, log *zap.Logger) *Registry {
	r := NewRegistry(log)

	// a configured seed replays the same artworks; otherwise every
	// opening starts from a fresh draw
	seed := func() int64 {
		if cfg.Particles.Seed != 0 {
			return cfg.Particles.Seed
		}
		return rand.Int63()
	}

	r.Register("particle-flow", func() Artwork {
		pc := particles.DefaultConfig()
		pc.Count = cfg.Particles.Count
		pc.BaseSpeed = cfg.Particles.BaseSpeed
		pc.InfluenceRadius = cfg.Particles.InfluenceRadius
		pc.RepulsionStrength = cfg.Particles.RepulsionStrength
		pc.ConnectDistance = cfg.Particles.ConnectDistance
		return particles.New(pc,
			particles.WithLogger(r.log.Named("particles")),
			particles.WithRand(rand.New(rand.NewSource(seed()))))
	})
	r.Register("moire-pattern", func() Artwork {
		return moire.New(r.log.Named("moire"))
	})
	r.Register("spinning-cubes", func() Artwork {
		return deform.New(seed(), r.log.Named("deform"))
	})
	return r
}
