package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/olivierh59500/generative-gallery/internal/canvas/canvastest"
	"github.com/olivierh59500/generative-gallery/internal/config"
	"github.com/olivierh59500/generative-gallery/internal/deform"
	"github.com/olivierh59500/generative-gallery/internal/moire"
	"github.com/olivierh59500/generative-gallery/internal/particles"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()

	e, ok := c.Lookup("particle-flow")
	require.True(t, ok)
	assert.Equal(t, "Particle Flow", e.Title)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestCatalogNeighbors(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		slug, prev, next string
	}{
		{"spinning-cubes", "", "particle-flow"},
		{"particle-flow", "spinning-cubes", "moire-pattern"},
		{"moire-pattern", "particle-flow", ""},
		{"unknown", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			prev, next := c.Neighbors(tt.slug)
			assert.Equal(t, tt.prev, prev)
			assert.Equal(t, tt.next, next)
		})
	}
}

func TestRegistryUnknownSlug(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.New("missing")
	assert.ErrorIs(t, err, ErrUnknownSlug)

	fb, ok := r.Load("missing").(*Fallback)
	require.True(t, ok)
	assert.Equal(t, "Error loading artwork: missing", fb.Message())
}

func TestBuiltinCoversCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.Seed = 5
	r := Builtin(cfg, nil)

	kinds := map[string]any{
		"particle-flow":  &particles.Field{},
		"moire-pattern":  &moire.Pattern{},
		"spinning-cubes": &deform.Blob{},
	}
	for _, e := range DefaultCatalog() {
		t.Run(e.Slug, func(t *testing.T) {
			a, err := r.New(e.Slug)
			require.NoError(t, err)
			assert.IsType(t, kinds[e.Slug], a)

			host := canvastest.New(320, 200)
			a.Mount(host)
			host.Frame(time.Second)
			host.Frame(time.Second + 16*time.Millisecond)
			assert.Equal(t, 2, host.Clears)
			assert.Equal(t, 1, host.Pending())

			a.Unmount()
			assert.Zero(t, host.Pending())
			assert.Zero(t, host.Subscribers())
		})
	}
}

func TestBuiltinAppliesParticleConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Particles.Count = 12
	a, err := Builtin(cfg, nil).New("particle-flow")
	require.NoError(t, err)

	host := canvastest.New(100, 100)
	a.Mount(host)
	assert.Len(t, a.(*particles.Field).Particles(), 12)
	a.Unmount()
}

func TestFallbackDrawsMessage(t *testing.T) {
	host := canvastest.New(400, 300)
	fb := NewFallback("ghost")
	fb.Mount(host)

	host.Frame(time.Second)
	require.Len(t, host.Texts, 1)
	assert.Equal(t, "Error loading artwork: ghost", host.Texts[0].Text)
	assert.Equal(t, 142, host.Texts[0].Y)

	fb.Unmount()
	assert.Zero(t, host.Pending())
}

func TestFallbackSurvivesLostSurface(t *testing.T) {
	host := canvastest.New(400, 300)
	fb := NewFallback("ghost")
	fb.Mount(host)

	host.NoSurface = true
	assert.NotPanics(t, func() { host.Frame(time.Second) })
	assert.Equal(t, 1, host.Pending())

	fb.Unmount()
	assert.Zero(t, host.Pending())
}

func TestBuiltinSeeding(t *testing.T) {
	mounted := func(r *Registry) []particles.Particle {
		a, err := r.New("particle-flow")
		require.NoError(t, err)
		host := canvastest.New(400, 300)
		a.Mount(host)
		defer a.Unmount()
		return a.(*particles.Field).Particles()
	}

	t.Run("fresh population on every opening", func(t *testing.T) {
		r := Builtin(config.Default(), nil)
		assert.NotEqual(t, mounted(r), mounted(r))
	})

	t.Run("configured seed replays", func(t *testing.T) {
		cfg := config.Default()
		cfg.Particles.Seed = 99
		r := Builtin(cfg, nil)
		assert.Equal(t, mounted(r), mounted(r))
	})
}
