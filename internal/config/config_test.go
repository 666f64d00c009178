package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 150, cfg.Particles.Count)
	assert.Equal(t, 100.0, cfg.Particles.ConnectDistance)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	yml := `
window:
  width: 1024
particles:
  count: 300
  seed: 9
logging:
  level: debug
start: particle-flow
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset keys keep defaults")
	assert.Equal(t, 300, cfg.Particles.Count)
	assert.Equal(t, int64(9), cfg.Particles.Seed)
	assert.Equal(t, 15.0, cfg.Particles.BaseSpeed)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "particle-flow", cfg.Start)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yml  string
	}{
		{"bad yaml", "window: [1, 2"},
		{"zero width", "window:\n  width: 0\n"},
		{"negative count", "particles:\n  count: -1\n"},
		{"zero connect distance", "particles:\n  connect_distance: 0\n"},
		{"unknown level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "gallery.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	cfg := Default()
	cfg.Start = "moire-pattern"
	cfg.Particles.RepulsionStrength = 80

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadStartAndSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: spinning-cubes\nsnapshot: saved/field.json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "spinning-cubes", cfg.Start)
	assert.Equal(t, "saved/field.json", cfg.Snapshot)
}
