package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokergrid.hcl")
	content := `
game {
  seed = 1234
}

ui {
  log_level = "debug"
  log_file  = "debug.log"
}

sim {
  games   = 50
  workers = 2
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "debug.log", cfg.UI.LogFile)
	assert.Equal(t, 50, cfg.Sim.Games)
	assert.Equal(t, 2, cfg.Sim.Workers)
}

func TestLoadAppliesDefaultsForUnsetValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokergrid.hcl")
	content := `
game {
  seed = 7
}

ui {}

sim {}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.UI.LogLevel)
	assert.Equal(t, "pokergrid.log", cfg.UI.LogFile)
	assert.Equal(t, 1000, cfg.Sim.Games)
	assert.Equal(t, 4, cfg.Sim.Workers)
}

func TestLoadRejectsInvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
