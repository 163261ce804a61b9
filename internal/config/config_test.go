package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Load_OverridesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfgrecrc.toml")
	content := "engine = \"lr\"\ncache_dir = \"/tmp/cfgrec-cache\"\ntrace = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, EngineLR, cfg.Engine)
	assert.Equal(t, "/tmp/cfgrec-cache", cfg.CacheDir)
	assert.True(t, cfg.Trace)
}

func Test_Load_RejectsUnknownEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfgrecrc.toml")
	require.NoError(t, os.WriteFile(path, []byte("engine = \"bogus\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
