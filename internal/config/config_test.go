package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/minilang/internal/config"
)

func TestDefaultUsesSystemCC(t *testing.T) {
	assert.Equal(t, "cc", config.Default().CC)
	assert.False(t, config.Default().KeepBuildDir)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".minilangrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cc: clang\nkeep_build_dir: true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "clang", cfg.CC)
	assert.True(t, cfg.KeepBuildDir)
}

func TestLoadFillsInDefaultCCWhenOmitted(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".minilangrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep_build_dir: true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cc", cfg.CC)
	assert.True(t, cfg.KeepBuildDir)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".minilangrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cc: [unterminated\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
