package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, cfg *Config) string {
	w := bytes.NewBuffer([]byte{})
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		t.Fatalf("toml.Encode: %s", err)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, w.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile %s: %s", path, err)
	}

	return path
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadFile(t *testing.T) {
	yes := true
	level := "debug"

	path := writeConfig(t, &Config{
		Defaults: Defaults{NoConfirm: &yes, LogLevel: &level},
	})

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.True(t, Bool(cfg.Defaults.NoConfirm, false))
	assert.False(t, Bool(cfg.Defaults.Verbose, false))
	assert.True(t, Bool(cfg.Defaults.Verify, true))
	assert.Equal(t, "debug", String(cfg.Defaults.LogLevel, "warn"))
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nnoconfrim = true\n"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestPathFromEnvironment(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", Path())

	t.Setenv(EnvPath, "")
	assert.True(t, strings.HasSuffix(Path(), filepath.Join("fswap", "config.toml")), Path())
}
