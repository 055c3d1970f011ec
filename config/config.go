// Package config loads the optional user configuration file. Every value in
// it only provides a default for the matching command line flag.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "FSWAP_CONFIG"

type Config struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults holds flag defaults. Nil means unset.
type Defaults struct {
	NoConfirm *bool   `toml:"noconfirm,omitempty"`
	Verbose   *bool   `toml:"verbose,omitempty"`
	Verify    *bool   `toml:"verify,omitempty"`
	LogLevel  *string `toml:"log_level,omitempty"`
}

// Path returns the config file location: $FSWAP_CONFIG if set, otherwise
// fswap/config.toml below the XDG config home.
func Path() string {
	if path := os.Getenv(EnvPath); path != "" {
		return path
	}

	return filepath.Join(xdg.ConfigHome, "fswap", "config.toml")
}

// Load reads the config file at Path. A missing file yields a zero Config.
func Load() (Config, error) {
	return LoadFile(Path())
}

func LoadFile(path string) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}

		return Config{}, err
	}

	defer f.Close()

	d := toml.NewDecoder(f)
	d.DisallowUnknownFields()

	if err := d.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Bool returns *v, or fallback when v is nil.
func Bool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}

// String returns *v, or fallback when v is nil.
func String(v *string, fallback string) string {
	if v == nil {
		return fallback
	}

	return *v
}
