package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/orbitview/engine/components"
	"github.com/spaghettifunk/orbitview/engine/core"
)

// Config is the on-disk application configuration.
//
//	log_level = "debug"
//
//	[camera]
//	fov_y_degrees = 30.0
//	near = 0.01
//	far = 1000.0
//	dolly_in = 0.9
//	dolly_out = 1.1
//	initial_shift = [0.0, -0.8, -5.0]
//	width = 1280
//	height = 720
type Config struct {
	LogLevel string                       `toml:"log_level"`
	Camera   components.OrbitCameraConfig `toml:"camera"`
}

func Default() *Config {
	return &Config{
		LogLevel: "info",
		Camera:   components.DefaultOrbitCameraConfig(),
	}
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() core.LogLevel {
	lvl, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return lvl
}

// Decode reads a TOML document. Keys missing from the document keep their defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	if _, err := core.ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: log_level %q", core.ErrInvalidConfig, cfg.LogLevel)
	}
	if err := cfg.Camera.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}
