// Package config loads the configuration of the pmstyle command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/shodgson/prosemirror-fontsize/fontsize"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Sizes are the default font sizes of node kinds.
	Sizes fontsize.Defaults `yaml:"sizes"`

	// Trace is the trace level: error, info or debug.
	Trace string `yaml:"trace"`

	// Stylesheet is the path of the editor stylesheet used for measuring.
	Stylesheet string `yaml:"stylesheet"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sizes: fontsize.DefaultDefaults(),
		Trace: "error",
	}
}

// Load reads the YAML file at path on top of the defaults. An empty path or
// a missing file yields the defaults. PMSTYLE_TRACE and PMSTYLE_CSS override
// the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	cfg.Trace = envOr("PMSTYLE_TRACE", cfg.Trace)
	cfg.Stylesheet = envOr("PMSTYLE_CSS", cfg.Stylesheet)

	if cfg.Sizes.Body <= 0 {
		cfg.Sizes.Body = fontsize.DefaultDefaults().Body
	}
	if len(cfg.Sizes.Headings) == 0 {
		cfg.Sizes.Headings = fontsize.DefaultDefaults().Headings
	}
	if _, ok := cfg.Sizes.Headings[cfg.Sizes.FallbackLevel]; !ok {
		return cfg, fmt.Errorf("fallback heading level %d has no size", cfg.Sizes.FallbackLevel)
	}
	if _, err := cfg.TraceLevel(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TraceLevel maps the configured trace level to a tracing level.
func (c Config) TraceLevel() (tracing.TraceLevel, error) {
	switch strings.ToLower(c.Trace) {
	case "", "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("invalid trace level %q (must be error, info or debug)", c.Trace)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
