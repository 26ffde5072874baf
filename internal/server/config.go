package server

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/ironsheep/color-tools-mcp/internal/access"
	"github.com/ironsheep/color-tools-mcp/internal/palette"
)

// Config holds server settings. Values come from the environment first and
// may then be overridden by command-line flags.
type Config struct {
	LogLevel    string  `env:"COLOR_MCP_LOG_LEVEL"    envDefault:"info"`
	LogJSON     bool    `env:"COLOR_MCP_LOG_JSON"`
	MinContrast float64 `env:"COLOR_MCP_MIN_CONTRAST" envDefault:"4.5"`
	MixMode     string  `env:"COLOR_MCP_MIX_MODE"     envDefault:"normal"`
}

// ParseEnv loads a Config from environment variables and validates it.
func ParseEnv() (Config, error) {
	return parseEnv(nil)
}

// parseEnv reads from environ, or from the process environment when
// environ is nil.
func parseEnv(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers flags that override the values already in c.
// Call Validate after the flag set has been parsed.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error, off)")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "write logs as JSON")
	fs.Float64Var(&c.MinContrast, "min-contrast", c.MinContrast, "default minimum contrast ratio for color_accessible")
	fs.StringVar(&c.MixMode, "mix-mode", c.MixMode, "default color_mix interpolation mode")
}

// Validate checks that every setting is usable and normalises the mix mode.
func (c *Config) Validate() error {
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.MinContrast != c.MinContrast || c.MinContrast < 1 || c.MinContrast > access.MaxRatio {
		return fmt.Errorf("invalid minimum contrast %v: must be between 1 and %v", c.MinContrast, access.MaxRatio)
	}
	mode, err := palette.ParseMixMode(c.MixMode)
	if err != nil {
		return fmt.Errorf("invalid mix mode: %w", err)
	}
	c.MixMode = string(mode)
	return nil
}

// NewLogger returns the named server logger writing to w. Stdout carries
// the protocol, so w is normally stderr.
func (c Config) NewLogger(w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "color-mcp",
		Output:     w,
		Level:      hclog.LevelFromString(c.LogLevel),
		JSONFormat: c.LogJSON,
	})
}
