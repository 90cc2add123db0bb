// Package config holds the settings of the optimizer and its command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/donovandicks/monadc/core"
	"github.com/donovandicks/monadc/util"
)

// Config is read from a TOML or YAML file. Zero fields keep their defaults.
type Config struct {
	LogLevel  string `toml:"log-level" yaml:"log-level"`
	LogFormat string `toml:"log-format" yaml:"log-format"` // "text" or "json"

	IDBase       uint64 `toml:"id-base" yaml:"id-base"`
	VerifyTrials int    `toml:"verify-trials" yaml:"verify-trials"`
	Seed         int64  `toml:"seed" yaml:"seed"`
	Concurrency  int    `toml:"concurrency" yaml:"concurrency"`

	// Output is a directory for optimized programs; empty disables writing.
	Output string `toml:"output" yaml:"output"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:     "warn",
		LogFormat:    "text",
		VerifyTrials: 0,
		Seed:         1,
		Concurrency:  4,
	}
}

// Load reads a config file over the defaults. The format is chosen by
// extension: .toml, .yaml, or .yml.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("cannot read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		return c, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return c, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Validate rejects settings the command cannot run with.
func (c Config) Validate() error {
	if c.VerifyTrials < 0 {
		return fmt.Errorf("verify-trials must not be negative, got %d", c.VerifyTrials)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log-format %q", c.LogFormat)
	}
	return nil
}

// ParseLevel maps a level name to a slog level. "trace" selects the
// per-instruction records of the optimizer.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return core.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log-level %q", name)
	}
}

// Logger builds a logger writing to w at the configured level and format.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// OptimizerBuilder returns a core.Builder configured from c.
func (c Config) OptimizerBuilder() core.Builder {
	return core.NewBuilder().WithIDBase(util.ID(c.IDBase))
}
