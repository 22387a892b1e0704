// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads foldl configuration.
//
// Precedence, highest first:
//  1. Overrides passed to Load (command line flags)
//  2. Environment variables with the FOLDL_ prefix
//  3. The YAML config file
//  4. Defaults
//
// Environment variables map to keys by dropping the prefix, lowercasing and
// splitting the section off at the first underscore:
//
//	FOLDL_STATS_TAKE  -> stats.take
//	FOLDL_LOG_LEVEL   -> log.level
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FOLDL_"

const maxConfigFileSize = 1 << 20

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete foldl configuration.
type Config struct {
	Stats Stats `koanf:"stats"`
	Log   Log   `koanf:"log"`
}

// Stats configures the stats command.
type Stats struct {
	Take   int      `koanf:"take"`
	Min    *float64 `koanf:"min"`
	Max    *float64 `koanf:"max"`
	Scale  float64  `koanf:"scale"`
	Offset float64  `koanf:"offset"`
	Format string   `koanf:"format"`
}

// Log configures the logger.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Stats: Stats{Scale: 1, Format: "text"},
		Log:   Log{Level: "warn", Format: "console"},
	}
}

// Load reads the YAML file at path, when path is not empty, then the
// environment, then overrides keyed by dotted path ("stats.take").
func Load(path string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, v := range overrides {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config file %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s too large: %d bytes", path, info.Size())
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// envKey maps FOLDL_SECTION_FIELD_NAME to section.field_name.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

// Validate reports the first invalid setting, wrapped around ErrInvalid.
func (c *Config) Validate() error {
	s := c.Stats
	if s.Take < 0 {
		return fmt.Errorf("%w: stats.take must be >= 0, got %d", ErrInvalid, s.Take)
	}
	if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
		return fmt.Errorf("%w: stats.min %g is greater than stats.max %g", ErrInvalid, *s.Min, *s.Max)
	}
	if s.Format != "json" && s.Format != "text" {
		return fmt.Errorf("%w: stats.format must be 'json' or 'text', got %q", ErrInvalid, s.Format)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log.format must be 'json' or 'console', got %q", ErrInvalid, c.Log.Format)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}
