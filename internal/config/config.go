// Package config loads the settings of the evseq command-line tool.
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/arloliu/evseq/errs"
	"github.com/arloliu/evseq/format"
)

// Config holds the CLI settings.
type Config struct {
	// Seed seeds the random source of composition and sampling; 0 draws a
	// fresh seed per run.
	Seed uint64
	// Compression is the archive codec name: none, zstd, s2 or lz4.
	Compression string
	// LogLevel is a zap level name.
	LogLevel string
	// LogFormat is json or console.
	LogFormat string
	// ProgressEvery is the number of sequences between debug progress lines.
	ProgressEvery int
}

// CompressionType returns the parsed archive codec.
func (c *Config) CompressionType() (format.CompressionType, error) {
	return format.ParseCompression(c.Compression)
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log level %q", errs.ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}

func validate(cfg *Config) error {
	if _, err := cfg.CompressionType(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	if _, err := cfg.Level(); err != nil {
		return err
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q", errs.ErrInvalidConfig, cfg.LogFormat)
	}
	if cfg.ProgressEvery <= 0 {
		return fmt.Errorf("%w: progress interval %d", errs.ErrInvalidConfig, cfg.ProgressEvery)
	}

	return nil
}
