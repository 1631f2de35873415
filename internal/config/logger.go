package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds the process logger: a production (JSON) logger for the
// json format and a development logger for console, both at cfg's level
// and writing to stderr.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if strings.EqualFold(cfg.LogFormat, "json") {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
