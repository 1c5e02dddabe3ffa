// Package logging builds the structured logger shared by the arcade.
// The terminal belongs to the UI, so logs go to a file.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aaronzipp/classroom-arcade/internal/config"
)

// New creates a JSON file logger, or a no-op logger when no log file is configured
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	if cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger for %s: %w", cfg.LogFile, err)
	}
	return logger.Named("arcade"), nil
}
