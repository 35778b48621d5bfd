// Package logging provides config-driven categorized logging for reservoirs.
// Logging is controlled by debug_mode in the config - when false, every
// category logger is a no-op.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"reservoirs/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot       Category = "boot"       // Startup and config resolution
	CategoryConsole    Category = "console"    // Menu loop, user input handling
	CategoryCollection Category = "collection" // Collection mutations
	CategoryConfig     Category = "config"     // Config load/save
)

var (
	root     = zap.NewNop()
	settings config.LoggingConfig
	mu       sync.RWMutex
)

// Initialize builds the root logger from lc. It may be called again to
// reconfigure; the previous logger is synced first.
func Initialize(lc config.LoggingConfig) error {
	l, err := Build(lc)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	_ = root.Sync()
	root = l
	settings = lc

	if lc.DebugMode {
		root.Named(string(CategoryBoot)).Info("logging initialized",
			zap.String("level", lc.Level),
			zap.String("format", lc.Format),
			zap.String("file", outputPath(lc)))
	}
	return nil
}

// Build returns a zap logger for lc without installing it. Production mode
// (debug_mode false) yields a no-op logger.
func Build(lc config.LoggingConfig) (*zap.Logger, error) {
	if !lc.DebugMode {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if lc.Level != "" {
		lvl, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
		level = lvl
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lc.Format != "json" {
		zc.Encoding = "console"
	}
	zc.OutputPaths = []string{outputPath(lc)}
	zc.ErrorOutputPaths = []string{"stderr"}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func outputPath(lc config.LoggingConfig) string {
	if lc.File == "" {
		return "stderr"
	}
	return lc.File
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return settings.IsCategoryEnabled(string(category))
}

// Get returns a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(string(category))
}

// CloseAll flushes and resets to the no-op logger (call at shutdown)
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	_ = root.Sync()
	root = zap.NewNop()
	settings = config.LoggingConfig{}
}

// Boot logs to the boot category
func Boot(msg string, fields ...zap.Field) {
	Get(CategoryBoot).Info(msg, fields...)
}

// ConfigEvent logs to the config category
func ConfigEvent(msg string, fields ...zap.Field) {
	Get(CategoryConfig).Info(msg, fields...)
}
