// Package logger provides structured logging using Zap.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment.
// "production" logs JSON at info, "test" discards everything, and any other
// value uses the console encoder at debug. LOG_LEVEL overrides the level.
func Init(env string) {
	once.Do(func() {
		sugar = build(env, os.Getenv("LOG_LEVEL")).Sugar().With("service", "billbook")
	})
}

func build(env, level string) *zap.Logger {
	if env == "test" {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	if env == "production" {
		cfg = zap.NewProductionConfig()
	}
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	base, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return base
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
