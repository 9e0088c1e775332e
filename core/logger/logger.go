package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init sets up the logging configuration. Subsequent calls are no-ops.
func Init() {
	once.Do(func() {
		var cfg zap.Config

		if os.Getenv("ENV") == "production" {
			cfg = zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		base, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		sugar = base.Sugar()
	})
}

func get() *zap.SugaredLogger {
	if sugar == nil {
		Init()
	}
	return sugar
}

// Debug logs a message with optional key-value pairs
func Debug(msg string, keysAndValues ...any) {
	get().Debugw(msg, keysAndValues...)
}

// Info logs a message with optional key-value pairs
func Info(msg string, keysAndValues ...any) {
	get().Infow(msg, keysAndValues...)
}

// Warn logs a message with optional key-value pairs
func Warn(msg string, keysAndValues ...any) {
	get().Warnw(msg, keysAndValues...)
}

// Error logs a message with optional key-value pairs
func Error(msg string, keysAndValues ...any) {
	get().Errorw(msg, keysAndValues...)
}

// Fatal logs a message and exits
func Fatal(msg string, keysAndValues ...any) {
	get().Fatalw(msg, keysAndValues...)
}

// Sync flushes buffered log entries
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
