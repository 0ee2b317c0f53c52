package logging

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger. dev selects the human-readable console
// encoder; otherwise JSON production output is used.
func New(level string, dev bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// LogGenerate logs a dataset generation run.
func LogGenerate(lg *zap.Logger, seed int64, rows int, took time.Duration) {
	lg.Info("dataset generated",
		zap.Int64("seed", seed),
		zap.Int("rows", rows),
		zap.Int64("duration_ms", took.Milliseconds()))
}

// LogExport logs a CSV download.
func LogExport(lg *zap.Logger, option, filename string, rows int) {
	lg.Info("export served",
		zap.String("option", option),
		zap.String("filename", filename),
		zap.Int("rows", rows))
}

// LogFallback logs a map render that degraded to the scatter chart.
func LogFallback(lg *zap.Logger, reason error) {
	lg.Warn("map render failed, using scatter fallback", zap.Error(reason))
}

// LogError logs an error from an operation.
func LogError(lg *zap.Logger, operation string, err error) {
	lg.Error(operation+" failed", zap.Error(err))
}
