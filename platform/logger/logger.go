package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin ctx-first wrapper around zap. The context parameter is
// accepted on every call so request-scoped enrichment can be added without
// touching call sites.
type Logger struct {
	z *zap.Logger
}

var global = &Logger{z: zap.NewNop()}

// Init builds the global logger. level is a zap level name ("debug", "info",
// "warn", "error"); asJSON switches between the production JSON encoder and
// the human-readable console encoder.
func Init(level string, asJSON bool) error {
	const op = "logger.Init"

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%s: parse level %q: %w", op, level, err)
	}

	var cfg zap.Config
	if asJSON {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("%s: build: %w", op, err)
	}

	global = &Logger{z: z}
	return nil
}

func L() *Logger { return global }

// With returns a child of the global logger with the fields attached.
func With(fields ...Field) *Logger {
	return &Logger{z: global.z.With(fields...)}
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...Field) {
	l.z.Error(msg, fields...)
}

func (l *Logger) Sync() error { return l.z.Sync() }

func Debug(ctx context.Context, msg string, fields ...Field) {
	global.Debug(ctx, msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	global.Info(ctx, msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	global.Warn(ctx, msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	global.Error(ctx, msg, fields...)
}
