package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *slog.Logger // один глобальный логгер поверх zap

// ParseLevel converts a config level string to a zap level, defaulting to info.
func ParseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewZap builds the JSON production zap logger used by clients, handlers and services.
func NewZap(levelStr string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// InitSlog routes the global slog logger (and this package's helpers) into zapLogger.
func InitSlog(zapLogger *zap.Logger, levelStr string) {
	level := slog.LevelInfo
	switch ParseLevel(levelStr) {
	case zapcore.DebugLevel:
		level = slog.LevelDebug
	case zapcore.WarnLevel:
		level = slog.LevelWarn
	case zapcore.ErrorLevel:
		level = slog.LevelError
	}
	slogHandlerOptions := slogzap.Option{
		Level:  level,
		Logger: zapLogger,
	}
	globalLogger = slog.New(slogHandlerOptions.NewZapHandler())
	slog.SetDefault(globalLogger)
}

// ensureInitialized falls back to a JSON stdout logger when InitSlog was never called.
func ensureInitialized() {
	if globalLogger == nil {
		globalLogger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// Debug logs a message at DebugLevel.
func Debug(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Info logs a message at InfoLevel.
func Info(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Log(context.Background(), slog.LevelWarn, msg, args...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, args ...any) {
	ensureInitialized()
	globalLogger.Log(context.Background(), slog.LevelError, msg, args...)
}

// Fatal logs a message at ErrorLevel then exits.
func Fatal(msg string, args ...any) {
	ensureInitialized()
	// логируем всегда перед выходом
	globalLogger.Error(msg, args...)
	os.Exit(1)
}
