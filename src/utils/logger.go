package utils

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// StandardLogger enforces specific log message formats.
type StandardLogger struct {
	*zap.SugaredLogger
}

// IntegerLevelEncoder returns custom encoder for level field.
func IntegerLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendInt8((int8(l) + 3) * 10)
}

// NewLogger creates the application logger. Output goes to stderr so that
// stdout only carries the rendered schedule.
func NewLogger(cfg *Config) (*StandardLogger, error) {
	outputLevel := zap.WarnLevel
	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		outputLevel = level
	}

	var zcfg zap.Config
	if cfg.Environment != "local" {
		zcfg = zap.NewProductionConfig()
		zcfg.InitialFields = map[string]any{"name": "cronparser"}
		zcfg.EncoderConfig.EncodeLevel = IntegerLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.EncoderConfig.TimeKey = "time"
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.Level = zap.NewAtomicLevelAt(outputLevel)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &StandardLogger{SugaredLogger: logger.Sugar()}, nil
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *StandardLogger {
	return &StandardLogger{zap.NewNop().Sugar()}
}

func GetChildLogger(parent *StandardLogger, childContext map[string]string) *StandardLogger {
	fields := make([]any, 0, len(childContext))
	for k, v := range childContext {
		fields = append(fields, zap.String(k, v))
	}
	return &StandardLogger{parent.With(fields...)}
}

// LoggerFromCtx returns the Logger associated with the ctx. If no logger
// is associated a disabled logger is returned.
func LoggerFromCtx(ctx context.Context) *StandardLogger {
	if l, ok := ctx.Value(ctxKey{}).(*StandardLogger); ok {
		return l
	}
	return NewNopLogger()
}

// LoggerWithCtx returns a copy of ctx with the Logger attached.
func LoggerWithCtx(ctx context.Context, l *StandardLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*StandardLogger); ok {
		if lp == l {
			// Do not store same logger.
			return ctx
		}
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
