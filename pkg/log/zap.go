package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction = "production"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	fieldRequestID = "request_id"
)

// ZapConfig controls how Init builds the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds a zap-backed Logger. It never fails: a broken config falls back
// to a development logger.
func Init(cfg ZapConfig) Logger {
	var zc zap.Config
	if cfg.Mode == ModeProduction {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	switch cfg.Encoding {
	case EncodingJSON:
		zc.Encoding = EncodingJSON
	default:
		zc.Encoding = EncodingConsole
	}

	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && zc.Encoding == EncodingConsole {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	base, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		base, _ = zap.NewDevelopment(zap.AddCallerSkip(1))
	}

	return newZapLogger(base)
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return newZapLogger(zap.NewNop())
}

func newZapLogger(base *zap.Logger) *zapLogger {
	return &zapLogger{
		base:  base,
		sugar: base.Sugar(),
	}
}

// Zap returns the zap.Logger behind l, for libraries that need one directly.
// Loggers not created by this package get a no-op zap logger.
func Zap(l Logger) *zap.Logger {
	if zl, ok := l.(*zapLogger); ok {
		// Undo the caller skip meant for the wrapper methods.
		return zl.base.WithOptions(zap.AddCallerSkip(-1))
	}
	return zap.NewNop()
}

func parseLevel(level string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := RequestID(ctx); id != "" {
		return l.sugar.With(fieldRequestID, id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.with(ctx).Debug(arg...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.with(ctx).Info(arg...) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.with(ctx).Warn(arg...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.with(ctx).Error(arg...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.with(ctx).Fatal(arg...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.with(ctx).DPanic(arg...) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.with(ctx).Panic(arg...) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
