package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newZapLogger(zap.New(core))

	l.Infof(WithRequestID(context.Background(), "req-1"), "hello %s", "world")
	l.Info(context.Background(), "no id")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "hello world", entries[0].Message)
	assert.Equal(t, "req-1", entries[0].ContextMap()[fieldRequestID])

	_, ok := entries[1].ContextMap()[fieldRequestID]
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}

func TestZap(t *testing.T) {
	assert.NotNil(t, Zap(Init(ZapConfig{Level: "debug", Encoding: EncodingJSON})))
	assert.NotNil(t, Zap(nil))
}
