package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestContextValues(t *testing.T) {
	ctx := SetRequestID(context.Background(), "req-1")
	ctx = SetUserID(ctx, "user-9")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "user-9", GetUserID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := SetRequestID(context.Background(), "req-2")
	l.Infof(ctx, "hello %s", "world")
	l.Error(ctx, "boom")
}
