package logging

import (
	"context"
	"testing"

	"github.com/Noah-Moller/CanvasKit/pkg/ctxdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	ctx := ctxdata.WithTraceID(context.Background(), "trace-123")
	logger.Info(ctx, "hello", zap.String("k", "v"))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "trace-123", entries[0].ContextMap()[requestID])
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
}

func TestLogger_NoRequestIDWithoutTrace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := New(zap.New(core))

	logger.Warn(context.Background(), "plain")

	entries := logs.All()
	require.Len(t, entries, 1)
	_, ok := entries[0].ContextMap()[requestID]
	assert.False(t, ok)
}

func TestContextWithLogger(t *testing.T) {
	logger := Nop()
	ctx := ContextWithLogger(context.Background(), logger)

	got, ok := GetFromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, logger, got)

	_, ok = GetFromContext(context.Background())
	assert.False(t, ok)
}
