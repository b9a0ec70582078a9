package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"recyclehub/internal/core/apperror"
	appctx "recyclehub/internal/core/context"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestWithError_AppError(t *testing.T) {
	log, logs := observed()

	log.WithAction("suppliers", "load").
		WithError(apperror.NewHTTP(503, "", nil)).
		Errorw("store action failed")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "suppliers", fields["entity"])
	assert.Equal(t, "load", fields["action"])
	assert.Equal(t, apperror.CodeHTTP, fields["error_code"])
	assert.EqualValues(t, 503, fields["status"])
}

func TestWithError_PlainAndNil(t *testing.T) {
	log, logs := observed()

	assert.Same(t, log, log.WithError(nil))

	log.WithError(errors.New("boom")).Warnw("plain")
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "boom", fields["error"])
	assert.NotContains(t, fields, "error_code")
}

func TestFromContext_AddsTrace(t *testing.T) {
	log, logs := observed()

	ctx := appctx.WithTrace(context.Background(), &appctx.TraceContext{TraceID: "t-1", RequestID: "r-1"})
	ctx = WithLogger(ctx, log)

	Info(ctx, "hello")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-1", fields["trace_id"])
	assert.Equal(t, "r-1", fields["request_id"])
	assert.NotContains(t, fields, "span_id")
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zap.DebugLevel))
	assert.True(t, log.Desugar().Core().Enabled(zap.InfoLevel))
}
