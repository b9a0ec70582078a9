package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrace_KeepsInboundIDs(t *testing.T) {
	trace := NewTrace("req-1", "trace-1")
	assert.Equal(t, "req-1", trace.RequestID)
	assert.Equal(t, "trace-1", trace.TraceID)
	assert.Len(t, trace.SpanID, 16)
}

func TestNewTrace_GeneratesMissing(t *testing.T) {
	trace := NewTrace("", "")
	assert.NotEmpty(t, trace.RequestID)
	assert.NotEmpty(t, trace.TraceID)
	assert.NotEqual(t, trace.RequestID, trace.TraceID)
}

func TestOutboundRequestID(t *testing.T) {
	ctx := WithTrace(context.Background(), NewTrace("req-1", ""))
	assert.Equal(t, "req-1", OutboundRequestID(ctx))
	require.NotNil(t, GetTrace(ctx))

	bare := context.Background()
	assert.Nil(t, GetTrace(bare))
	assert.Empty(t, GetRequestID(bare))

	a, b := OutboundRequestID(bare), OutboundRequestID(bare)
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
