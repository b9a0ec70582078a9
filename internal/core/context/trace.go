// Package context carries the ids that tie a dashboard request to the backend
// calls it causes.
package context

import (
	"context"

	"github.com/google/uuid"
)

// TraceContext identifies one dashboard request. RequestID is forwarded to the
// backend on every outbound call made while serving it.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// NewTrace builds a TraceContext from inbound header values, generating any
// id the caller did not send.
func NewTrace(requestID, traceID string) *TraceContext {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return &TraceContext{
		TraceID:   traceID,
		SpanID:    uuid.NewString()[:16],
		RequestID: requestID,
	}
}

// WithTrace stores trace in ctx.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns the TraceContext of ctx, or nil.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns the request id of ctx or "".
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// OutboundRequestID is the X-Request-ID for a backend call: the id of the
// dashboard request being served, or a fresh one for calls made outside a
// request (startup load, refresher, CLI).
func OutboundRequestID(ctx context.Context) string {
	if id := GetRequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
