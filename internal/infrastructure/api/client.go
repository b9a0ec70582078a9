// Package api is the transport to the recycling backend: one HTTP call per
// operation, JSON in and out, every failure reported as *apperror.AppError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"recyclehub/internal/core/apperror"
	appctx "recyclehub/internal/core/context"
	"recyclehub/internal/infrastructure/api/dto"
	"recyclehub/pkg/logger"
)

var tracer = otel.Tracer("recyclehub/api")

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:3000"

	// MaxResponseSize is the maximum response body size (10MB)
	MaxResponseSize = 10 * 1024 * 1024

	// RequestIDHeader carries the request id to the backend.
	RequestIDHeader = "X-Request-ID"
)

// Requester performs one backend call. *Client implements it.
type Requester interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// Config holds transport configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration // 0 means only the caller's context applies
	Headers   map[string]string
	UserAgent string

	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

// Client is the backend HTTP client.
type Client struct {
	baseURL string
	headers map[string]string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a transport client. Responses are transparently decompressed.
func NewClient(cfg Config, log *logger.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parent := cfg.Transport
	if parent == nil {
		parent = http.DefaultTransport
	}

	headers := make(map[string]string, len(cfg.Headers)+1)
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}

	if log == nil {
		log = logger.Default()
	}

	return &Client{
		baseURL: baseURL,
		headers: headers,
		http: &http.Client{
			Transport: gzhttp.Transport(parent),
			Timeout:   cfg.Timeout,
		},
		log: log.WithComponent("api"),
	}
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE request. out may be nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do performs one call. body is JSON-encoded when not nil; out receives the
// decoded 2xx response when not nil. No retries.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	ctx, span := tracer.Start(ctx, "http.client "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		))
	defer span.End()

	start := time.Now()
	status, err := c.do(ctx, method, path, body, out)
	duration := time.Since(start)

	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(duration.Seconds())

	span.SetAttributes(attribute.Int("http.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	c.log.WithContext(ctx).Debugw("api request",
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"error", err,
	)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, apperror.NewValidation("request body cannot be encoded").WithCause(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, apperror.NewNetwork(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(RequestIDHeader, appctx.OutboundRequestID(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, apperror.NewNetwork(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return 0, apperror.NewNetwork(err)
	}
	if len(raw) > MaxResponseSize {
		return resp.StatusCode, apperror.NewDecode(resp.StatusCode, nil).
			WithDetail("reason", "response body too large")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, errorFromBody(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, apperror.NewDecode(resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}

// errorFromBody builds the error of a non-2xx response. Bodies that are not
// a JSON object fall back to "HTTP <status>".
func errorFromBody(status int, raw []byte) *apperror.AppError {
	var body dto.ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apperror.NewHTTP(status, "", nil)
	}
	return apperror.NewHTTP(status, body.Error, body.Details)
}

// --- Typed helpers ---

// GetJSON performs a GET and decodes the response into T.
func GetJSON[T any](ctx context.Context, r Requester, path string) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// PostJSON performs a POST and decodes the response into T.
func PostJSON[T any](ctx context.Context, r Requester, path string, body any) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPost, path, body, &out)
	return out, err
}

// PutJSON performs a PUT and decodes the response into T.
func PutJSON[T any](ctx context.Context, r Requester, path string, body any) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPut, path, body, &out)
	return out, err
}

// PatchJSON performs a PATCH and decodes the response into T.
func PatchJSON[T any](ctx context.Context, r Requester, path string, body any) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodPatch, path, body, &out)
	return out, err
}
