// Package requestid generates and propagates a per-request correlation id.
// The id travels through the request context and is echoed in error payloads
// and log lines so one analysis request can be traced across layers.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

// Generate creates a new unique request id.
func Generate() string {
	return uuid.New().String()
}

// ToContext returns a child context carrying the request id.
func ToContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// FromContext extracts the request id from the context. It returns the empty
// string when no id was set.
func FromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// FromContextPtr returns the request id as a pointer for optional payload
// fields, nil when no id was set.
func FromContextPtr(ctx context.Context) *string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return &requestID
	}
	return nil
}

// FromRequest extracts the request id from the HTTP request context.
func FromRequest(r *http.Request) string {
	return FromContext(r.Context())
}
