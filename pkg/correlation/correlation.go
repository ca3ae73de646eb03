// Package correlation propagates a per-request correlation ID through
// contexts, HTTP headers and queue message headers.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header carrying the correlation ID.
const HeaderName = "X-Correlation-ID"

// KafkaHeaderName is the Kafka message header carrying the correlation ID.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext extracts the correlation ID from ctx, or "" if absent.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID returns a child context carrying the given correlation ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID generates a fresh correlation ID (UUID v4).
func NewID() string {
	return uuid.New().String()
}
