package logging

import (
	"context"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// Setup points the apex/log default logger at stderr with the given level.
// Unknown levels fall back to info.
func Setup(level string) {
	log.SetHandler(text.New(os.Stderr))

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// WithRequestID stores a request id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestID returns the request id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// FromContext returns a log entry carrying the request id if present.
func FromContext(ctx context.Context) log.Interface {
	if id := RequestID(ctx); id != "" {
		return log.WithField("request_id", id)
	}
	return log.Log
}
