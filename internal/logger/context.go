package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	metaKey ctxKey = iota
	loggerKey
)

// requestMeta is the per-request data attached to every log line. It is
// copied on write so parent contexts never observe a child's values.
type requestMeta struct {
	requestID string
	userID    string
}

func metaFrom(ctx context.Context) requestMeta {
	m, _ := ctx.Value(metaKey).(requestMeta)
	return m
}

// WithRequestID stores the request ID, generating a UUID when it is empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	m := metaFrom(ctx)
	m.requestID = requestID
	return context.WithValue(ctx, metaKey, m)
}

func RequestIDFromContext(ctx context.Context) string {
	return metaFrom(ctx).requestID
}

// WithUserID stores the authenticated user
func WithUserID(ctx context.Context, userID string) context.Context {
	m := metaFrom(ctx)
	m.userID = userID
	return context.WithValue(ctx, metaKey, m)
}

func UserIDFromContext(ctx context.Context) string {
	return metaFrom(ctx).userID
}

// WithLogger attaches l to ctx
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the attached logger or the process default
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

func (m requestMeta) fields() []Field {
	var fields []Field
	if m.requestID != "" {
		fields = append(fields, String("request_id", m.requestID))
	}
	if m.userID != "" {
		fields = append(fields, String("user_id", m.userID))
	}
	return fields
}

// Ctx is the usual entry point in handlers and services: the context's
// logger with request_id and user_id attached
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
