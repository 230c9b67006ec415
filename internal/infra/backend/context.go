package backend

import "context"

type ctxKey int

const (
	credentialKey ctxKey = iota
	requestIDKey
)

// WithCredential attaches the caller's bearer token to outgoing calls made
// with ctx.
func WithCredential(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, credentialKey, token)
}

func credentialFrom(ctx context.Context) string {
	token, _ := ctx.Value(credentialKey).(string)
	return token
}

// WithRequestID propagates the inbound request id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
