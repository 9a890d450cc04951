package store

import "context"

type (
	actorKey struct{}
	reqIDKey struct{}
)

// WithActor attaches the acting user id to the context
// repos read it for audit columns on writes that happen off the request path
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorID retrieves the acting user id from context if present
func ActorID(ctx context.Context) (string, bool) {
	v := ctx.Value(actorKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}

// WithRequestID attaches a request id to the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

// RequestID retrieves a request id from context if present
func RequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(reqIDKey{})
	if v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, s != ""
}
