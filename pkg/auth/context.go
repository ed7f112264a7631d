package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const callerKey contextKey = "caller"

// ErrCallerNotFound is returned when no caller address exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrCallerNotFound = errors.New("caller address not found in context")

// CallerFromCtx extracts the authenticated caller address from the request context.
// Returns "" and ErrCallerNotFound if no caller is set (unauthenticated request).
func CallerFromCtx(ctx context.Context) (string, error) {
	caller, ok := ctx.Value(callerKey).(string)
	if !ok || caller == "" {
		return "", ErrCallerNotFound
	}
	return caller, nil
}

// WithCaller returns a new context with the given caller address attached.
// Used by authentication middleware after validating the session.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}
