// Package user describes anonymous task owners.
package user

import "context"

type ctxKey struct{}

// WithID returns context with authenticated user id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns authenticated user id or empty string.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)

	return id
}

// TokenIssuer issues bearer tokens for new anonymous users.
type TokenIssuer interface {
	IssueToken(ctx context.Context) (string, error)
}
