package auth

import "context"

// TokenProvider supplies the bearer token for one request scope.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed bearer token. Dialfire issues opaque tokens per
// tenant and per campaign with no refresh flow, so a static provider is the
// only implementation the client needs; the token's lifecycle belongs to the
// caller.
type StaticToken string

// Token implements TokenProvider.
func (t StaticToken) Token(_ context.Context) (string, error) {
	return string(t), nil
}
