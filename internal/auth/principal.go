package auth

import "context"

// Principal is the authenticated identity carried through a request after
// credential verification. It is constructed once per request and never
// mutated afterwards.
type Principal struct {
	ID       int32    `json:"id"`
	Username string   `json:"username"`
	Identity Identity `json:"identity"`
}

// principalKey is the private context key for the request Principal.
type principalKey struct{}

// WithPrincipal returns a context carrying the given Principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom retrieves the Principal attached by the auth middleware.
// The second return is false on routes that did not pass through it.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
