package authstate

import "context"

type contextKey struct{}

// WithProvider adds a provider to the context.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext retrieves the provider from the context.
// Returns nil, false if none is found.
func FromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(contextKey{}).(*Provider)
	return p, ok && p != nil
}

// MustFromContext retrieves the provider from the context.
// Panics if the context carries none.
func MustFromContext(ctx context.Context) *Provider {
	p, ok := FromContext(ctx)
	if !ok {
		panic("authstate: MustFromContext called without a provider in scope; wrap the context with WithProvider")
	}
	return p
}
