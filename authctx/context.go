package authctx

import "context"

type contextKey string

const providerKey contextKey = "auth_provider"

// WithProvider returns a copy of ctx carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey, p)
}

// FromContext returns the provider stored by WithProvider.
func FromContext(ctx context.Context) (*Provider, bool) {
	p, ok := ctx.Value(providerKey).(*Provider)
	return p, ok && p != nil
}
