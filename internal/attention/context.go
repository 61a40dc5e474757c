package attention

import "context"

type scopeKey struct{}

// WithScope returns a copy of ctx that carries s. Widgets constructed with
// the returned context can find the scope through FromContext.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the scope carried by ctx, if any.
func FromContext(ctx context.Context) (*Scope, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok && s != nil
}
