package httpx

import (
	"context"

	"github.com/tynanfleet/fleetcheck/pkg/jwtx"
)

type ctxKey string

const ctxKeySession ctxKey = "session"

func contextWithSession(ctx context.Context, c jwtx.SessionClaims) context.Context {
	return context.WithValue(ctx, ctxKeySession, c)
}

// SessionFromContext returns the verified session claims attached by
// SessionMiddleware. ok is false for unauthenticated requests.
func SessionFromContext(ctx context.Context) (jwtx.SessionClaims, bool) {
	c, ok := ctx.Value(ctxKeySession).(jwtx.SessionClaims)
	return c, ok
}
