package auth

import (
	"context"
)

type ctxKey int8

const ctxKeySession ctxKey = iota

func CtxWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKeySession, s)
}

// SessionFromCtx returns nil when no session is attached.
func SessionFromCtx(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxKeySession).(*Session)
	if !ok {
		return nil
	}

	return s
}
