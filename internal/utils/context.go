package utils

import (
	"context"

	"github.com/PendemixAI/vax-tracker/internal/session"
)

type contextKey string

const ContextSessionKey contextKey = "session"

func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, ContextSessionKey, s)
}

func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(ContextSessionKey).(*session.Session)
	return s, ok && s != nil
}
