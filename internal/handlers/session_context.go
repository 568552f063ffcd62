package handlers

import (
	"context"
	"net/http"

	"corretoraBack/internal/services"
)

type sessionKey struct{}

// WithSession stores the request's session in ctx.
func WithSession(ctx context.Context, sess *services.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// SessionFromContext returns the session loaded by the session middleware.
func SessionFromContext(ctx context.Context) (*services.Session, bool) {
	sess, ok := ctx.Value(sessionKey{}).(*services.Session)
	return sess, ok && sess != nil
}

func requireSession(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Session missing", http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}
