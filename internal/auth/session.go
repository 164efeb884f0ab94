package auth

import (
	"context"
	"time"
)

// Session is what a login hands to the rest of the request handling.
type Session struct {
	Token           string    `json:"token"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"displayName"`
	CredentialsFile string    `json:"credentialsFile"`
	CreatedAt       time.Time `json:"createdAt"`
}

type sessionCtxKey struct{}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

// SessionFromContext returns the session the auth middleware stored, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok && session != nil
}
