package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Session returns the live session for the token, or nil if there is none.
func (as *LoginChecker) Session(ctx context.Context, token string) (*Session, error) {
	session, err := getSession(ctx, as.redisClient, token)
	if err != nil || session == nil {
		return nil, err
	}

	if time.Since(session.CreatedAt) > as.ttl {
		return nil, nil
	}

	return session, nil
}

func (as *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	session, err := as.Session(ctx, token)
	if err != nil {
		return false, err
	}
	return session != nil, nil
}
