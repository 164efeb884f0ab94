package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/workoutsheet/internal/workout"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultTTL    = 12 * time.Hour
	planKeyPrefix = "workoutsheet-plan||"
)

var ErrNotCached = errors.New("plan not cached")

type cachedPlan struct {
	Worksheet string        `json:"worksheet"`
	Plan      *workout.Plan `json:"plan"`
}

// Store caches one parsed worksheet per session token. Storing a plan for another
// worksheet replaces the previous one.
type Store struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewStore(redisClient *redis.Client, ttl time.Duration) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns ErrNotCached when nothing is cached for the token or the cached plan is for another worksheet.
func (s *Store) Get(ctx context.Context, token, worksheet string) (*workout.Plan, error) {
	cached, err := s.get(ctx, token)
	if err != nil {
		return nil, err
	}
	if cached.Worksheet != worksheet || cached.Plan == nil {
		return nil, ErrNotCached
	}
	return cached.Plan, nil
}

func (s *Store) Put(ctx context.Context, token, worksheet string, plan *workout.Plan) error {
	planJson, err := json.Marshal(cachedPlan{
		Worksheet: worksheet,
		Plan:      plan,
	})
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	if err := s.redisClient.Set(ctx, planKeyPrefix+token, planJson, s.ttl).Err(); err != nil {
		return fmt.Errorf("store plan: %w", err)
	}
	return nil
}

// Patch applies a written set update to the cached plan. It reports false if the
// worksheet is not cached or the set is not part of the cached plan.
func (s *Store) Patch(ctx context.Context, token, worksheet string, upd workout.SetUpdate) (bool, error) {
	plan, err := s.Get(ctx, token, worksheet)
	if errors.Is(err, ErrNotCached) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !plan.ApplyUpdate(upd) {
		return false, nil
	}

	if err := s.Put(ctx, token, worksheet, plan); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Clear(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, planKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("clear plan: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, token string) (*cachedPlan, error) {
	cmd := s.redisClient.Get(ctx, planKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotCached
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}

	cached := &cachedPlan{}
	if err := json.Unmarshal([]byte(cmd.Val()), cached); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return cached, nil
}
