package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/cache"
	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
)

const keyPrefix = "assessment_session:"

// RedisStore persists sessions as JSON through the cache service
type RedisStore struct {
	cache cache.CacheService
	ttl   time.Duration
}

func NewRedisStore(c cache.CacheService, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{cache: c, ttl: ttl}
}

func (r *RedisStore) Save(ctx context.Context, s *quiz.Session) error {
	if err := r.cache.Set(ctx, key(s.ID), s, r.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*quiz.Session, error) {
	var s quiz.Session
	if err := r.cache.Get(ctx, key(id), &s); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if s.Answers == nil {
		s.Answers = make(map[string]string)
	}
	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, key(id))
}

func key(id string) string {
	return keyPrefix + id
}
