package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduportal/store"
	"eduportal/utils/cache"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis with a TTL matching the
// token lifetime. Deleting the key revokes the session immediately.
type RedisSessionStore struct {
	cache *cache.RedisCache
	ttl   time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(c *cache.RedisCache, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{cache: c, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, token)
}

func (s *RedisSessionStore) Put(ctx context.Context, sess *store.Session) error {
	return s.cache.SetJSON(ctx, sessionKey(sess.Token), sess, s.ttl)
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*store.Session, error) {
	var sess store.Session
	err := s.cache.GetJSON(ctx, sessionKey(token), &sess)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKey(token))
}
