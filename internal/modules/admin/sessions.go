// README: Session store capability; redis-backed tokens with expiry.
package admin

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore abstracts token storage so the service never touches
// ambient global state.
type SessionStore interface {
	Set(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

const sessionKeyPrefix = "admin_session:"

// RedisSessionStore keeps admin session tokens in redis; expiry is
// delegated to the key TTL.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+token, "1", ttl).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKeyPrefix+token).Err()
}
