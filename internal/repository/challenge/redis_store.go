package challenge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightforge/internal/entities"
	"freightforge/internal/service/registration"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// RedisStore relies on key expiry, so it needs no cleanup task.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, challenge entities.VerificationChallenge, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Delete(ctx, challenge.ID)
	}

	data, err := encode(challenge)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, keyPrefix+challenge.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("set challenge: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*entities.VerificationChallenge, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, registration.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	return decode(data)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	return nil
}
