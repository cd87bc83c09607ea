package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mtorelli/linknest/internal/models"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL, refreshed on every write.
// State stays transient; the TTL is what bounds a session's lifetime.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*models.SessionState, error) {
	s, err := r.rdb.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out models.SessionState
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		// corrupt entry: drop it and report the session gone
		_ = r.rdb.Del(ctx, keyPrefix+sessionID).Err()
		return nil, ErrNotFound
	}
	return &out, nil
}

func (r *RedisStore) Put(ctx context.Context, s *models.SessionState) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+s.SessionID, b, r.ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
