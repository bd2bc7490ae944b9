package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const key = "session:current_user"

// Storage keeps the externally validated session identity. The auth
// collaborator writes it; the engine only reads it and treats absence as
// "not ready".
type Storage struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStorage(rdb *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		rdb: rdb,
		ttl: ttl,
	}
}

// CurrentUser returns the active user id, or 0 when no session is present.
func (s *Storage) CurrentUser(ctx context.Context) (int64, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

func (s *Storage) SetCurrentUser(ctx context.Context, userID int64) error {
	return s.rdb.Set(ctx, key, strconv.FormatInt(userID, 10), s.ttl).Err()
}

func (s *Storage) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, key).Err()
}
