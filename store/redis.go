package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores slots in redis under "seatgrid:<theaterID>:<key>". Useful
// when the in-progress selection cache should survive across terminals on the
// same machine; the widget remains single-user either way.
type RedisKV struct {
	client    *redis.Client
	theaterID string
}

// NewRedisKV creates a redis-backed store for one theater.
func NewRedisKV(addr string, db int, theaterID string) (*RedisKV, error) {
	theaterID = strings.TrimSpace(theaterID)
	if theaterID == "" {
		return nil, fmt.Errorf("theater id is required")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	return &RedisKV{client: client, theaterID: theaterID}, nil
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, r.slotKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisKV) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, r.slotKey(key), value, 0).Err()
}

// Close releases the underlying redis connection.
func (r *RedisKV) Close() error {
	return r.client.Close()
}

func (r *RedisKV) slotKey(key string) string {
	return fmt.Sprintf("seatgrid:%s:%s", r.theaterID, key)
}
