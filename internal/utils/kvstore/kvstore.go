package kvstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrKeyNotFound = errors.New("key not found")

type (
	// Store is string-keyed storage of string values that survives restarts.
	Store interface {
		Get(ctx context.Context, key string) (string, error)
		Set(ctx context.Context, key string, value string, ttl time.Duration) error
		Delete(ctx context.Context, key string) error
	}

	redisStore struct {
		conn *redis.Client
	}
)

func NewRedisStore(conn *redis.Client) Store {
	return &redisStore{conn: conn}
}

// Get returns ErrKeyNotFound for missing keys.
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.conn.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set stores value; a zero ttl keeps the key forever.
func (s *redisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.conn.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.conn.Del(ctx, key).Err()
}

// Key joins a namespace and its parts the way the stores lay keys out:
// "<namespace>:<part>:<part>".
func Key(namespace string, parts ...string) string {
	return strings.Join(append([]string{namespace}, parts...), ":")
}
