package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/bunniesplumbing/chat-gateway/internal/config"
)

const redisKeyPrefix = "chat:ratewindow:"

// RedisStore keeps rate windows in Redis so the quota survives process
// restarts and can be shared by replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Get loads the session window; a missing key is an empty window.
func (s *RedisStore) Get(ctx context.Context, sessionID string) ([]time.Time, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rate window: %w", err)
	}

	var window []time.Time
	if err := json.Unmarshal([]byte(raw), &window); err != nil {
		// A corrupt window is discarded rather than blocking the session.
		return nil, nil
	}
	return window, nil
}

// Put stores the window with a TTL matching the sliding interval, so idle
// sessions expire on their own.
func (s *RedisStore) Put(ctx context.Context, sessionID string, window []time.Time) error {
	key := redisKeyPrefix + sessionID
	if len(window) == 0 {
		return s.client.Del(ctx, key).Err()
	}

	raw, err := json.Marshal(window)
	if err != nil {
		return fmt.Errorf("encode rate window: %w", err)
	}
	if err := s.client.Set(ctx, key, raw, Window).Err(); err != nil {
		return fmt.Errorf("set rate window: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
