package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Store persists per-user session attributes between chat turns. The dialog
// engine threads them through each turn; this store keeps them across HTTP
// requests of the same conversation.
type Store interface {
	Get(ctx context.Context, userID string) (map[string]string, error)
	Put(ctx context.Context, userID string, attrs map[string]string) error
}

// RedisStore implements Store on a Redis client.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a store whose entries expire after ttl, ending the
// conversation and discarding its state.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID string) string {
	return "chat-session:" + userID
}

// Get returns the user's session attributes; a missing session is an empty
// map, never an error.
func (s *RedisStore) Get(ctx context.Context, userID string) (map[string]string, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if err == redis.Nil {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session for %s: %w", userID, err)
	}

	var attrs map[string]string
	if err := json.Unmarshal([]byte(data), &attrs); err != nil {
		return nil, fmt.Errorf("failed to parse session for %s: %w", userID, err)
	}
	if attrs == nil {
		attrs = map[string]string{}
	}
	return attrs, nil
}

// Put stores the user's session attributes, refreshing the TTL.
func (s *RedisStore) Put(ctx context.Context, userID string, attrs map[string]string) error {
	data, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("failed to marshal session for %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, sessionKey(userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session for %s: %w", userID, err)
	}
	return nil
}
