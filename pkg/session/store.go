// Package session persists per-conversation state in Redis between
// orchestrator turns.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/easypath-ai/easypath/pkg/models"
)

// Store is the persistence contract for chat sessions. Load returns
// (nil, nil) when the session does not exist; Clear is idempotent.
type Store interface {
	Load(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Save(ctx context.Context, session *models.ChatSession) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStore keeps sessions as JSON values under "session:{id}" keys
// with an optional TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using a URL of the form
// redis://host:port/db. A zero ttl means keys never expire.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

// NewRedisStoreFromClient wraps an existing client (useful for testing).
func NewRedisStoreFromClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Load fetches and deserializes a session. A missing key is not an
// error: the caller creates a fresh session.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var sess models.ChatSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return &sess, nil
}

// Save serializes and writes the session, refreshing the TTL.
func (s *RedisStore) Save(ctx context.Context, session *models.ChatSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.SessionID, err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.SessionID, err)
	}
	return nil
}

// Clear removes the session. Deleting a missing key succeeds.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", sessionID, err)
	}
	return nil
}

// Ping verifies connectivity for health checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
