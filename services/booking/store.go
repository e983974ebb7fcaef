package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pawbook/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard sessions between requests. One session per
// booking attempt; discarded on completion, cancel or expiry.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Save(ctx context.Context, session *models.WizardSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps each session as a JSON blob with a sliding TTL.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: 30 * time.Minute}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}

	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "wizard:" + sessionID
}
