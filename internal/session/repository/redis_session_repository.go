package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/authgate/internal/errors"
	sessionDomain "github.com/allisson/authgate/internal/session/domain"
)

// DefaultRedisKeyPrefix is used when no key prefix is configured.
const DefaultRedisKeyPrefix = "authgate:session:"

// RedisSessionRepository stores sessions as JSON values under "<prefix><session id>".
// Keys expire together with the session.
type RedisSessionRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSessionRepository creates a Redis session repository.
func NewRedisSessionRepository(client *redis.Client, keyPrefix string) (*RedisSessionRepository, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if keyPrefix == "" {
		keyPrefix = DefaultRedisKeyPrefix
	}
	return &RedisSessionRepository{
		client:    client,
		keyPrefix: keyPrefix,
	}, nil
}

// Get retrieves a session. Returns ErrSessionNotFound if the key is missing or has expired.
func (r *RedisSessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (*sessionDomain.Session, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sessionDomain.ErrSessionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get session")
	}

	var session sessionDomain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal session")
	}

	return &session, nil
}

// Save writes a session with a TTL equal to its remaining lifetime.
// Sessions that have already expired are rejected.
func (r *RedisSessionRepository) Save(ctx context.Context, session *sessionDomain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "session already expired")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, r.key(session.ID), data, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to save session")
	}
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete session")
	}
	return nil
}

func (r *RedisSessionRepository) key(sessionID uuid.UUID) string {
	return r.keyPrefix + sessionID.String()
}
