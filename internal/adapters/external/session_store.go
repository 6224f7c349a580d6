package external

import (
	"context"
	"encoding/json"
	"time"

	"rainydays.app/internal/ports"
	"rainydays.app/pkg/errors"
)

const sessionKeyPrefix = "session:"

// CacheSessionStore keeps sessions in the cache backend so they expire with their TTL
type CacheSessionStore struct {
	cacheProvider ports.CacheProvider
}

func NewCacheSessionStore(cacheProvider ports.CacheProvider) ports.SessionStore {
	return &CacheSessionStore{cacheProvider: cacheProvider}
}

func (s *CacheSessionStore) Get(ctx context.Context, token string) (*ports.SessionData, error) {
	if token == "" {
		return nil, errors.NewValidationError("session token cannot be empty")
	}

	raw, err := s.cacheProvider.Get(ctx, sessionKey(token))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, err
	}

	var session ports.SessionData
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.NewCacheError("failed to deserialize session", err)
	}
	return &session, nil
}

func (s *CacheSessionStore) Save(ctx context.Context, session *ports.SessionData, ttl time.Duration) error {
	if session == nil || session.Token == "" {
		return errors.NewValidationError("session token cannot be empty")
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return errors.NewCacheError("failed to serialize session", err)
	}

	return s.cacheProvider.Set(ctx, sessionKey(session.Token), raw, ttl)
}

func (s *CacheSessionStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return errors.NewValidationError("session token cannot be empty")
	}
	return s.cacheProvider.Delete(ctx, sessionKey(token))
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}
