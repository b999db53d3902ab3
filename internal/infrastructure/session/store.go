// Package session persists the console session ({token, refresh, user})
// in a key/value backend.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/rs/zerolog"
)

// Key is the storage key of the single-user console session.
const Key = "session"

// KeyFor scopes the session key to one browser.
func KeyFor(browserID string) string {
	if browserID == "" {
		return Key
	}
	return Key + ":" + browserID
}

// Store is a ports.SessionStore over one storage key.
type Store struct {
	storage ports.Storage
	key     string
	log     zerolog.Logger

	mu     sync.RWMutex
	cached *domain.Session
}

func NewStore(storage ports.Storage, key string, log zerolog.Logger) *Store {
	return &Store{storage: storage, key: key, log: log}
}

// Load returns the stored session. Missing, unreadable or corrupt data is
// the empty session.
func (s *Store) Load(ctx context.Context) domain.Session {
	s.mu.RLock()
	if s.cached != nil {
		sess := *s.cached
		s.mu.RUnlock()
		return sess
	}
	s.mu.RUnlock()

	b, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrStorageKeyNotFound) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("session read failed")
		}
		return domain.Session{}
	}

	var sess domain.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("discarding corrupt session")
		return domain.Session{}
	}

	s.mu.Lock()
	s.cached = &sess
	s.mu.Unlock()
	return sess
}

// Save replaces the stored session wholesale.
func (s *Store) Save(ctx context.Context, sess domain.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Set(ctx, s.key, b); err != nil {
		s.cached = nil
		return fmt.Errorf("save session: %w", err)
	}
	s.cached = &sess
	return nil
}

// Clear removes the session. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
