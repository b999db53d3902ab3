package ports

import (
	"context"

	"github.com/globalcargo/cargo-console/internal/core/domain"
)

// Storage is a durable key/value backend for console state.
// Get returns domain.ErrStorageKeyNotFound for a missing key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// SessionReader is the read side of a session store.
type SessionReader interface {
	Load(ctx context.Context) domain.Session
}

// SessionStore holds one browser's {token, user}. Load never fails: absent
// or unreadable data is the empty session.
type SessionStore interface {
	SessionReader
	Save(ctx context.Context, s domain.Session) error
	Clear(ctx context.Context) error
}

// AuthService drives login and registration for one session store.
type AuthService interface {
	Login(ctx context.Context, store SessionStore, email, password string) (domain.Session, error)
	Register(ctx context.Context, input RegisterInput) error
}
