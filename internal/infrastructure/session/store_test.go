package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/rs/zerolog"
)

type stubStorage struct {
	getFn    func(ctx context.Context, key string) ([]byte, error)
	setFn    func(ctx context.Context, key string, value []byte) error
	deleteFn func(ctx context.Context, key string) error
}

func (s *stubStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.getFn(ctx, key)
}

func (s *stubStorage) Set(ctx context.Context, key string, value []byte) error {
	return s.setFn(ctx, key, value)
}

func (s *stubStorage) Delete(ctx context.Context, key string) error {
	return s.deleteFn(ctx, key)
}

func (s *stubStorage) Ping(context.Context) error { return nil }

func newFileStore(t *testing.T, key string) (*Store, *FileStorage) {
	t.Helper()
	fs, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	return NewStore(fs, key, zerolog.Nop()), fs
}

func TestStore_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	store, fs := newFileStore(t, Key)

	want := domain.Session{Token: "tok1", Refresh: "ref1", User: &domain.User{Username: "ana", Role: "admin"}}
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// a fresh store over the same backend sees the persisted value
	got := NewStore(fs, Key, zerolog.Nop()).Load(ctx)
	if got.Token != "tok1" || got.Refresh != "ref1" {
		t.Fatalf("unexpected session: %+v", got)
	}
	if got.User == nil || got.User.Username != "ana" || !got.IsAdmin() {
		t.Fatalf("unexpected user: %+v", got.User)
	}
}

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := newFileStore(t, Key)
	got := store.Load(context.Background())
	if got.Authenticated() || got.User != nil {
		t.Fatalf("expected empty session, got %+v", got)
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, fs := newFileStore(t, Key)

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
	if err := store.Save(ctx, domain.Session{Token: "tok1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := store.Load(ctx); got.Authenticated() {
		t.Fatalf("token survived Clear: %+v", got)
	}
	if _, err := fs.Get(ctx, Key); !errors.Is(err, domain.ErrStorageKeyNotFound) {
		t.Fatalf("expected key removed, got %v", err)
	}
}

func TestStore_CorruptDataLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := NewStore(fs, Key, zerolog.Nop()).Load(context.Background())
	if got.Authenticated() {
		t.Fatalf("corrupt data must load as empty session, got %+v", got)
	}
}

func TestStore_KeysAreIsolated(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	a := NewStore(fs, KeyFor("browser-a"), zerolog.Nop())
	b := NewStore(fs, KeyFor("browser-b"), zerolog.Nop())

	if err := a.Save(ctx, domain.Session{Token: "tok-a"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := b.Load(ctx); got.Authenticated() {
		t.Fatalf("browser b must not see browser a's session")
	}
	if got := a.Load(ctx); got.Token != "tok-a" {
		t.Fatalf("browser a lost its session: %+v", got)
	}
}

func TestStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	storage := &stubStorage{
		getFn:    func(context.Context, string) ([]byte, error) { return nil, boom },
		setFn:    func(context.Context, string, []byte) error { return boom },
		deleteFn: func(context.Context, string) error { return boom },
	}
	store := NewStore(storage, Key, zerolog.Nop())

	if got := store.Load(ctx); got.Authenticated() {
		t.Fatalf("read failure must load as empty session")
	}
	if err := store.Save(ctx, domain.Session{Token: "x"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if err := store.Clear(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestKeyFor(t *testing.T) {
	if KeyFor("") != "session" {
		t.Fatalf("empty browser id must use the well-known key")
	}
	if KeyFor("abc") != "session:abc" {
		t.Fatalf("unexpected key %q", KeyFor("abc"))
	}
}
