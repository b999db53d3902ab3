package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/globalcargo/cargo-console/internal/core/domain"
)

// Resource binds one REST collection, /api/<name>/.
type Resource[T any] struct {
	conn *Conn
	name string
}

func NewResource[T any](conn *Conn, name string) *Resource[T] {
	return &Resource[T]{conn: conn, name: name}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.conn.Do(ctx, http.MethodGet, r.collection(), nil, &items); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.name, err)
	}
	return items, nil
}

func (r *Resource[T]) Create(ctx context.Context, draft T) (T, error) {
	var created T
	if err := r.conn.Do(ctx, http.MethodPost, r.collection(), draft, &created); err != nil {
		return created, fmt.Errorf("create %s: %w", r.name, err)
	}
	return created, nil
}

// Update overwrites the whole record with PUT.
func (r *Resource[T]) Update(ctx context.Context, id domain.ID, full T) (T, error) {
	var updated T
	if err := r.conn.Do(ctx, http.MethodPut, r.item(id), full, &updated); err != nil {
		return updated, fmt.Errorf("update %s %s: %w", r.name, id, err)
	}
	return updated, nil
}

func (r *Resource[T]) collection() string {
	return "/api/" + r.name + "/"
}

func (r *Resource[T]) item(id domain.ID) string {
	return "/api/" + r.name + "/" + url.PathEscape(id.String()) + "/"
}

// DeletableResource is a Resource that supports hard deletion.
type DeletableResource[T any] struct {
	*Resource[T]
}

func NewDeletableResource[T any](conn *Conn, name string) *DeletableResource[T] {
	return &DeletableResource[T]{Resource: NewResource[T](conn, name)}
}

func (r *DeletableResource[T]) Delete(ctx context.Context, id domain.ID) error {
	if err := r.conn.Do(ctx, http.MethodDelete, r.item(id), nil, nil); err != nil {
		return fmt.Errorf("delete %s %s: %w", r.name, id, err)
	}
	return nil
}
