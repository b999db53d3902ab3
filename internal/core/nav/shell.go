// Package nav is the navigation shell shared by every console page: the
// role-aware menu, the session gate and logout.
package nav

import (
	"context"
	"fmt"
	"time"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
)

const (
	Brand     = "Cargo Management System"
	LoginPath = "/login"
)

// Item is one menu entry.
type Item struct {
	Label string
	Path  string
	// AdminOnly entries are hidden from non-admin users.
	AdminOnly bool
}

// DefaultItems is the menu in display order.
var DefaultItems = []Item{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Crew", Path: "/crew"},
	{Label: "Ports", Path: "/ports"},
	{Label: "Ships", Path: "/ships"},
	{Label: "Cargo", Path: "/cargo"},
	{Label: "Shipments", Path: "/shipments"},
	{Label: "Clients", Path: "/clients"},
}

type Shell struct {
	items []Item
	now   func() time.Time
}

func NewShell(items []Item) *Shell {
	if items == nil {
		items = DefaultItems
	}
	return &Shell{items: items, now: time.Now}
}

// Menu returns the entries visible to user.
func (s *Shell) Menu(user *domain.User) []Item {
	admin := user.IsAdmin()
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if it.AdminOnly && !admin {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Guard admits a page load only with a stored token. A token past its exp
// claim is admitted only when a refresh token can renew it. The returned
// session carries the user the page renders for.
func (s *Shell) Guard(ctx context.Context, store ports.SessionReader) (domain.Session, error) {
	sess := store.Load(ctx)
	if !sess.Authenticated() {
		return domain.Session{}, domain.ErrNoSession
	}
	if sess.Refresh == "" && sess.Expired(s.now()) {
		return domain.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

// Logout clears the session. The caller returns to the login page.
func (s *Shell) Logout(ctx context.Context, store ports.SessionStore) error {
	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
