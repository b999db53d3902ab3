package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/pkg/metrics"
)

// AuthService implements login and registration against the account
// endpoints, and the token refresh hook of a session.
type AuthService struct {
	gw  ports.AuthGateway
	log zerolog.Logger
}

func NewAuthService(gw ports.AuthGateway, log zerolog.Logger) *AuthService {
	return &AuthService{gw: gw, log: log}
}

// Login authenticates and replaces the session with {token, refresh, user}.
func (s *AuthService) Login(ctx context.Context, store ports.SessionStore, email, password string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	res, err := s.gw.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return domain.Session{}, err
	}

	sess := domain.Session{Token: res.Access, Refresh: res.Refresh, User: res.User}
	if err := store.Save(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("email", email).Bool("admin", sess.IsAdmin()).Msg("user logged in")
	return sess, nil
}

// Register creates an account. The caller is not logged in; the tokens the
// backend returns are discarded.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return domain.ErrInvalidCredentials
	}
	res, err := s.gw.Register(ctx, input)
	if err != nil {
		return err
	}
	s.log.Info().Str("email", input.Email).Str("role", res.Role).Msg("user registered")
	return nil
}

// Credentials returns the token source and refresh hook for one session.
func (s *AuthService) Credentials(store ports.SessionStore) ports.Credentials {
	return &SessionCredentials{store: store, gw: s.gw, log: s.log}
}

// SessionCredentials reads the bearer token from a session store and
// refreshes it with the stored refresh token. Concurrent refreshes share
// one gateway call.
type SessionCredentials struct {
	store ports.SessionStore
	gw    ports.AuthGateway
	log   zerolog.Logger
	sf    singleflight.Group
}

func (c *SessionCredentials) Token(ctx context.Context) string {
	return c.store.Load(ctx).Token
}

// Refresh trades the stored refresh token for a new access token and saves
// it. Without a refresh token the session cannot be renewed.
func (c *SessionCredentials) Refresh(ctx context.Context) (string, error) {
	v, err, _ := c.sf.Do("refresh", func() (any, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *SessionCredentials) refresh(ctx context.Context) (string, error) {
	sess := c.store.Load(ctx)
	if sess.Refresh == "" {
		return "", domain.ErrUnauthorized
	}

	access, err := c.gw.RefreshToken(ctx, sess.Refresh)
	if err != nil {
		return "", err
	}
	if access == "" {
		return "", domain.ErrUnauthorized
	}

	sess.Token = access
	if err := c.store.Save(ctx, sess); err != nil {
		c.log.Warn().Err(err).Msg("refreshed token not persisted")
	}
	return access, nil
}
