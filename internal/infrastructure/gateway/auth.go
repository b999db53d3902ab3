package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/globalcargo/cargo-console/internal/core/ports"
)

const (
	loginPath    = "/accounts/login/"
	registerPath = "/accounts/register/"
	refreshPath  = "/accounts/token/refresh/"
)

// Auth calls the unauthenticated account endpoints.
type Auth struct {
	conn *Conn
}

func NewAuth(c *Client) *Auth {
	return &Auth{conn: c.Bind(nil)}
}

func (a *Auth) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	in := map[string]string{"email": email, "password": password}
	var out ports.LoginResult
	if err := a.conn.Do(ctx, http.MethodPost, loginPath, in, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

func (a *Auth) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	var out ports.RegisterResult
	if err := a.conn.Do(ctx, http.MethodPost, registerPath, input, &out); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &out, nil
}

// RefreshToken trades a refresh token for a new access token.
func (a *Auth) RefreshToken(ctx context.Context, refresh string) (string, error) {
	in := map[string]string{"refresh": refresh}
	var out struct {
		Access string `json:"access"`
	}
	if err := a.conn.Do(ctx, http.MethodPost, refreshPath, in, &out); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	return out.Access, nil
}
