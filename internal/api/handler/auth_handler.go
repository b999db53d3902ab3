package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/nav"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
	"github.com/globalcargo/cargo-console/internal/pkg/validation"
)

// SessionRotator moves a browser to a fresh session id.
type SessionRotator interface {
	Rotate(c echo.Context) ports.SessionStore
}

type AuthHandler struct {
	authService ports.AuthService
	sessions    SessionRotator
	shell       *nav.Shell
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions SessionRotator, shell *nav.Shell, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, shell: shell, log: log}
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginForm shows the login page.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", newPage(c, h.shell, "Login", loginRequest{}))
}

// Login authenticates and stores the session, then opens the dashboard.
// Failures re-render the form with the reason.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	store := &loginStore{c: c, sessions: h.sessions}
	if _, err := h.authService.Login(c.Request().Context(), store, req.Email, req.Password); err != nil {
		h.log.Warn().Err(err).Str("email", req.Email).Msg("login failed")
		page := newPage(c, h.shell, "Login", loginRequest{Email: req.Email})
		page.Error = failureMessage(err, "Login failed. Please check your credentials.")
		return c.Render(http.StatusUnauthorized, "login.html", page)
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// RegisterForm shows the registration page.
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", newPage(c, h.shell, "Register", ports.RegisterInput{}))
}

// Register creates the account and sends the user to the login page; it
// does not log in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	fail := func(err error) error {
		req.Password = ""
		page := newPage(c, h.shell, "Register", req)
		page.Error = failureMessage(err, "Registration failed.")
		return c.Render(http.StatusUnprocessableEntity, "register.html", page)
	}

	if err := c.Validate(&req); err != nil {
		return fail(err)
	}
	if err := h.authService.Register(c.Request().Context(), req); err != nil {
		h.log.Warn().Err(err).Str("email", req.Email).Msg("registration failed")
		return fail(err)
	}
	return c.Redirect(http.StatusSeeOther, NoticeURL(nav.LoginPath, NoticeRegistered))
}

// Logout clears the session and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	store, err := ctxStore(c)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, nav.LoginPath)
	}
	if err := h.shell.Logout(c.Request().Context(), store); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, nav.LoginPath)
}

// loginStore defers session rotation until a login is saved, so rejected
// credentials leave the current session alone.
type loginStore struct {
	c        echo.Context
	sessions SessionRotator
	rotated  ports.SessionStore
}

func (s *loginStore) Load(ctx context.Context) domain.Session {
	if s.rotated == nil {
		return domain.Session{}
	}
	return s.rotated.Load(ctx)
}

func (s *loginStore) Save(ctx context.Context, sess domain.Session) error {
	if s.rotated == nil {
		s.rotated = s.sessions.Rotate(s.c)
	}
	return s.rotated.Save(ctx, sess)
}

func (s *loginStore) Clear(ctx context.Context) error {
	if s.rotated == nil {
		return nil
	}
	return s.rotated.Clear(ctx)
}

// failureMessage prefers the backend's own explanation.
func failureMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Email and password are required."
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	}
	return fallback
}
