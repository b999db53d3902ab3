package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/globalcargo/cargo-console/internal/core/domain"
)

func TestAdminOnly_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(SessionKey, domain.Session{Token: "tok", User: &domain.User{Role: "Admin"}})

	called := false
	handler := AdminOnly()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminOnly_Forbids(t *testing.T) {
	for name, sess := range map[string]any{
		"normal role": domain.Session{Token: "tok", User: &domain.User{Role: "normal"}},
		"no user":     domain.Session{Token: "tok"},
		"no session":  nil,
	} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/ships", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if sess != nil {
			c.Set(SessionKey, sess)
		}

		handler := AdminOnly()(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next handler", name)
			return nil
		})

		if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", name, err)
		}
	}
}
