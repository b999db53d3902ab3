package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/infrastructure/session"
)

type gateFunc func(ctx context.Context, store ports.SessionReader) (domain.Session, error)

func (f gateFunc) Guard(ctx context.Context, store ports.SessionReader) (domain.Session, error) {
	return f(ctx, store)
}

func newSessions(t *testing.T) *Sessions {
	t.Helper()
	fs, err := session.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	return NewSessions(fs, false, zerolog.Nop())
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == CookieName {
			return ck
		}
	}
	return nil
}

func TestSessions_IssuesCookieAndStore(t *testing.T) {
	s := newSessions(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	var store ports.SessionStore
	err := s.Middleware()(func(c echo.Context) error {
		store = StoreFrom(c)
		return store.Save(c.Request().Context(), domain.Session{Token: "tok1"})
	})(c)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	ck := sessionCookie(rec)
	if ck == nil || !ck.HttpOnly || ck.Path != "/" {
		t.Fatalf("expected an http-only session cookie, got %+v", ck)
	}

	// the same cookie finds the same session on the next request
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ck.Value})
	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(req, rec2)
	_ = s.Middleware()(func(c echo.Context) error {
		if got := StoreFrom(c).Load(c.Request().Context()); got.Token != "tok1" {
			t.Fatalf("session lost between requests: %+v", got)
		}
		return nil
	})(c2)
	if sessionCookie(rec2) != nil {
		t.Fatalf("a valid cookie must not be reissued")
	}
}

func TestSessions_RejectsForgedCookie(t *testing.T) {
	s := newSessions(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "../../etc/passwd"})
	rec := httptest.NewRecorder()

	_ = s.Middleware()(func(echo.Context) error { return nil })(e.NewContext(req, rec))
	if ck := sessionCookie(rec); ck == nil || ck.Value == "../../etc/passwd" {
		t.Fatalf("malformed cookie must be replaced, got %+v", ck)
	}
}

func TestSessions_Rotate(t *testing.T) {
	s := newSessions(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)

	_ = s.Middleware()(func(c echo.Context) error {
		old := StoreFrom(c)
		_ = old.Save(c.Request().Context(), domain.Session{Token: "planted"})

		fresh := s.Rotate(c)
		if fresh.Load(c.Request().Context()).Authenticated() {
			t.Fatalf("rotated store must start empty")
		}
		if old.Load(c.Request().Context()).Authenticated() {
			t.Fatalf("old session must be cleared")
		}
		if StoreFrom(c) != fresh {
			t.Fatalf("context must carry the rotated store")
		}
		return nil
	})(c)

	if n := len(rec.Result().Cookies()); n != 2 {
		t.Fatalf("expected the cookie to be issued then replaced, got %d cookies", n)
	}
}

func TestRequireLogin(t *testing.T) {
	e := echo.New()
	gate := gateFunc(func(ctx context.Context, store ports.SessionReader) (domain.Session, error) {
		sess := store.Load(ctx)
		if !sess.Authenticated() {
			return domain.Session{}, domain.ErrNoSession
		}
		return sess, nil
	})
	s := newSessions(t)

	// no token: the handler is never reached
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ships", nil), httptest.NewRecorder())
	err := s.Middleware()(RequireLogin(gate)(func(echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	}))(c)
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	// with a token the session is exposed to the handler
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/ships", nil), httptest.NewRecorder())
	err = s.Middleware()(func(c echo.Context) error {
		_ = StoreFrom(c).Save(c.Request().Context(), domain.Session{Token: "tok1"})
		return RequireLogin(gate)(func(c echo.Context) error {
			if sess, _ := c.Get(SessionKey).(domain.Session); sess.Token != "tok1" {
				t.Fatalf("session not exposed: %+v", sess)
			}
			return nil
		})(c)
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
