package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/api/middleware"
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/nav"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
	"github.com/globalcargo/cargo-console/internal/pkg/validation"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, store ports.SessionStore, email, password string) (domain.Session, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) error
}

func (s *stubAuthService) Login(ctx context.Context, store ports.SessionStore, email, password string) (domain.Session, error) {
	return s.loginFn(ctx, store, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	return s.registerFn(ctx, input)
}

type memStore struct {
	sess    domain.Session
	cleared bool
}

func (m *memStore) Load(context.Context) domain.Session { return m.sess }

func (m *memStore) Save(_ context.Context, s domain.Session) error {
	m.sess = s
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.sess = domain.Session{}
	m.cleared = true
	return nil
}

type stubRotator struct {
	store   *memStore
	rotated int
}

func (r *stubRotator) Rotate(c echo.Context) ports.SessionStore {
	r.rotated++
	c.Set(middleware.StoreKey, r.store)
	return r.store
}

type recordingRenderer struct {
	name string
	page Page
}

func (r *recordingRenderer) Render(_ io.Writer, name string, data any, _ echo.Context) error {
	r.name = name
	r.page, _ = data.(Page)
	return nil
}

func newAuthTest(auth ports.AuthService) (*echo.Echo, *AuthHandler, *stubRotator, *recordingRenderer) {
	e := echo.New()
	rr := &recordingRenderer{}
	e.Renderer = rr
	e.Validator = validation.New()
	rot := &stubRotator{store: &memStore{}}
	return e, NewAuthHandler(auth, rot, nav.NewShell(nav.DefaultItems), zerolog.Nop()), rot, rr
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, store ports.SessionStore, email, password string) (domain.Session, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			sess := domain.Session{Token: "tok1", User: &domain.User{Email: email, Role: "admin"}}
			return sess, store.Save(ctx, sess)
		},
	}
	e, h, rot, _ := newAuthTest(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/login", url.Values{
		"email": {"alice@example.com"}, "password": {"secret"},
	}), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if rot.rotated != 1 {
		t.Fatalf("session id must be rotated on login")
	}
	if rot.store.sess.Token != "tok1" {
		t.Fatalf("session not stored in rotated store: %+v", rot.store.sess)
	}
}

func TestAuthHandler_Login_ShowsBackendMessage(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.SessionStore, string, string) (domain.Session, error) {
			return domain.Session{}, &gateway.APIError{Status: http.StatusBadRequest, Message: "Invalid credentials"}
		},
	}
	e, h, _, rr := newAuthTest(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/login", url.Values{
		"email": {"alice@example.com"}, "password": {"bad"},
	}), rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rr.name != "login.html" || rr.page.Error != "Invalid credentials" {
		t.Fatalf("unexpected render: %s %q", rr.name, rr.page.Error)
	}
	if form, _ := rr.page.Content.(loginRequest); form.Email != "alice@example.com" || form.Password != "" {
		t.Fatalf("form should keep email and drop password: %+v", form)
	}
}

func TestAuthHandler_Login_FailureKeepsSession(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.SessionStore, string, string) (domain.Session, error) {
			return domain.Session{}, domain.ErrUnauthorized
		},
	}
	e, h, rot, _ := newAuthTest(stub)

	current := &memStore{sess: domain.Session{Token: "tok0", User: &domain.User{Email: "bob@example.com"}}}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/login", url.Values{"email": {"a@b.c"}, "password": {"x"}}), rec)
	c.Set(middleware.StoreKey, current)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rot.rotated != 0 {
		t.Fatalf("failed login must not rotate the session")
	}
	if current.cleared || current.sess.Token != "tok0" {
		t.Fatalf("existing session changed: %+v", current.sess)
	}
	if c.Get(middleware.StoreKey) != current {
		t.Fatalf("request store replaced")
	}
}

func TestAuthHandler_Login_GenericFailure(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, ports.SessionStore, string, string) (domain.Session, error) {
			return domain.Session{}, domain.ErrUnauthorized
		},
	}
	e, h, _, rr := newAuthTest(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/login", url.Values{"email": {"a@b.c"}, "password": {"x"}}), rec)
	_ = h.Login(c)

	if rr.page.Error != "Login failed. Please check your credentials." {
		t.Fatalf("unexpected error text %q", rr.page.Error)
	}
}

func TestAuthHandler_Register_RedirectsToLogin(t *testing.T) {
	var got ports.RegisterInput
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) error {
			got = input
			return nil
		},
	}
	e, h, rot, _ := newAuthTest(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/register", url.Values{
		"firstName": {"Ada"}, "lastName": {"Lovelace"}, "email": {"ada@example.com"}, "password": {"pw"},
	}), rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	loc, _ := url.Parse(rec.Header().Get(echo.HeaderLocation))
	if loc.Path != "/login" || loc.Query().Get("notice") != NoticeRegistered {
		t.Fatalf("unexpected location %q", loc)
	}
	if got.FirstName != "Ada" || got.Email != "ada@example.com" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if rot.rotated != 0 {
		t.Fatalf("registration must not log in")
	}
}

func TestAuthHandler_Register_InvalidForm(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	e, h, _, rr := newAuthTest(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(http.MethodPost, "/register", url.Values{
		"firstName": {"Ada"}, "email": {"not-an-email"}, "password": {"pw"},
	}), rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity || rr.name != "register.html" {
		t.Fatalf("expected form re-render, got %d %s", rec.Code, rr.name)
	}
	if !strings.Contains(rr.page.Error, "lastName") || !strings.Contains(rr.page.Error, "email") {
		t.Fatalf("error should name the bad fields: %q", rr.page.Error)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e, h, _, _ := newAuthTest(&stubAuthService{})
	store := &memStore{sess: domain.Session{Token: "tok1"}}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/logout", nil), rec)
	c.Set(middleware.StoreKey, store)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !store.cleared || store.sess.Authenticated() {
		t.Fatalf("session not cleared")
	}
	if rec.Header().Get(echo.HeaderLocation) != nav.LoginPath {
		t.Fatalf("expected redirect to login, got %q", rec.Header().Get(echo.HeaderLocation))
	}
}
