package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/nav"
)

// Page is the data every template receives. Content holds the view of the
// page itself.
type Page struct {
	Title   string
	Brand   string
	Path    string
	Menu    []nav.Item
	User    *domain.User
	IsAdmin bool
	CSRF    string
	Notice  string
	Error   string
	Content any
}

func newPage(c echo.Context, shell *nav.Shell, title string, content any) Page {
	p := Page{
		Title:   title,
		Brand:   nav.Brand,
		Path:    c.Request().URL.Path,
		CSRF:    csrfToken(c),
		Notice:  noticeText(c),
		Content: content,
	}
	if sess, err := ctxSession(c); err == nil {
		p.User = sess.User
		p.IsAdmin = sess.IsAdmin()
		p.Menu = shell.Menu(sess.User)
	}
	return p
}

// ErrorView is the content of the error page.
type ErrorView struct {
	Status  int
	Message string
}

// ErrorPage builds the page shown for a failed request.
func ErrorPage(c echo.Context, shell *nav.Shell, status int, message string) Page {
	return newPage(c, shell, "Error", ErrorView{Status: status, Message: message})
}
