package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/globalcargo/cargo-console/internal/api/handler"
	"github.com/globalcargo/cargo-console/internal/core/dashboard"
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/nav"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
)

func render(t *testing.T, name string, page handler.Page) string {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, name, page, nil); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	return buf.String()
}

func adminPage(content any) handler.Page {
	user := &domain.User{FirstName: "Ada", Role: domain.RoleAdmin}
	return handler.Page{
		Title:   "Ships",
		Brand:   nav.Brand,
		Path:    "/ships",
		Menu:    nav.NewShell(nav.DefaultItems).Menu(user),
		User:    user,
		IsAdmin: true,
		CSRF:    "tok",
		Content: content,
	}
}

func TestRender_ListWithAdminActions(t *testing.T) {
	out := render(t, "list.html", adminPage(handler.ListView{
		Title: "Ships", Noun: "ship", Base: "/ships", Toggle: true,
		Filter:  &handler.FilterView{Field: "status", Label: "Status", Options: []viewmodel.Option{{Value: "active", Label: "Active"}}, Selected: "active"},
		Headers: []handler.HeaderView{{Label: "Name"}},
		Rows:    []handler.RowView{{ID: "7", Cells: []string{"<Aurora>"}, Active: true, ToggleLabel: "Deactivate"}},
		Query:   "filter=active",
		CSVHref: "/ships/export.csv?filter=active",
	}))

	for _, want := range []string{
		`href="/ships/new"`,
		`action="/ships/7/toggle"`,
		`&lt;Aurora&gt;`,
		`Deactivate`,
		`name="_csrf" value="tok"`,
		`<option value="active" selected>`,
		`/ships/export.csv?filter=active`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
	if strings.Contains(out, "/delete") {
		t.Errorf("ships are not deletable")
	}
}

func TestRender_EmptyList(t *testing.T) {
	out := render(t, "list.html", adminPage(handler.ListView{Title: "Ports", Base: "/ports", EmptyList: "No ports found."}))
	if !strings.Contains(out, "No ports found.") {
		t.Fatalf("empty message missing")
	}
}

func TestRender_FormFields(t *testing.T) {
	out := render(t, "form.html", adminPage(handler.FormView{
		Title: "Add crew member", Action: "/crew", Cancel: "/crew",
		Fields: []handler.FieldView{
			{Field: viewmodel.Field{Name: "is_active", Label: "Active", Input: viewmodel.InputCheckbox}, Checked: true},
			{Field: viewmodel.Field{Name: "ship", Label: "Ship", Input: viewmodel.InputRef, Ref: "ships"}, Value: "3",
				Choices: []viewmodel.Option{{Value: "3", Label: "Aurora"}}},
			{Field: viewmodel.Field{Name: "client", Label: "Client", Input: viewmodel.InputRef, Ref: "clients"}, Value: "9"},
		},
	}))

	for _, want := range []string{
		`name="is_active" value="true" checked`,
		`<input type="hidden" name="is_active" value="false">`,
		`<option value="3" selected>Aurora</option>`,
		`<input name="client" value="9">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("form output missing %q", want)
		}
	}
}

func TestRender_PublicPages(t *testing.T) {
	login := render(t, "login.html", handler.Page{Title: "Login", Brand: nav.Brand, Notice: "You must be logged in to view this page"})
	if !strings.Contains(login, "You must be logged in") || strings.Contains(login, "Logout") {
		t.Fatalf("unexpected login page:\n%s", login)
	}
	register := render(t, "register.html", handler.Page{Title: "Register", Content: ports.RegisterInput{FirstName: "Ada"}})
	if !strings.Contains(register, `value="Ada"`) {
		t.Fatalf("register form should keep input")
	}
}

func TestRender_DashboardAndError(t *testing.T) {
	out := render(t, "dashboard.html", adminPage(dashboard.Summary{ActiveShips: 4, ShipmentsInTransit: 2, ActiveClients: 9}))
	if !strings.Contains(out, "<p>4</p>") || !strings.Contains(out, "<p>9</p>") {
		t.Fatalf("counts missing:\n%s", out)
	}
	out = render(t, "error.html", adminPage(handler.ErrorView{Status: 403, Message: "nope"}))
	if !strings.Contains(out, "403") || !strings.Contains(out, "nope") {
		t.Fatalf("error page incomplete")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, _ := New()
	if err := r.Render(&bytes.Buffer{}, "missing.html", nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}
