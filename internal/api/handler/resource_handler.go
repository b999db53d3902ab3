package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/export"
	"github.com/globalcargo/cargo-console/internal/core/nav"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/core/viewmodel"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
	"github.com/globalcargo/cargo-console/internal/pkg/validation"
)

// ResourceHandler serves the pages of one resource. Every request mounts a
// fresh view model bound to the browser's session and unmounts it when the
// response is written.
type ResourceHandler[T any] struct {
	cfg      viewmodel.Config[T]
	conn     *Connector
	pick     func(*gateway.Set) ports.ResourceGateway[T]
	shell    *nav.Shell
	validate viewmodel.Validator
	log      zerolog.Logger
}

func NewResourceHandler[T any](
	cfg viewmodel.Config[T],
	conn *Connector,
	pick func(*gateway.Set) ports.ResourceGateway[T],
	shell *nav.Shell,
	validate viewmodel.Validator,
	log zerolog.Logger,
) *ResourceHandler[T] {
	return &ResourceHandler[T]{cfg: cfg, conn: conn, pick: pick, shell: shell, validate: validate, log: log}
}

// Register mounts the resource's routes on g. Mutations sit behind admin.
func (h *ResourceHandler[T]) Register(g *echo.Group, admin echo.MiddlewareFunc) {
	base := "/" + h.cfg.Resource

	g.GET(base, h.List)
	g.GET(base+"/export.csv", h.Export(export.FormatCSV))
	g.GET(base+"/export.xlsx", h.Export(export.FormatXLSX))

	g.GET(base+"/new", h.New, admin)
	g.GET(base+"/:id/edit", h.Edit, admin)
	g.POST(base, h.Create, admin)
	g.POST(base+"/:id", h.Update, admin)
	if h.cfg.Active != nil {
		g.POST(base+"/:id/toggle", h.Toggle, admin)
	}
	if h.cfg.Deletable {
		g.POST(base+"/:id/delete", h.Delete, admin)
	}
}

// mount builds and initialises the view model of this request. List
// failures other than auth are returned as loadErr and the page renders
// with what it has.
func (h *ResourceHandler[T]) mount(c echo.Context) (m *viewmodel.Model[T], loadErr error, err error) {
	store, err := ctxStore(c)
	if err != nil {
		return nil, nil, err
	}
	set, err := h.conn.Resources(c)
	if err != nil {
		return nil, nil, err
	}

	m = viewmodel.New(h.cfg, h.pick(set), store, h.validate, h.log)
	if err := m.Initialize(c.Request().Context()); err != nil {
		if errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrUnauthorized) {
			m.Unmount()
			return nil, nil, err
		}
		loadErr = err
	}

	m.SetFilter(c.QueryParam("filter"))
	if sort := c.QueryParam("sort"); sort != "" {
		m.SetSort(sort, viewmodel.Order(c.QueryParam("order")))
	}
	return m, loadErr, nil
}

func (h *ResourceHandler[T]) List(c echo.Context) error {
	m, loadErr, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	page := newPage(c, h.shell, h.cfg.Title, buildList(m, loadErr))
	if c.QueryParam("notice") == NoticeEmptyExport {
		page.Notice = h.cfg.EmptyNotice
	}
	return c.Render(http.StatusOK, "list.html", page)
}

// Export downloads the visible rows. An empty table redirects back to the
// list with the resource's notice.
func (h *ResourceHandler[T]) Export(format export.Format) echo.HandlerFunc {
	return func(c echo.Context) error {
		m, _, err := h.mount(c)
		if err != nil {
			return err
		}
		defer m.Unmount()

		b, err := m.Export(format)
		var notice *viewmodel.NoticeError
		if errors.As(err, &notice) {
			sort, order := m.SortState()
			q, _ := url.ParseQuery(listQuery(m.FilterValue(), sort, order))
			q.Set("notice", NoticeEmptyExport)
			return c.Redirect(http.StatusSeeOther, "/"+h.cfg.Resource+"?"+q.Encode())
		}
		if err != nil {
			return err
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+h.cfg.ExportName(format)+`"`)
		return c.Blob(http.StatusOK, format.ContentType(), b)
	}
}

func (h *ResourceHandler[T]) New(c echo.Context) error {
	m, _, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	m.StartCreate()
	return h.renderForm(c, m, http.StatusOK, "")
}

func (h *ResourceHandler[T]) Edit(c echo.Context) error {
	m, _, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	record, err := h.find(c, m)
	if err != nil {
		return err
	}
	m.StartEdit(record)
	return h.renderForm(c, m, http.StatusOK, "")
}

func (h *ResourceHandler[T]) Create(c echo.Context) error {
	m, _, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	m.StartCreate()
	return h.submit(c, m)
}

// Update binds the form onto the stored record, so fields the form does not
// carry (the id, server-assigned dates) survive the full-record PUT.
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	m, _, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	record, err := h.find(c, m)
	if err != nil {
		return err
	}
	m.StartEdit(record)
	return h.submit(c, m)
}

func (h *ResourceHandler[T]) submit(c echo.Context, m *viewmodel.Model[T]) error {
	draft := m.Draft()
	if err := (&echo.DefaultBinder{}).BindBody(c, &draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	m.SetDraft(draft)

	err := m.Submit(c.Request().Context())
	var verr *validation.Error
	var apiErr *gateway.APIError
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, "/"+h.cfg.Resource)
	case errors.As(err, &verr):
		return h.renderForm(c, m, http.StatusUnprocessableEntity, verr.Message)
	case errors.As(err, &apiErr) && !errors.Is(err, domain.ErrUnauthorized):
		return h.renderForm(c, m, http.StatusUnprocessableEntity, apiErr.Message)
	default:
		return err
	}
}

func (h *ResourceHandler[T]) Toggle(c echo.Context) error {
	m, _, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	record, err := h.find(c, m)
	if err != nil {
		return err
	}
	if err := m.ToggleActive(c.Request().Context(), record); err != nil {
		return err
	}
	return h.backToList(c)
}

func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	m, _, err := h.mount(c)
	if err != nil {
		return err
	}
	defer m.Unmount()

	if err := m.Delete(c.Request().Context(), domain.ID(c.Param("id"))); err != nil {
		return err
	}
	return h.backToList(c)
}

func (h *ResourceHandler[T]) find(c echo.Context, m *viewmodel.Model[T]) (T, error) {
	record, ok := m.Find(domain.ID(c.Param("id")))
	if !ok {
		return record, domain.ErrNotFound
	}
	return record, nil
}

// backToList returns to the list, keeping the filter and sort the row
// action was posted from.
func (h *ResourceHandler[T]) backToList(c echo.Context) error {
	target := "/" + h.cfg.Resource
	if q := c.FormValue("return"); q != "" {
		if _, err := url.ParseQuery(q); err == nil {
			target += "?" + q
		}
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *ResourceHandler[T]) renderForm(c echo.Context, m *viewmodel.Model[T], status int, message string) error {
	form, err := buildForm(m, func(resource string) []viewmodel.Option {
		return h.conn.Options(c, resource)
	})
	if err != nil {
		return err
	}
	page := newPage(c, h.shell, form.Title, form)
	page.Error = message
	return c.Render(status, "form.html", page)
}
