package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/core/dashboard"
	"github.com/globalcargo/cargo-console/internal/core/nav"
)

type DashboardHandler struct {
	conn  *Connector
	shell *nav.Shell
	log   zerolog.Logger
}

func NewDashboardHandler(conn *Connector, shell *nav.Shell, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{conn: conn, shell: shell, log: log}
}

// Show renders the three headline counts.
func (h *DashboardHandler) Show(c echo.Context) error {
	set, err := h.conn.Resources(c)
	if err != nil {
		return err
	}
	agg := dashboard.NewAggregator(set.Ships, set.Shipments, set.Clients, h.log)
	summary, err := agg.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "dashboard.html", newPage(c, h.shell, "Dashboard", summary))
}
