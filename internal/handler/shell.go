package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/config"
	"github.com/iliyamo/school-admin/internal/middleware"
	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/validation"
)

// ShellHandler serves the navigation shell and the shared widgets.
type ShellHandler struct {
	Cfg config.Config
}

func NewShellHandler(cfg config.Config) *ShellHandler { return &ShellHandler{Cfg: cfg} }

// Menu returns the navigation items for the caller's role.
func (h *ShellHandler) Menu(c echo.Context) error {
	role, _ := middleware.CurrentRole(c)
	return c.JSON(http.StatusOK, items(model.MenuFor(role)))
}

// optionsDisplayLimit is how many selected labels the closed dropdown shows
// before collapsing the rest into "+N more".
const optionsDisplayLimit = 2

// Options serves a dropdown's option set, narrowed by ?q=.  The widget's
// multi-select state travels in the query: ?selected=a,b is the current
// selection and ?toggle=v adds or removes v from it.  The response carries
// the resulting selection and its closed-dropdown summary.
func (h *ShellHandler) Options(c echo.Context) error {
	set := c.Param("set")
	opts, ok := model.OptionSets[set]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "option set not found")
	}
	selected := splitList(c.QueryParam("selected"))
	if v := c.QueryParam("toggle"); v != "" {
		if !model.HasValue(opts, v) {
			return validation.NewError("toggle", "Unknown option "+v)
		}
		selected = model.ToggleValue(selected, v)
	}
	if selected == nil {
		selected = []string{}
	}
	labels, more := model.DisplayValues(selected, opts, optionsDisplayLimit)

	matches := model.SearchOptions(opts, c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{
		"items":    matches,
		"total":    len(matches),
		"selected": selected,
		"display":  echo.Map{"labels": labels, "more": more},
	})
}

// System reports the backend wiring without exposing the key.
func (h *ShellHandler) System(c echo.Context) error {
	b := h.Cfg.Backend
	return c.JSON(http.StatusOK, echo.Map{
		"env": h.Cfg.Env,
		"backend": echo.Map{
			"configured": b.Configured(),
			"url":        b.URL,
		},
		"queueEnabled": h.Cfg.Queue.Enabled,
	})
}
