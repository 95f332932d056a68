package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	q "github.com/iliyamo/school-admin/internal/queue"
)

type eventForm struct {
	Title       string `json:"title" validate:"notblank" label:"Title"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"notblank,date" label:"Date"`
	EndDate     string `json:"endDate" validate:"date" label:"End date"`
}

func (f eventForm) toModel() model.Event {
	return model.Event{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Date:        f.Date,
		EndDate:     f.EndDate,
	}
}

// ListEvents returns the calendar, optionally narrowed by ?q= on the title.
func (h *AdminHandler) ListEvents(c echo.Context) error {
	events, err := h.Events.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(events))
}

func (h *AdminHandler) GetEvent(c echo.Context) error {
	e, err := h.Events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// NewEvent returns the blank form: today's date and the matching status.
func (h *AdminHandler) NewEvent(c echo.Context) error {
	now := h.now()
	date := model.Today(now)
	return c.JSON(http.StatusOK, model.Event{Date: date, Status: model.EventStatusOn(date, now)})
}

func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var form eventForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	e, err := h.Events.Create(c.Request().Context(), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "event", q.ActionCreate, e.ID, e.Title, "")
	return c.JSON(http.StatusCreated, e)
}

func (h *AdminHandler) UpdateEvent(c echo.Context) error {
	var form eventForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	e, err := h.Events.Save(c.Request().Context(), c.Param("id"), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "event", q.ActionUpdate, e.ID, e.Title, "")
	return c.JSON(http.StatusOK, e)
}

func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	id := c.Param("id")
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.record(c, "event", q.ActionDelete, id, "", "")
	return c.NoContent(http.StatusNoContent)
}
