package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	q "github.com/iliyamo/school-admin/internal/queue"
)

type staffForm struct {
	Name     string `json:"name" validate:"notblank" msg:"Staff name is required"`
	Role     string `json:"role" validate:"notblank" msg:"Designation/Role is required"`
	PhotoURL string `json:"photoUrl"`
	IsActive *bool  `json:"isActive"`
	Order    *int   `json:"order" validate:"omitnil,min=1" msg:"Valid display order is required"`
}

// toModel leaves Order at 0 when absent.  The repository then appends a new
// member at the end of the list, or keeps an existing member's order.
func (f staffForm) toModel() model.Staff {
	s := model.Staff{
		Name:     strings.TrimSpace(f.Name),
		Role:     strings.TrimSpace(f.Role),
		PhotoURL: f.PhotoURL,
		IsActive: true,
	}
	if f.IsActive != nil {
		s.IsActive = *f.IsActive
	}
	if f.Order != nil {
		s.Order = *f.Order
	}
	return s
}

// ListStaff returns members sorted by display order.
func (h *AdminHandler) ListStaff(c echo.Context) error {
	list, err := h.Staff.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

func (h *AdminHandler) GetStaff(c echo.Context) error {
	s, err := h.Staff.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// NewStaff returns the blank form placed after the current last member.
func (h *AdminHandler) NewStaff(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Staff{IsActive: true, Order: h.Staff.NextOrder()})
}

func (h *AdminHandler) CreateStaff(c echo.Context) error {
	var form staffForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	s, err := h.Staff.Create(c.Request().Context(), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "staff", q.ActionCreate, s.ID, s.Name, "")
	return c.JSON(http.StatusCreated, s)
}

func (h *AdminHandler) UpdateStaff(c echo.Context) error {
	var form staffForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	s, err := h.Staff.Save(c.Request().Context(), c.Param("id"), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "staff", q.ActionUpdate, s.ID, s.Name, "")
	return c.JSON(http.StatusOK, s)
}

func (h *AdminHandler) ToggleStaffActive(c echo.Context) error {
	s, err := h.Staff.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	h.record(c, "staff", q.ActionToggle, s.ID, s.Name, "isActive")
	return c.JSON(http.StatusOK, s)
}

func (h *AdminHandler) DeleteStaff(c echo.Context) error {
	id := c.Param("id")
	if err := h.Staff.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.record(c, "staff", q.ActionDelete, id, "", "")
	return c.NoContent(http.StatusNoContent)
}
