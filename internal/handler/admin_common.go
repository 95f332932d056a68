package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/middleware"
	q "github.com/iliyamo/school-admin/internal/queue"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/service"
	"github.com/iliyamo/school-admin/internal/validation"
)

// AdminHandler bundles the repositories behind the admin pages.  Its methods
// are spread over one file per page.
type AdminHandler struct {
	Events       *repository.EventRepo
	Achievements *repository.AchievementRepo
	Blogs        *repository.BlogRepo
	Gallery      *repository.GalleryRepo
	Admissions   *repository.AdmissionRepo
	Staff        *repository.StaffRepo
	Hero         *repository.HeroRepo
	Changes      *service.Changes

	now func() time.Time
}

// NewAdminHandler panics if a repository is missing.
func NewAdminHandler(
	events *repository.EventRepo,
	achievements *repository.AchievementRepo,
	blogs *repository.BlogRepo,
	gallery *repository.GalleryRepo,
	admissions *repository.AdmissionRepo,
	staff *repository.StaffRepo,
	hero *repository.HeroRepo,
	changes *service.Changes,
) *AdminHandler {
	if events == nil || achievements == nil || blogs == nil || gallery == nil || admissions == nil || staff == nil || hero == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	if changes == nil {
		changes = service.NewChanges(nil, nil)
	}
	return &AdminHandler{
		Events:       events,
		Achievements: achievements,
		Blogs:        blogs,
		Gallery:      gallery,
		Admissions:   admissions,
		Staff:        staff,
		Hero:         hero,
		Changes:      changes,
		now:          time.Now,
	}
}

// bindForm decodes the JSON body into form and validates it.
func bindForm(c echo.Context, form interface{}) error {
	if err := c.Bind(form); err != nil {
		return errInvalidBody
	}
	return validation.Struct(form)
}

// record emits a content-change event on behalf of the signed-in user.
func (h *AdminHandler) record(c echo.Context, entity, action, id, title, field string) {
	role, _ := middleware.CurrentRole(c)
	h.Changes.Record(c.Request().Context(), q.ContentChangedEvent{
		Entity: entity,
		Action: action,
		ID:     id,
		Title:  title,
		Field:  field,
		UserID: middleware.CurrentUserID(c),
		Role:   string(role),
	})
}

func items[T any](list []T) echo.Map {
	return echo.Map{"items": list, "total": len(list)}
}
