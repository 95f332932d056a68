package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	q "github.com/iliyamo/school-admin/internal/queue"
)

type achievementForm struct {
	PhotoURL        string `json:"photoUrl"`
	StudentName     string `json:"studentName" validate:"notblank" label:"Student name"`
	ClassSection    string `json:"classSection"`
	Category        string `json:"category" validate:"omitempty,oneof=Academic Sports"`
	Title           string `json:"title" validate:"notblank" label:"Title"`
	CompetitionName string `json:"competitionName"`
	Year            string `json:"year"`
	Rank            string `json:"rank"`
	Description     string `json:"description"`
	IsFeatured      bool   `json:"isFeatured"`
	IsActive        *bool  `json:"isActive"`
}

func (f achievementForm) toModel(defaultYear string) model.Achievement {
	a := model.Achievement{
		PhotoURL:        f.PhotoURL,
		StudentName:     strings.TrimSpace(f.StudentName),
		ClassSection:    f.ClassSection,
		Category:        model.AchievementCategory(f.Category),
		Title:           strings.TrimSpace(f.Title),
		CompetitionName: f.CompetitionName,
		Year:            f.Year,
		Rank:            f.Rank,
		Description:     f.Description,
		IsFeatured:      f.IsFeatured,
		IsActive:        true,
	}
	if a.Category == "" {
		a.Category = model.CategoryAcademic
	}
	if a.Year == "" {
		a.Year = defaultYear
	}
	if f.IsActive != nil {
		a.IsActive = *f.IsActive
	}
	return a
}

func (h *AdminHandler) currentYear() string { return strconv.Itoa(h.now().UTC().Year()) }

// ListAchievements supports ?q= (student name or title) and ?category=.
func (h *AdminHandler) ListAchievements(c echo.Context) error {
	list, err := h.Achievements.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

func (h *AdminHandler) GetAchievement(c echo.Context) error {
	a, err := h.Achievements.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) NewAchievement(c echo.Context) error {
	return c.JSON(http.StatusOK, achievementForm{}.toModel(h.currentYear()))
}

func (h *AdminHandler) CreateAchievement(c echo.Context) error {
	var form achievementForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	a, err := h.Achievements.Create(c.Request().Context(), form.toModel(h.currentYear()))
	if err != nil {
		return err
	}
	h.record(c, "achievement", q.ActionCreate, a.ID, a.Title, "")
	return c.JSON(http.StatusCreated, a)
}

func (h *AdminHandler) UpdateAchievement(c echo.Context) error {
	var form achievementForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	a, err := h.Achievements.Save(c.Request().Context(), c.Param("id"), form.toModel(h.currentYear()))
	if err != nil {
		return err
	}
	h.record(c, "achievement", q.ActionUpdate, a.ID, a.Title, "")
	return c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) ToggleAchievementFeatured(c echo.Context) error {
	a, err := h.Achievements.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	h.record(c, "achievement", q.ActionToggle, a.ID, a.Title, "isFeatured")
	return c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) ToggleAchievementActive(c echo.Context) error {
	a, err := h.Achievements.ToggleActive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	h.record(c, "achievement", q.ActionToggle, a.ID, a.Title, "isActive")
	return c.JSON(http.StatusOK, a)
}

func (h *AdminHandler) DeleteAchievement(c echo.Context) error {
	id := c.Param("id")
	if err := h.Achievements.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.record(c, "achievement", q.ActionDelete, id, "", "")
	return c.NoContent(http.StatusNoContent)
}
