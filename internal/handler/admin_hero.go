package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	q "github.com/iliyamo/school-admin/internal/queue"
)

type heroForm struct {
	Heading            string `json:"heading" validate:"notblank" label:"Heading"`
	Subtext            string `json:"subtext"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
}

func (h *AdminHandler) GetHero(c echo.Context) error {
	hero, err := h.Hero.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}

// PutHero replaces the whole banner.
func (h *AdminHandler) PutHero(c echo.Context) error {
	var form heroForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	hero, err := h.Hero.Put(c.Request().Context(), model.HeroConfig(form))
	if err != nil {
		return err
	}
	h.record(c, "hero", q.ActionUpdate, "hero", hero.Heading, "")
	return c.JSON(http.StatusOK, hero)
}

// PatchHero updates only the fields present in the body.
func (h *AdminHandler) PatchHero(c echo.Context) error {
	var patch model.HeroPatch
	if err := c.Bind(&patch); err != nil {
		return errInvalidBody
	}
	hero, err := h.Hero.Patch(c.Request().Context(), patch)
	if err != nil {
		return err
	}
	h.record(c, "hero", q.ActionUpdate, "hero", hero.Heading, patchedFields(patch))
	return c.JSON(http.StatusOK, hero)
}

func patchedFields(p model.HeroPatch) string {
	var out []string
	if p.Heading != nil {
		out = append(out, "heading")
	}
	if p.Subtext != nil {
		out = append(out, "subtext")
	}
	if p.BackgroundImageURL != nil {
		out = append(out, "backgroundImageUrl")
	}
	return strings.Join(out, ",")
}
