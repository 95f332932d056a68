package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	q "github.com/iliyamo/school-admin/internal/queue"
	"github.com/iliyamo/school-admin/internal/validation"
)

type galleryForm struct {
	URL      string `json:"url" validate:"notblank" label:"Image URL"`
	Category string `json:"category" validate:"omitempty,oneof=Academics Sports Events Campus"`
}

func (f galleryForm) toModel() model.GalleryImage {
	g := model.GalleryImage{URL: strings.TrimSpace(f.URL), Category: f.Category}
	if g.Category == "" {
		g.Category = model.GalleryCategories[0]
	}
	return g
}

// ListGallery filters by ?category=; "All" or no value returns everything.
func (h *AdminHandler) ListGallery(c echo.Context) error {
	category := c.QueryParam("category")
	if category != "" && category != model.FilterAll && !model.IsGalleryCategory(category) {
		return validation.NewError("category", "Unknown gallery category")
	}
	images, err := h.Gallery.List(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":      images,
		"total":      len(images),
		"categories": append([]string{model.FilterAll}, model.GalleryCategories...),
	})
}

func (h *AdminHandler) GetImage(c echo.Context) error {
	g, err := h.Gallery.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

func (h *AdminHandler) NewImage(c echo.Context) error {
	return c.JSON(http.StatusOK, galleryForm{}.toModel())
}

func (h *AdminHandler) CreateImage(c echo.Context) error {
	var form galleryForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	g, err := h.Gallery.Create(c.Request().Context(), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "gallery", q.ActionCreate, g.ID, "", "")
	return c.JSON(http.StatusCreated, g)
}

func (h *AdminHandler) UpdateImage(c echo.Context) error {
	var form galleryForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	g, err := h.Gallery.Save(c.Request().Context(), c.Param("id"), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "gallery", q.ActionUpdate, g.ID, "", "")
	return c.JSON(http.StatusOK, g)
}

func (h *AdminHandler) DeleteImage(c echo.Context) error {
	id := c.Param("id")
	if err := h.Gallery.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.record(c, "gallery", q.ActionDelete, id, "", "")
	return c.NoContent(http.StatusNoContent)
}
