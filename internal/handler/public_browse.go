// This file defines handlers for the public website feed.  These routes let
// anonymous visitors read published content; drafts, inactive records and
// admissions are never exposed.

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/richtext"
	"github.com/iliyamo/school-admin/internal/validation"
)

// PublicHandler aggregates the repositories read by the public site.
type PublicHandler struct {
	Events       *repository.EventRepo
	Achievements *repository.AchievementRepo
	Blogs        *repository.BlogRepo
	Gallery      *repository.GalleryRepo
	Staff        *repository.StaffRepo
	Hero         *repository.HeroRepo
}

// PublicBlog is a post in list responses.  The HTML body is left out; the
// detail route returns the paragraphs instead.
type PublicBlog struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	PublishDate   string   `json:"publishDate"`
	AuthorName    string   `json:"authorName"`
	AuthorRole    string   `json:"authorRole"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	ReadTime      string   `json:"readTime"`
	CoverImageURL string   `json:"coverImageUrl"`
}

// PublicBlogDetail adds the rendered paragraphs to PublicBlog.  Text is the
// same content as one plain string, for feeds and share previews.
type PublicBlogDetail struct {
	PublicBlog
	AuthorImageURL string   `json:"authorImageUrl,omitempty"`
	Paragraphs     []string `json:"paragraphs"`
	Text           string   `json:"text"`
}

func toPublicBlog(p model.BlogPost) PublicBlog {
	return PublicBlog{
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		PublishDate:   p.PublishDate,
		AuthorName:    p.AuthorName,
		AuthorRole:    p.AuthorRole,
		Category:      p.Category,
		Tags:          p.Tags(),
		ReadTime:      p.ReadTime,
		CoverImageURL: p.CoverImageURL,
	}
}

func (h *PublicHandler) GetPublicEvents(c echo.Context) error {
	list, err := h.Events.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

// GetPublicAchievements returns active achievements, featured first.
func (h *PublicHandler) GetPublicAchievements(c echo.Context) error {
	list, err := h.Achievements.Showcase(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

// GetPublicBlogs lists published posts; ?tags= and ?category= filter the
// same way the admin list does.
func (h *PublicHandler) GetPublicBlogs(c echo.Context) error {
	published := true
	list, err := h.Blogs.Find(c.Request().Context(), repository.BlogFilter{
		Category:  c.QueryParam("category"),
		Tags:      splitList(c.QueryParam("tags")),
		Published: &published,
	})
	if err != nil {
		return err
	}
	out := make([]PublicBlog, 0, len(list))
	for _, p := range list {
		out = append(out, toPublicBlog(p))
	}
	return c.JSON(http.StatusOK, items(out))
}

func (h *PublicHandler) GetPublicBlog(c echo.Context) error {
	p, err := h.Blogs.GetPublishedBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, PublicBlogDetail{
		PublicBlog:     toPublicBlog(p),
		AuthorImageURL: p.AuthorImageURL,
		Paragraphs:     p.Paragraphs,
		Text:           richtext.PlainText(p.Content),
	})
}

func (h *PublicHandler) GetPublicGallery(c echo.Context) error {
	category := c.QueryParam("category")
	if category != "" && category != model.FilterAll && !model.IsGalleryCategory(category) {
		return validation.NewError("category", "Unknown gallery category")
	}
	list, err := h.Gallery.List(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

// GetPublicStaff returns active members in display order.
func (h *PublicHandler) GetPublicStaff(c echo.Context) error {
	list, err := h.Staff.Active(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

func (h *PublicHandler) GetPublicHero(c echo.Context) error {
	hero, err := h.Hero.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hero)
}
