package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	q "github.com/iliyamo/school-admin/internal/queue"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/richtext"
	"github.com/iliyamo/school-admin/internal/utils"
	"github.com/iliyamo/school-admin/internal/validation"
)

// DefaultBlogContent is the editor's starting document for a new post.
const DefaultBlogContent = "<h1>Enter your headline</h1><p>Start writing your institutional article here...</p>"

type blogForm struct {
	Title                string   `json:"title" validate:"notblank" label:"Title"`
	Excerpt              string   `json:"excerpt" validate:"notblank" label:"Excerpt"`
	PublishDate          string   `json:"publishDate" validate:"notblank,date" label:"Publish Date"`
	AuthorName           string   `json:"authorName" validate:"notblank" label:"Author Name"`
	AuthorRole           string   `json:"authorRole" validate:"notblank" label:"Author Role"`
	AuthorImageURL       string   `json:"authorImageUrl"`
	Category             string   `json:"category"`
	AdditionalCategories []string `json:"additionalCategories"`
	ReadTime             string   `json:"readTime"`
	CoverImageURL        string   `json:"coverImageUrl" validate:"notblank" label:"Cover Image URL"`
	Content              string   `json:"content"`
	IsPublished          bool     `json:"isPublished"`
}

// toModel trims the form and fills the derived fields: slug, paragraphs
// and, when left blank, the read time.
func (f blogForm) toModel() model.BlogPost {
	p := model.BlogPost{
		Title:                strings.TrimSpace(f.Title),
		Excerpt:              strings.TrimSpace(f.Excerpt),
		PublishDate:          f.PublishDate,
		AuthorName:           strings.TrimSpace(f.AuthorName),
		AuthorRole:           strings.TrimSpace(f.AuthorRole),
		AuthorImageURL:       f.AuthorImageURL,
		Category:             f.Category,
		AdditionalCategories: f.AdditionalCategories,
		ReadTime:             strings.TrimSpace(f.ReadTime),
		CoverImageURL:        strings.TrimSpace(f.CoverImageURL),
		Content:              f.Content,
		IsPublished:          f.IsPublished,
	}
	if p.Category == "" {
		p.Category = "General"
	}
	if p.AdditionalCategories == nil {
		p.AdditionalCategories = []string{}
	}
	p.Slug = utils.Slugify(p.Title)
	if p.Slug == "" {
		p.Slug = "post"
	}
	p.Paragraphs = richtext.Paragraphs(p.Content)
	if p.ReadTime == "" {
		p.ReadTime = richtext.ReadTime(p.Content)
	}
	return p
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func blogFilterFrom(c echo.Context) (repository.BlogFilter, error) {
	f := repository.BlogFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Tags:     splitList(c.QueryParam("tags")),
	}
	if raw := c.QueryParam("published"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return f, validation.NewError("published", "Published must be true or false")
		}
		f.Published = &v
	}
	return f, nil
}

// ListBlogs returns the filtered posts together with the number of live
// posts and the limit.
func (h *AdminHandler) ListBlogs(c echo.Context) error {
	f, err := blogFilterFrom(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	posts, err := h.Blogs.Find(ctx, f)
	if err != nil {
		return err
	}
	published, err := h.Blogs.PublishedCount(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":          posts,
		"total":          len(posts),
		"publishedCount": published,
		"publishLimit":   model.PublishLimit,
	})
}

func (h *AdminHandler) GetBlog(c echo.Context) error {
	p, err := h.Blogs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// NewBlog returns the editor's blank draft dated today.
func (h *AdminHandler) NewBlog(c echo.Context) error {
	draft := blogForm{
		Content:     DefaultBlogContent,
		Category:    "General",
		PublishDate: model.Today(h.now()),
		ReadTime:    "5 min",
	}.toModel()
	draft.Slug = ""
	return c.JSON(http.StatusOK, draft)
}

func (h *AdminHandler) CreateBlog(c echo.Context) error {
	var form blogForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	p, err := h.Blogs.Create(c.Request().Context(), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "blog", q.ActionCreate, p.ID, p.Title, "")
	h.refreshPublished(c)
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminHandler) UpdateBlog(c echo.Context) error {
	var form blogForm
	if err := bindForm(c, &form); err != nil {
		return err
	}
	p, err := h.Blogs.Save(c.Request().Context(), c.Param("id"), form.toModel())
	if err != nil {
		return err
	}
	h.record(c, "blog", q.ActionUpdate, p.ID, p.Title, "")
	h.refreshPublished(c)
	return c.JSON(http.StatusOK, p)
}

// ToggleBlogPublish flips publication, refusing to go over the limit.
func (h *AdminHandler) ToggleBlogPublish(c echo.Context) error {
	p, err := h.Blogs.TogglePublish(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	h.record(c, "blog", q.ActionToggle, p.ID, p.Title, "isPublished")
	h.refreshPublished(c)
	return c.JSON(http.StatusOK, p)
}

func (h *AdminHandler) DeleteBlog(c echo.Context) error {
	id := c.Param("id")
	if err := h.Blogs.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	h.record(c, "blog", q.ActionDelete, id, "", "")
	h.refreshPublished(c)
	return c.NoContent(http.StatusNoContent)
}

type previewReq struct {
	Content string `json:"content"`
}

// PreviewBlog shows what the editor's HTML turns into once saved.
func (h *AdminHandler) PreviewBlog(c echo.Context) error {
	var req previewReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	return c.JSON(http.StatusOK, echo.Map{
		"paragraphs": richtext.Paragraphs(req.Content),
		"readTime":   richtext.ReadTime(req.Content),
	})
}

func (h *AdminHandler) refreshPublished(c echo.Context) {
	if n, err := h.Blogs.PublishedCount(c.Request().Context()); err == nil {
		h.Changes.PublishedPosts(n)
	}
}
