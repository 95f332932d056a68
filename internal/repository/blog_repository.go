package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/iliyamo/school-admin/internal/model"
)

// BlogFilter narrows a blog listing.  Zero values disable a criterion.
type BlogFilter struct {
	Query     string
	Category  string
	Tags      []string
	Published *bool
}

// BlogRepo stores blog posts, newest first.  Every write that may publish a
// post checks the publish limit under the same lock that performs it, and
// makes the slug unique among the stored posts.
type BlogRepo struct {
	c *Collection[model.BlogPost]
}

func NewBlogRepo(seed []model.BlogPost) *BlogRepo {
	return &BlogRepo{
		c: NewCollection("blog post", Prepend, func(p *model.BlogPost) *string { return &p.ID }, seed),
	}
}

func (r *BlogRepo) List(ctx context.Context) ([]model.BlogPost, error) {
	return r.c.List(ctx)
}

// Find applies f to the stored posts.  Tags match when any selected value
// is carried by the post.
func (r *BlogRepo) Find(ctx context.Context, f BlogFilter) ([]model.BlogPost, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.BlogPost, 0, len(all))
	for _, p := range all {
		if f.Published != nil && p.IsPublished != *f.Published {
			continue
		}
		if f.Category != "" && f.Category != model.FilterAll && p.Category != f.Category {
			continue
		}
		if !p.MatchesAnyTag(f.Tags) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Excerpt), q) &&
			!strings.Contains(strings.ToLower(p.AuthorName), q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *BlogRepo) Get(ctx context.Context, id string) (model.BlogPost, error) {
	return r.c.Get(ctx, id)
}

// GetPublishedBySlug returns the published post with the given slug.
func (r *BlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return model.BlogPost{}, err
	}
	for _, p := range all {
		if p.IsPublished && p.Slug == slug {
			return p, nil
		}
	}
	return model.BlogPost{}, &NotFoundError{Entity: "blog post", ID: slug}
}

// Create stores a new post.  It fails with ErrPublishLimit when the post is
// published and PublishLimit posts are already live.
func (r *BlogRepo) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	return r.c.InsertIf(ctx, p, publishGuard)
}

// Save replaces the post with the given id under the same publish rule;
// the post being edited does not count against the limit.
func (r *BlogRepo) Save(ctx context.Context, id string, p model.BlogPost) (model.BlogPost, error) {
	return r.c.UpdateIf(ctx, id, func(cur *model.BlogPost) error {
		*cur = p
		return nil
	}, publishGuard)
}

// TogglePublish flips IsPublished, subject to the publish limit.
func (r *BlogRepo) TogglePublish(ctx context.Context, id string) (model.BlogPost, error) {
	return r.c.UpdateIf(ctx, id, func(cur *model.BlogPost) error {
		cur.IsPublished = !cur.IsPublished
		return nil
	}, publishGuard)
}

func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

// PublishedCount returns the number of live posts.
func (r *BlogRepo) PublishedCount(ctx context.Context) (int, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return 0, err
	}
	return model.PublishedCount(all, ""), nil
}

func publishGuard(all []model.BlogPost, p *model.BlogPost) error {
	if p.IsPublished && !model.PublishAllowed(all, p.ID) {
		return ErrPublishLimit
	}
	p.Slug = uniqueSlug(all, p.ID, p.Slug)
	return nil
}

// uniqueSlug appends -2, -3, ... until no other post uses the slug.
func uniqueSlug(all []model.BlogPost, selfID, slug string) string {
	if slug == "" {
		return slug
	}
	taken := make(map[string]bool, len(all))
	for _, p := range all {
		if p.ID != selfID {
			taken[p.Slug] = true
		}
	}
	if !taken[slug] {
		return slug
	}
	for n := 2; ; n++ {
		candidate := slug + "-" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}
