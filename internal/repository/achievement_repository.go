package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/iliyamo/school-admin/internal/model"
)

// AchievementRepo stores student achievements, newest first.
type AchievementRepo struct {
	c *Collection[model.Achievement]
}

func NewAchievementRepo(seed []model.Achievement) *AchievementRepo {
	return &AchievementRepo{
		c: NewCollection("achievement", Prepend, func(a *model.Achievement) *string { return &a.ID }, seed),
	}
}

func (r *AchievementRepo) List(ctx context.Context) ([]model.Achievement, error) {
	return r.c.List(ctx)
}

// Search filters by a case-insensitive match on student name or title and,
// when category is set, by exact category.
func (r *AchievementRepo) Search(ctx context.Context, q, category string) ([]model.Achievement, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]model.Achievement, 0, len(all))
	for _, a := range all {
		if category != "" && category != model.FilterAll && string(a.Category) != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(a.StudentName), q) && !strings.Contains(strings.ToLower(a.Title), q) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// Showcase returns the active achievements with featured ones first; the
// relative order within each group is kept.
func (r *AchievementRepo) Showcase(ctx context.Context) ([]model.Achievement, error) {
	all, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Achievement, 0, len(all))
	for _, a := range all {
		if a.IsActive {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].IsFeatured && !out[j].IsFeatured })
	return out, nil
}

func (r *AchievementRepo) Get(ctx context.Context, id string) (model.Achievement, error) {
	return r.c.Get(ctx, id)
}

func (r *AchievementRepo) Create(ctx context.Context, a model.Achievement) (model.Achievement, error) {
	return r.c.Insert(ctx, a)
}

func (r *AchievementRepo) Save(ctx context.Context, id string, a model.Achievement) (model.Achievement, error) {
	return r.c.Replace(ctx, id, a)
}

// ToggleFeatured flips IsFeatured.
func (r *AchievementRepo) ToggleFeatured(ctx context.Context, id string) (model.Achievement, error) {
	return r.c.Update(ctx, id, func(a *model.Achievement) error {
		a.IsFeatured = !a.IsFeatured
		return nil
	})
}

// ToggleActive flips IsActive.
func (r *AchievementRepo) ToggleActive(ctx context.Context, id string) (model.Achievement, error) {
	return r.c.Update(ctx, id, func(a *model.Achievement) error {
		a.IsActive = !a.IsActive
		return nil
	})
}

func (r *AchievementRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func (r *AchievementRepo) Count() int { return r.c.Len() }
