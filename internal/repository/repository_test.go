package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/school-admin/internal/model"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestCollectionInsertAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	ms := fmt.Sprint(fixedNow.UnixMilli())
	repo := NewGalleryRepo([]model.GalleryImage{{ID: ms, URL: "a", Category: "Campus"}})
	repo.c.SetClock(fixedClock)

	first, err := repo.Create(ctx, model.GalleryImage{URL: "b", Category: "Sports"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.GalleryImage{URL: "c", Category: "Sports"})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprint(fixedNow.UnixMilli()+1), first.ID)
	assert.Equal(t, fmt.Sprint(fixedNow.UnixMilli()+2), second.ID)

	all, err := repo.List(ctx, "All")
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, g := range all {
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
	}
	// newest first
	assert.Equal(t, []string{second.ID, first.ID, ms}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestCollectionConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo(nil)
	repo.SetClock(fixedClock)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, model.Event{Title: "x", Date: "2024-06-01"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	seen := map[string]bool{}
	for _, e := range all {
		seen[e.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestCollectionDeleteRemovesExactlyOne(t *testing.T) {
	ctx := context.Background()
	repo := NewGalleryRepo([]model.GalleryImage{
		{ID: "a", URL: "1"}, {ID: "b", URL: "2"}, {ID: "c", URL: "3"},
	})

	require.NoError(t, repo.Delete(ctx, "b"))
	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []model.GalleryImage{{ID: "a", URL: "1"}, {ID: "c", URL: "3"}}, all)

	err = repo.Delete(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "image not found")
}

func TestCollectionReplaceKeepsIDAndPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepo([]model.Achievement{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})

	got, err := repo.Save(ctx, "2", model.Achievement{ID: "ignored", Title: "B"})
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", all[0].Title)
	assert.Equal(t, "B", all[1].Title)

	_, err = repo.Save(ctx, "missing", model.Achievement{})
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "achievement", nf.Entity)
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepo([]model.Achievement{{ID: "1", Title: "a"}})
	all, err := repo.List(ctx)
	require.NoError(t, err)
	all[0].Title = "changed"

	got, err := repo.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewStaffRepo(nil)
	_, err := repo.Create(ctx, model.Staff{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEventStatusRefreshedOnRead(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepo([]model.Event{
		{ID: "1", Date: "2024-06-02", Status: model.StatusPast},
		{ID: "2", Date: "2024-06-01", Status: model.StatusPast},
		{ID: "3", Date: "2024-05-31", Status: model.StatusUpcoming},
	})
	repo.SetClock(fixedClock)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUpcoming, all[0].Status)
	assert.Equal(t, model.StatusOngoing, all[1].Status)
	assert.Equal(t, model.StatusPast, all[2].Status)

	created, err := repo.Create(ctx, model.Event{Title: "new", Date: "2030-01-01", Status: model.StatusPast})
	require.NoError(t, err)
	assert.Equal(t, model.StatusUpcoming, created.Status)

	found, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 4)
}

func TestEventSearch(t *testing.T) {
	repo := NewEventRepo([]model.Event{{ID: "1", Title: "Annual Day"}, {ID: "2", Title: "Sports Meet"}})
	got, err := repo.Search(context.Background(), "  annual ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func publishedPosts(n int) []model.BlogPost {
	out := make([]model.BlogPost, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.BlogPost{ID: fmt.Sprint(i + 1), Slug: fmt.Sprintf("post-%d", i+1), IsPublished: true})
	}
	return out
}

func TestBlogPublishLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepo(publishedPosts(6))

	_, err := repo.Create(ctx, model.BlogPost{Title: "seventh", IsPublished: true})
	assert.ErrorIs(t, err, ErrPublishLimit)

	draft, err := repo.Create(ctx, model.BlogPost{Title: "draft", Slug: "draft"})
	require.NoError(t, err)

	// editing a post that is already live does not count against itself
	edited, err := repo.Save(ctx, "3", model.BlogPost{Title: "edited", Slug: "post-3", IsPublished: true})
	require.NoError(t, err)
	assert.True(t, edited.IsPublished)

	_, err = repo.TogglePublish(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrPublishLimit)

	_, err = repo.TogglePublish(ctx, "1")
	require.NoError(t, err)
	count, err := repo.PublishedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	_, err = repo.TogglePublish(ctx, draft.ID)
	require.NoError(t, err)
	count, err = repo.PublishedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestBlogPublishLimitUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepo(publishedPosts(3))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = repo.Create(ctx, model.BlogPost{Slug: fmt.Sprintf("c-%d", i), IsPublished: true})
		}(i)
	}
	wg.Wait()

	count, err := repo.PublishedCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.PublishLimit, count)
}

func TestBlogSlugsStayUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewBlogRepo([]model.BlogPost{{ID: "1", Slug: "open-day"}})

	p, err := repo.Create(ctx, model.BlogPost{Slug: "open-day"})
	require.NoError(t, err)
	assert.Equal(t, "open-day-2", p.Slug)

	same, err := repo.Save(ctx, "1", model.BlogPost{Slug: "open-day"})
	require.NoError(t, err)
	assert.Equal(t, "open-day", same.Slug)
}

func TestBlogFind(t *testing.T) {
	ctx := context.Background()
	yes := true
	repo := NewBlogRepo([]model.BlogPost{
		{ID: "1", Title: "STEM future", Category: "Education", AdditionalCategories: []string{"STEM"}, IsPublished: true},
		{ID: "2", Title: "Sports day", Category: "Sports"},
		{ID: "3", Title: "Alumni meet", Category: "General", AdditionalCategories: []string{"Alumni"}, IsPublished: true},
	})

	got, err := repo.Find(ctx, BlogFilter{Tags: []string{"stem", "Sports"}})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.Find(ctx, BlogFilter{Published: &yes, Query: "alumni"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got, err = repo.Find(ctx, BlogFilter{Category: "Sports"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	_, err = repo.GetPublishedBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaffDefaultsAndOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepo(nil)
	assert.Equal(t, 1, repo.NextOrder())

	a, err := repo.Create(ctx, model.Staff{Name: "A", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, a.Order)
	b, err := repo.Create(ctx, model.Staff{Name: "B", Order: 1, IsActive: true})
	require.NoError(t, err)
	c, err := repo.Create(ctx, model.Staff{Name: "C"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Order)

	_, err = repo.Save(ctx, a.ID, model.Staff{Name: "A", Order: 5, IsActive: true})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, []string{all[0].Name, all[1].Name, all[2].Name})

	active, err := repo.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID, a.ID}, []string{active[0].ID, active[1].ID})
}

func TestStaffSaveKeepsOrderUnderConcurrentReorder(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepo(nil)
	m, err := repo.Create(ctx, model.Staff{Name: "M", Order: 2, IsActive: true})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Save(ctx, m.ID, model.Staff{Name: fmt.Sprintf("M%d", i), Role: "Teacher", IsActive: true})
			assert.NoError(t, err)
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := repo.Save(ctx, m.ID, model.Staff{Name: "M", Role: "Teacher", Order: 9, IsActive: true})
		assert.NoError(t, err)
	}()
	wg.Wait()

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, got.Order)
	assert.Equal(t, "Teacher", got.Role)
}

func TestAchievementShowcase(t *testing.T) {
	repo := NewAchievementRepo([]model.Achievement{
		{ID: "1", IsActive: true},
		{ID: "2", IsActive: true, IsFeatured: true},
		{ID: "3", IsActive: false, IsFeatured: true},
		{ID: "4", IsActive: true, IsFeatured: true},
	})
	got, err := repo.Showcase(context.Background())
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, a := range got {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"2", "4", "1"}, ids)
}

func TestAchievementToggles(t *testing.T) {
	ctx := context.Background()
	repo := NewAchievementRepo([]model.Achievement{{ID: "1", IsActive: true}})
	a, err := repo.ToggleActive(ctx, "1")
	require.NoError(t, err)
	assert.False(t, a.IsActive)
	a, err = repo.ToggleFeatured(ctx, "1")
	require.NoError(t, err)
	assert.True(t, a.IsFeatured)
}

func TestAdmissionFind(t *testing.T) {
	repo := NewAdmissionRepo([]model.AdmissionSubmission{
		{ID: "1", StudentName: "Rohan", Grade: "Grade 5"},
		{ID: "2", StudentName: "Ananya", Grade: "Grade 1"},
		{ID: "3", StudentName: "Kiran", Grade: "UKG"},
		{ID: "4", StudentName: "Meera", Grade: "Grade 7"},
	})
	got, err := repo.Find(context.Background(), model.GradeBucketPrimary, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.Find(context.Background(), "All", "kir")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestHeroPatch(t *testing.T) {
	ctx := context.Background()
	repo := NewHeroRepo(model.HeroConfig{Heading: "h", Subtext: "s", BackgroundImageURL: "b"})
	heading := "new"
	got, err := repo.Patch(ctx, model.HeroPatch{Heading: &heading})
	require.NoError(t, err)
	assert.Equal(t, model.HeroConfig{Heading: "new", Subtext: "s", BackgroundImageURL: "b"}, got)

	got, err = repo.Put(ctx, model.HeroConfig{Heading: "x"})
	require.NoError(t, err)
	assert.Equal(t, model.HeroConfig{Heading: "x"}, got)
}

func TestAccountRepo(t *testing.T) {
	repo, err := NewAccountRepo([]model.Account{{ID: "1", Email: "a@b.c", Password: "pw", Role: model.RoleSystemAdmin}}, 4)
	require.NoError(t, err)

	acc, err := repo.GetByEmail(context.Background(), " a@b.c ")
	require.NoError(t, err)
	assert.NotEmpty(t, acc.PasswordHash)

	_, err = repo.GetByEmail(context.Background(), "A@B.C")
	assert.ErrorIs(t, err, ErrNotFound)
}
