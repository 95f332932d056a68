package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventStatusOn(t *testing.T) {
	now := time.Date(2024, 11, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, StatusOngoing, EventStatusOn("2024-11-10", now))
	assert.Equal(t, StatusUpcoming, EventStatusOn("2024-11-11", now))
	assert.Equal(t, StatusPast, EventStatusOn("2024-11-09", now))

	// Status follows the UTC date, not the caller's zone.
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, StatusOngoing, EventStatusOn("2024-11-10", now.In(ist)))
	assert.Equal(t, "2024-11-10", Today(now.In(ist)))
}

func posts(published int, extraDrafts int) []BlogPost {
	var out []BlogPost
	for i := 0; i < published; i++ {
		out = append(out, BlogPost{ID: string(rune('a' + i)), IsPublished: true})
	}
	for i := 0; i < extraDrafts; i++ {
		out = append(out, BlogPost{ID: string(rune('p' + i))})
	}
	return out
}

func TestPublishAllowed(t *testing.T) {
	assert.True(t, PublishAllowed(posts(5, 1), ""))
	assert.False(t, PublishAllowed(posts(6, 1), ""))
	assert.False(t, PublishAllowed(posts(6, 1), "p"))
	// Re-saving one of the six live posts does not count itself.
	assert.True(t, PublishAllowed(posts(6, 0), "a"))
	assert.Equal(t, 6, PublishedCount(posts(6, 2), ""))
}

func TestBlogTags(t *testing.T) {
	p := BlogPost{Category: "Education", AdditionalCategories: []string{"STEM"}}
	assert.Equal(t, []string{"Education", "STEM"}, p.Tags())
	assert.True(t, p.MatchesAnyTag(nil))
	assert.True(t, p.MatchesAnyTag([]string{"Sports", "stem"}))
	assert.False(t, p.MatchesAnyTag([]string{"Sports"}))
	assert.Len(t, FilterBlogsByTags([]BlogPost{p, {Category: "Sports"}}, []string{"Sports"}), 1)
}

func TestFilterGallery(t *testing.T) {
	images := []GalleryImage{
		{ID: "1", Category: "Sports"},
		{ID: "2", Category: "Campus"},
		{ID: "3", Category: "Sports"},
	}
	assert.Len(t, FilterGallery(images, FilterAll), 3)
	assert.Len(t, FilterGallery(images, ""), 3)
	got := FilterGallery(images, "Sports")
	assert.Equal(t, []GalleryImage{images[0], images[2]}, got)
	assert.Empty(t, FilterGallery(images, "sports"))
	assert.True(t, IsGalleryCategory("Academics"))
	assert.False(t, IsGalleryCategory(FilterAll))
}

func TestMenuFor(t *testing.T) {
	ids := func(items []MenuItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}
	assert.Equal(t, []string{PageDashboard, PageEvents, PageAchievements, PageBlogs, PageGallery, PageAdmissions, PageStaff, PageHero}, ids(MenuFor(RoleSystemAdmin)))
	assert.Equal(t, []string{PageDashboard, PageEvents, PageAchievements, PageBlogs, PageGallery, PageHero}, ids(MenuFor(RoleContentEditor)))
	assert.Equal(t, []string{PageDashboard, PageAdmissions}, ids(MenuFor(RoleAdmissionsViewer)))
	assert.Empty(t, MenuFor("JANITOR"))

	assert.Equal(t, []Role{RoleSystemAdmin}, RolesFor(PageStaff))
	assert.Nil(t, RolesFor("reports"))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" content_editor ")
	assert.True(t, ok)
	assert.Equal(t, RoleContentEditor, r)
	_, ok = ParseRole("OWNER")
	assert.False(t, ok)
	assert.Equal(t, "Admissions Viewer", RoleAdmissionsViewer.Display())
}

func TestOptions(t *testing.T) {
	assert.Len(t, SearchOptions(BlogTagOptions, ""), len(BlogTagOptions))
	assert.Equal(t, []Option{{Label: "STEM & Tech", Value: "STEM"}}, SearchOptions(BlogCategoryOptions, "tech"))

	sel := ToggleValue(nil, "Award")
	assert.Equal(t, []string{"Award"}, sel)
	sel = ToggleValue(sel, "Alumni")
	assert.Equal(t, []string{"Award", "Alumni"}, sel)
	assert.Equal(t, []string{"Alumni"}, ToggleValue(sel, "Award"))
	assert.Equal(t, []string{"Award", "Alumni"}, sel)

	labels, more := DisplayValues([]string{"STEM", "Sports", "General"}, BlogCategoryOptions, 2)
	assert.Equal(t, []string{"STEM & Tech", "Athletics & Sports"}, labels)
	assert.Equal(t, "+1 more", more)

	labels, more = DisplayValues([]string{"Custom"}, BlogCategoryOptions, 2)
	assert.Equal(t, []string{"Custom"}, labels)
	assert.Empty(t, more)

	for name, set := range OptionSets {
		assert.NotEmpty(t, set, name)
	}
}

func TestGradeBucket(t *testing.T) {
	cases := map[string]string{
		"LKG":      GradeBucketPreschool,
		"ukg":      GradeBucketPreschool,
		"Grade 1":  GradeBucketPrimary,
		"Grade 5":  GradeBucketPrimary,
		"Grade 6":  GradeBucketMiddle,
		"Grade 10": GradeBucketMiddle,
		"Grade 11": "",
		"Nursery":  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, GradeBucket(in), in)
	}
	a := AdmissionSubmission{Grade: "Grade 7"}
	assert.True(t, a.MatchesGrade(FilterAll))
	assert.True(t, a.MatchesGrade(GradeBucketMiddle))
	assert.False(t, a.MatchesGrade(GradeBucketPrimary))
}

func TestSortStaffIsStable(t *testing.T) {
	in := []Staff{{ID: "a", Order: 2}, {ID: "b", Order: 1}, {ID: "c", Order: 2}}
	out := SortStaff(in)
	assert.Equal(t, []string{"b", "a", "c"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, "a", in[0].ID)
}

func TestHeroPatchApply(t *testing.T) {
	base := HeroConfig{Heading: "H", Subtext: "S", BackgroundImageURL: "B"}
	heading := "New"
	got := HeroPatch{Heading: &heading}.Apply(base)
	assert.Equal(t, HeroConfig{Heading: "New", Subtext: "S", BackgroundImageURL: "B"}, got)
	assert.Equal(t, base, HeroPatch{}.Apply(base))
}
