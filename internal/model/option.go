package model

import (
	"fmt"
	"strings"
)

// Option is a label/value pair offered by a dropdown.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Option sets served by the options endpoint.
var (
	BlogCategoryOptions = []Option{
		{Label: "General News", Value: "General"},
		{Label: "Academic Excellence", Value: "Education"},
		{Label: "STEM & Tech", Value: "STEM"},
		{Label: "Campus Happenings", Value: "Campus Life"},
		{Label: "Athletics & Sports", Value: "Sports"},
		{Label: "Faculty Insights", Value: "Staff Focus"},
	}
	BlogTagOptions = []Option{
		{Label: "Workshop", Value: "Workshop"},
		{Label: "Webinar", Value: "Webinar"},
		{Label: "Exhibition", Value: "Exhibition"},
		{Label: "Award", Value: "Award"},
		{Label: "Conference", Value: "Conference"},
		{Label: "Alumni", Value: "Alumni"},
		{Label: "Competition", Value: "Competition"},
	}
	AchievementCategoryOptions = []Option{
		{Label: "Academic Excellence", Value: string(CategoryAcademic)},
		{Label: "Sports & Athletics", Value: string(CategorySports)},
	}
	GradeOptions = []Option{
		{Label: "All Grades", Value: FilterAll},
		{Label: "LKG / UKG", Value: GradeBucketPreschool},
		{Label: "Grade 1-5", Value: GradeBucketPrimary},
		{Label: "Grade 6-10", Value: GradeBucketMiddle},
	}
)

// OptionSets maps the public set names to their options.
var OptionSets = map[string][]Option{
	"blog-categories":        BlogCategoryOptions,
	"blog-tags":              BlogTagOptions,
	"achievement-categories": AchievementCategoryOptions,
	"gallery-categories":     galleryOptions(),
	"grades":                 GradeOptions,
}

func galleryOptions() []Option {
	out := make([]Option, 0, len(GalleryCategories))
	for _, c := range GalleryCategories {
		out = append(out, Option{Label: c, Value: c})
	}
	return out
}

// SearchOptions keeps options whose label or value contains q, ignoring
// case.  An empty query returns all options.
func SearchOptions(opts []Option, q string) []Option {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if q == "" || strings.Contains(strings.ToLower(o.Label), q) || strings.Contains(strings.ToLower(o.Value), q) {
			out = append(out, o)
		}
	}
	return out
}

// ToggleValue implements multi-select: v is removed when already selected
// and appended otherwise.  The input slice is not modified.
func ToggleValue(selected []string, v string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == v {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

// HasValue reports whether opts offers v.
func HasValue(opts []Option, v string) bool {
	for _, o := range opts {
		if o.Value == v {
			return true
		}
	}
	return false
}

// DisplayValues renders a multi-select summary: the labels of the first limit
// selected values (falling back to the raw value for unknown ones) and, when
// more are selected, a "+N more" marker.
func DisplayValues(selected []string, opts []Option, limit int) (labels []string, more string) {
	if limit < 0 {
		limit = 0
	}
	visible := selected
	if len(visible) > limit {
		visible = visible[:limit]
	}
	labels = make([]string, 0, len(visible))
	for _, v := range visible {
		label := v
		for _, o := range opts {
			if o.Value == v {
				label = o.Label
				break
			}
		}
		labels = append(labels, label)
	}
	if rest := len(selected) - len(visible); rest > 0 {
		more = fmt.Sprintf("+%d more", rest)
	}
	return labels, more
}
