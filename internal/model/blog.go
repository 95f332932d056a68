package model

import "strings"

// PublishLimit is the maximum number of blog posts that may be published at
// the same time.
const PublishLimit = 6

// PublishLimitMessage is returned to the editor when a save would exceed
// PublishLimit.
const PublishLimitMessage = "Institutional Limit: Maximum of 6 active publications allowed."

// BlogPost is an article written in the rich text editor.  Content holds
// the editor's HTML; Paragraphs is the plain-text projection derived from it
// on every save.
type BlogPost struct {
	ID                   string   `json:"id"`
	Slug                 string   `json:"slug"`
	Title                string   `json:"title"`
	Excerpt              string   `json:"excerpt"`
	PublishDate          string   `json:"publishDate"`
	AuthorName           string   `json:"authorName"`
	AuthorRole           string   `json:"authorRole"`
	AuthorImageURL       string   `json:"authorImageUrl,omitempty"`
	Category             string   `json:"category"`
	AdditionalCategories []string `json:"additionalCategories"`
	ReadTime             string   `json:"readTime"`
	CoverImageURL        string   `json:"coverImageUrl"`
	Content              string   `json:"content"`
	Paragraphs           []string `json:"paragraphs"`
	IsPublished          bool     `json:"isPublished"`
}

// PublishedCount counts published posts, skipping the post with id exclude
// (pass "" to count all of them).
func PublishedCount(posts []BlogPost, exclude string) int {
	n := 0
	for _, p := range posts {
		if p.IsPublished && (exclude == "" || p.ID != exclude) {
			n++
		}
	}
	return n
}

// PublishAllowed reports whether the post with id editingID (empty for a new
// post) may be saved as published given the current list.
func PublishAllowed(posts []BlogPost, editingID string) bool {
	return PublishedCount(posts, editingID) < PublishLimit
}

// Tags returns the primary category followed by the additional ones.
func (p BlogPost) Tags() []string {
	out := make([]string, 0, 1+len(p.AdditionalCategories))
	if p.Category != "" {
		out = append(out, p.Category)
	}
	return append(out, p.AdditionalCategories...)
}

// MatchesAnyTag reports whether the post carries at least one of the
// selected values.  An empty selection matches every post.
func (p BlogPost) MatchesAnyTag(selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, t := range p.Tags() {
		for _, s := range selected {
			if strings.EqualFold(t, s) {
				return true
			}
		}
	}
	return false
}

// FilterBlogsByTags keeps posts matching the multi-select tag filter.
func FilterBlogsByTags(posts []BlogPost, selected []string) []BlogPost {
	out := make([]BlogPost, 0, len(posts))
	for _, p := range posts {
		if p.MatchesAnyTag(selected) {
			out = append(out, p)
		}
	}
	return out
}
