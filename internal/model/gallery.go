package model

// FilterAll is the pseudo-category that disables filtering.
const FilterAll = "All"

// GalleryCategories are the fixed gallery buckets, in display order.  The
// first one is the default for new images.
var GalleryCategories = []string{"Academics", "Sports", "Events", "Campus"}

// GalleryImage is a single picture in the website gallery.
type GalleryImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// FilterGallery returns the images whose category equals category exactly.
// "All" and the empty string return every image.
func FilterGallery(images []GalleryImage, category string) []GalleryImage {
	if category == "" || category == FilterAll {
		out := make([]GalleryImage, len(images))
		copy(out, images)
		return out
	}
	out := make([]GalleryImage, 0, len(images))
	for _, img := range images {
		if img.Category == category {
			out = append(out, img)
		}
	}
	return out
}

// IsGalleryCategory reports whether c is one of GalleryCategories.
func IsGalleryCategory(c string) bool {
	for _, g := range GalleryCategories {
		if g == c {
			return true
		}
	}
	return false
}
