package model

// HeroConfig is the landing-page banner.  There is exactly one.
type HeroConfig struct {
	Heading            string `json:"heading"`
	Subtext            string `json:"subtext"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
}

// HeroPatch carries a partial banner update; nil fields are left untouched.
type HeroPatch struct {
	Heading            *string `json:"heading"`
	Subtext            *string `json:"subtext"`
	BackgroundImageURL *string `json:"backgroundImageUrl"`
}

// Apply merges the set fields of p into h and returns the result.
func (p HeroPatch) Apply(h HeroConfig) HeroConfig {
	if p.Heading != nil {
		h.Heading = *p.Heading
	}
	if p.Subtext != nil {
		h.Subtext = *p.Subtext
	}
	if p.BackgroundImageURL != nil {
		h.BackgroundImageURL = *p.BackgroundImageURL
	}
	return h
}
