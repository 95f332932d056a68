package model

// AchievementCategory groups student achievements.
type AchievementCategory string

const (
	CategoryAcademic AchievementCategory = "Academic"
	CategorySports   AchievementCategory = "Sports"
)

// Achievement is a student accomplishment shown on the website.  Inactive
// achievements stay in the admin list but are hidden from the public feed.
type Achievement struct {
	ID              string              `json:"id"`
	PhotoURL        string              `json:"photoUrl,omitempty"`
	StudentName     string              `json:"studentName"`
	ClassSection    string              `json:"classSection"`
	Category        AchievementCategory `json:"category"`
	Title           string              `json:"title"`
	CompetitionName string              `json:"competitionName"`
	Year            string              `json:"year"`
	Rank            string              `json:"rank"`
	Description     string              `json:"description"`
	IsFeatured      bool                `json:"isFeatured"`
	IsActive        bool                `json:"isActive"`
}
