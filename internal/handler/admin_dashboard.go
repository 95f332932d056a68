package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/middleware"
	"github.com/iliyamo/school-admin/internal/model"
)

// dashboardFeedSize caps the recent lists on the dashboard.
const dashboardFeedSize = 5

type dashboardStats struct {
	Events         int `json:"events"`
	Achievements   int `json:"achievements"`
	PublishedBlogs int `json:"publishedBlogs"`
	Gallery        int `json:"gallery"`
	Admissions     int `json:"admissions"`
}

type dashboardResp struct {
	Stats              dashboardStats              `json:"stats"`
	RecentEvents       []model.Event               `json:"recentEvents"`
	LatestAchievements []model.Achievement         `json:"latestAchievements"`
	Admissions         []model.AdmissionSubmission `json:"admissions,omitempty"`
}

func head[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// Dashboard summarises every collection.  The admissions feed is only
// included for system admins.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	events, err := h.Events.List(ctx)
	if err != nil {
		return err
	}
	achievements, err := h.Achievements.List(ctx)
	if err != nil {
		return err
	}
	published, err := h.Blogs.PublishedCount(ctx)
	if err != nil {
		return err
	}

	resp := dashboardResp{
		Stats: dashboardStats{
			Events:         len(events),
			Achievements:   len(achievements),
			PublishedBlogs: published,
			Gallery:        h.Gallery.Count(),
			Admissions:     h.Admissions.Count(),
		},
		RecentEvents:       head(events, dashboardFeedSize),
		LatestAchievements: head(achievements, dashboardFeedSize),
	}
	if role, _ := middleware.CurrentRole(c); role == model.RoleSystemAdmin {
		list, err := h.Admissions.List(ctx)
		if err != nil {
			return err
		}
		resp.Admissions = head(list, dashboardFeedSize)
	}
	return c.JSON(http.StatusOK, resp)
}
