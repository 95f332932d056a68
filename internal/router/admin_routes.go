package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/handler"
	"github.com/iliyamo/school-admin/internal/middleware"
	"github.com/iliyamo/school-admin/internal/model"
)

// RegisterAdmin registers the panel pages under /v1.  Every page group is
// gated by its menu entry so the menu and the routes never disagree.
// invalidate runs after successful writes to expire the public cache; pass
// nil to skip it.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, s *handler.ShellHandler, jwtSecret string, invalidate echo.MiddlewareFunc) {
	mw := []echo.MiddlewareFunc{middleware.JWTAuth(jwtSecret)}
	if invalidate != nil {
		mw = append(mw, invalidate)
	}
	g := e.Group("/v1", mw...)

	// ---- Shell ----
	g.GET("/menu", s.Menu)
	g.GET("/options/:set", s.Options)
	g.GET("/system", s.System, middleware.RequireRole(model.RoleSystemAdmin))

	g.GET("/dashboard", h.Dashboard, middleware.RequireMenu(model.PageDashboard))

	// ---- Events ----
	ev := g.Group("/events", middleware.RequireMenu(model.PageEvents))
	ev.GET("", h.ListEvents)
	ev.GET("/new", h.NewEvent)
	ev.GET("/:id", h.GetEvent)
	ev.POST("", h.CreateEvent)
	ev.PUT("/:id", h.UpdateEvent)
	ev.PATCH("/:id", h.UpdateEvent)
	ev.DELETE("/:id", h.DeleteEvent)

	// ---- Achievements ----
	ac := g.Group("/achievements", middleware.RequireMenu(model.PageAchievements))
	ac.GET("", h.ListAchievements)
	ac.GET("/new", h.NewAchievement)
	ac.GET("/:id", h.GetAchievement)
	ac.POST("", h.CreateAchievement)
	ac.PUT("/:id", h.UpdateAchievement)
	ac.PATCH("/:id", h.UpdateAchievement)
	ac.PATCH("/:id/featured", h.ToggleAchievementFeatured)
	ac.PATCH("/:id/active", h.ToggleAchievementActive)
	ac.DELETE("/:id", h.DeleteAchievement)

	// ---- Blogs ----
	bl := g.Group("/blogs", middleware.RequireMenu(model.PageBlogs))
	bl.GET("", h.ListBlogs)
	bl.GET("/new", h.NewBlog)
	bl.GET("/:id", h.GetBlog)
	bl.POST("", h.CreateBlog)
	bl.POST("/preview", h.PreviewBlog)
	bl.PUT("/:id", h.UpdateBlog)
	bl.PATCH("/:id", h.UpdateBlog)
	bl.PATCH("/:id/publish", h.ToggleBlogPublish)
	bl.DELETE("/:id", h.DeleteBlog)

	// ---- Gallery ----
	ga := g.Group("/gallery", middleware.RequireMenu(model.PageGallery))
	ga.GET("", h.ListGallery)
	ga.GET("/new", h.NewImage)
	ga.GET("/:id", h.GetImage)
	ga.POST("", h.CreateImage)
	ga.PUT("/:id", h.UpdateImage)
	ga.PATCH("/:id", h.UpdateImage)
	ga.DELETE("/:id", h.DeleteImage)

	// ---- Admissions (read-only) ----
	ad := g.Group("/admissions", middleware.RequireMenu(model.PageAdmissions))
	ad.GET("", h.ListAdmissions)
	ad.GET("/export.csv", h.ExportAdmissions)
	ad.GET("/:id", h.GetAdmission)

	// ---- Staff ----
	st := g.Group("/staff", middleware.RequireMenu(model.PageStaff))
	st.GET("", h.ListStaff)
	st.GET("/new", h.NewStaff)
	st.GET("/:id", h.GetStaff)
	st.POST("", h.CreateStaff)
	st.PUT("/:id", h.UpdateStaff)
	st.PATCH("/:id", h.UpdateStaff)
	st.PATCH("/:id/active", h.ToggleStaffActive)
	st.DELETE("/:id", h.DeleteStaff)

	// ---- Hero ----
	he := g.Group("/hero", middleware.RequireMenu(model.PageHero))
	he.GET("", h.GetHero)
	he.PUT("", h.PutHero)
	he.PATCH("", h.PatchHero)
}
