// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/handler"
	"github.com/iliyamo/school-admin/internal/metrics"
	"github.com/iliyamo/school-admin/internal/middleware"
)

// RegisterRoutes registers the unauthenticated operational endpoints.
func RegisterRoutes(e *echo.Echo, m *metrics.Metrics) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", m.Handler())
}

// RegisterAuth registers the login routes under /v1/auth and the
// per-session routes under /v1.  limit guards the login endpoint; pass nil
// to disable it.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	if limit != nil {
		g.POST("/login", a.Login, limit)
	} else {
		g.POST("/login", a.Login)
	}
	g.GET("/demo-accounts", a.DemoAccounts)
	// Logout does not need a token: sessions are stateless.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the read-only website feed.  mw typically holds
// the rate limiter and the response cache.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/public", mw...)
	g.GET("/events", p.GetPublicEvents)
	g.GET("/achievements", p.GetPublicAchievements)
	g.GET("/blogs", p.GetPublicBlogs)
	g.GET("/blogs/:slug", p.GetPublicBlog)
	g.GET("/gallery", p.GetPublicGallery)
	g.GET("/staff", p.GetPublicStaff)
	g.GET("/hero", p.GetPublicHero)
}
