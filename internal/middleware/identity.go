package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
)

// CurrentUserID returns the account id stored by JWTAuth, or "" for
// anonymous requests.
func CurrentUserID(c echo.Context) string {
	if s, ok := c.Get(ContextUserID).(string); ok {
		return s
	}
	return ""
}

// CurrentRole returns the role stored by JWTAuth.
func CurrentRole(c echo.Context) (model.Role, bool) {
	r, ok := c.Get(ContextRole).(model.Role)
	return r, ok && r.Valid()
}

// clientKey identifies the caller for rate limiting: the account id when
// signed in, "anon" otherwise.
func clientKey(c echo.Context) string {
	if id := CurrentUserID(c); id != "" {
		return id
	}
	return "anon"
}
