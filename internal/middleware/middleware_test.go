package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/school-admin/internal/config"
	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/utils"
)

const testSecret = "test-secret"

func okHandler(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func bearer(t *testing.T, role model.Role) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, "1", string(role), 5)
	require.NoError(t, err)
	return "Bearer " + tok.Token
}

func serve(e *echo.Echo, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/staff", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	e.GET("/v1/staff", func(c echo.Context) error {
		role, ok := CurrentRole(c)
		require.True(t, ok)
		return c.String(http.StatusOK, CurrentUserID(c)+":"+string(role))
	}, JWTAuth(testSecret))

	rec := serve(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"missing bearer token"}`, rec.Body.String())

	rec = serve(e, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, bearer(t, "JANITOR"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, bearer(t, model.RoleContentEditor))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1:CONTENT_EDITOR", rec.Body.String())
}

func TestRequireMenu(t *testing.T) {
	e := echo.New()
	e.GET("/v1/staff", okHandler, JWTAuth(testSecret), RequireMenu(model.PageStaff))

	for _, tc := range []struct {
		role model.Role
		want int
	}{
		{model.RoleSystemAdmin, http.StatusOK},
		{model.RoleContentEditor, http.StatusForbidden},
		{model.RoleAdmissionsViewer, http.StatusForbidden},
	} {
		rec := serve(e, bearer(t, tc.role))
		assert.Equal(t, tc.want, rec.Code, tc.role)
	}
}

func TestRequireMenuUnknownPage(t *testing.T) {
	e := echo.New()
	e.GET("/v1/staff", okHandler, JWTAuth(testSecret), RequireMenu("settings"))
	rec := serve(e, bearer(t, model.RoleSystemAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := RequireRole(model.RoleSystemAdmin)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, c.Response().Status)
}

func TestRedisMiddlewaresPassThroughWithoutClient(t *testing.T) {
	e := echo.New()
	e.POST("/x", okHandler,
		NewRedisCache(config.CacheConfig{Enabled: true, Methods: map[string]bool{"POST": true}}, nil),
		InvalidateOnWrite(config.CacheConfig{Enabled: true}, nil),
		NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil),
	)
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte(`{"a":1}`))
	require.NoError(t, err)

	status, got, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, `{"a":1}`, string(body))

	_, _, _, ok = decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
}

func TestCacheKeyChangesWithGeneration(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/public/blogs?x=1", nil), httptest.NewRecorder())
	c.SetPath("/public/blogs")
	cfg := config.CacheConfig{Prefix: "cache"}

	k0 := cacheKeyFrom(cfg, "0", c)
	assert.Equal(t, k0, cacheKeyFrom(cfg, "0", c))
	assert.NotEqual(t, k0, cacheKeyFrom(cfg, "1", c))
	assert.Contains(t, k0, "cache:")
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.1")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/auth/login")

	assert.Equal(t, "rl:ip:10.0.0.1:route:POST /v1/auth/login", buildRateKey(config.RateLimitConfig{Prefix: "rl"}, c))
	assert.Equal(t, "rl:ip:10.0.0.1", buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, c))
	assert.Equal(t, "rl:user:anon:route:POST /v1/auth/login", buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}, c))
}
