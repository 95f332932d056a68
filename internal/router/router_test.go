package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/school-admin/internal/config"
	"github.com/iliyamo/school-admin/internal/handler"
	"github.com/iliyamo/school-admin/internal/metrics"
	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/seed"
	"github.com/iliyamo/school-admin/internal/service"
	"github.com/iliyamo/school-admin/internal/utils"
	"github.com/iliyamo/school-admin/internal/validation"
)

const testSecret = "router-secret"

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	cfg := config.Config{JWTSecret: testSecret, AccessTTLMin: 5}
	accounts, err := repository.NewAccountRepo(seed.Accounts(), 4)
	require.NoError(t, err)

	events := repository.NewEventRepo(seed.Events())
	achievements := repository.NewAchievementRepo(seed.Achievements())
	blogs := repository.NewBlogRepo(seed.Blogs())
	gallery := repository.NewGalleryRepo(seed.Gallery())
	staff := repository.NewStaffRepo(seed.Staff())
	hero := repository.NewHeroRepo(seed.Hero())
	m := metrics.New()

	e := echo.New()
	e.Validator = validation.EchoValidator{}
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(m.Middleware())

	RegisterRoutes(e, m)
	RegisterAuth(e, handler.NewAuthHandler(cfg, accounts), testSecret, nil)
	RegisterPublic(e, &handler.PublicHandler{
		Events: events, Achievements: achievements, Blogs: blogs,
		Gallery: gallery, Staff: staff, Hero: hero,
	})
	RegisterAdmin(e,
		handler.NewAdminHandler(events, achievements, blogs, gallery,
			repository.NewAdmissionRepo(seed.Admissions()), staff, hero,
			service.NewChanges(nil, m)),
		handler.NewShellHandler(cfg),
		testSecret,
		nil,
	)
	return e
}

func token(t *testing.T, role model.Role) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, "1", string(role), 5)
	require.NoError(t, err)
	return tok.Token
}

func request(e *echo.Echo, method, path, tok, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if tok != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestOperationalRoutes(t *testing.T) {
	e := newServer(t)
	rec := request(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = request(e, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

// Every page must be reachable by exactly the roles its menu entry lists.
func TestPageGatesFollowMenu(t *testing.T) {
	e := newServer(t)
	paths := map[string]string{
		model.PageDashboard:    "/v1/dashboard",
		model.PageEvents:       "/v1/events",
		model.PageAchievements: "/v1/achievements",
		model.PageBlogs:        "/v1/blogs",
		model.PageGallery:      "/v1/gallery",
		model.PageAdmissions:   "/v1/admissions",
		model.PageStaff:        "/v1/staff",
		model.PageHero:         "/v1/hero",
	}
	for _, role := range model.Roles {
		tok := token(t, role)
		for _, item := range model.MenuItems {
			rec := request(e, http.MethodGet, paths[item.ID], tok, "")
			if item.Allows(role) {
				assert.Equal(t, http.StatusOK, rec.Code, "%s %s", role, item.ID)
			} else {
				assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", role, item.ID)
			}
		}
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	e := newServer(t)
	rec := request(e, http.MethodGet, "/v1/events", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = request(e, http.MethodGet, "/v1/events", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginThenUseToken(t *testing.T) {
	e := newServer(t)
	rec := request(e, http.MethodPost, "/v1/auth/login", "", `{"email":"admissions@schooldemo.com","password":"Admissions@123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"roleDisplay":"Admissions Viewer"`)

	tok := token(t, model.RoleAdmissionsViewer)
	rec = request(e, http.MethodGet, "/v1/me", tok, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(e, http.MethodGet, "/v1/admissions/export.csv", tok, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "id,studentName"))

	rec = request(e, http.MethodGet, "/v1/admissions/1", tok, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(e, http.MethodPost, "/v1/blogs", tok, `{}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSharedShellRoutes(t *testing.T) {
	e := newServer(t)
	viewer := token(t, model.RoleAdmissionsViewer)

	rec := request(e, http.MethodGet, "/v1/options/grades", viewer, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = request(e, http.MethodGet, "/v1/menu", viewer, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(e, http.MethodGet, "/v1/system", viewer, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = request(e, http.MethodGet, "/v1/system", token(t, model.RoleSystemAdmin), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewDraftRouteBeatsID(t *testing.T) {
	e := newServer(t)
	rec := request(e, http.MethodGet, "/v1/staff/new", token(t, model.RoleSystemAdmin), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order":1`)
}

func TestPublicFeedSeesAdminWrites(t *testing.T) {
	e := newServer(t)
	admin := token(t, model.RoleSystemAdmin)

	rec := request(e, http.MethodPost, "/v1/staff", admin, `{"name":"C. Das","role":"Counsellor"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = request(e, http.MethodGet, "/public/staff", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "C. Das")

	rec = request(e, http.MethodGet, "/public/gallery?category=Campus", "", "")
	assert.Contains(t, rec.Body.String(), `"total":3`)

	rec = request(e, http.MethodGet, "/public/hero", "", "")
	assert.Contains(t, rec.Body.String(), "Academic Excellence Starts Here")
}

func TestMetricsRecordErrorStatuses(t *testing.T) {
	e := newServer(t)
	editor := token(t, model.RoleContentEditor)

	rec := request(e, http.MethodGet, "/v1/events/does-not-exist", editor, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"event not found"}`, rec.Body.String())

	rec = request(e, http.MethodPost, "/v1/events", editor, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Title is required"`)

	rec = request(e, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `school_admin_http_requests_total{method="GET",route="/v1/events/:id",status="404"} 1`)
	assert.Contains(t, body, `school_admin_http_requests_total{method="POST",route="/v1/events",status="400"} 1`)
	assert.NotContains(t, body, `route="/v1/events/:id",status="200"`)
}
