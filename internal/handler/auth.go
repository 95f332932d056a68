package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/config"
	"github.com/iliyamo/school-admin/internal/middleware"
	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/repository"
	"github.com/iliyamo/school-admin/internal/utils"
)

// LoginFailedMessage is returned for any email/password mismatch.
const LoginFailedMessage = "Invalid email or password. Please use the demo accounts below."

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
}

func NewAuthHandler(cfg config.Config, accounts *repository.AccountRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResp struct {
	User        userPart          `json:"user"`
	Role        model.Role        `json:"role"`
	RoleDisplay string            `json:"roleDisplay"`
	Access      utils.AccessToken `json:"access"`
	Menu        []model.MenuItem  `json:"menu"`
}

type demoAccount struct {
	Role        model.Role `json:"role"`
	RoleDisplay string     `json:"roleDisplay"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Description string     `json:"description"`
}

// Login matches the credentials against the demo accounts and issues a
// session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email/password required")
	}

	acc, err := h.Accounts.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if _, ok := err.(*repository.NotFoundError); ok {
			return echo.NewHTTPError(http.StatusUnauthorized, LoginFailedMessage)
		}
		return err
	}
	if !utils.VerifyPassword(acc.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, LoginFailedMessage)
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, acc.ID, string(acc.Role), h.Cfg.AccessTTLMin)
	if err != nil {
		return err
	}
	c.Logger().Infof("login ok user_id=%s role=%s", acc.ID, acc.Role)

	return c.JSON(http.StatusOK, loginResp{
		User:        userPart{ID: acc.ID, Name: acc.Name, Email: acc.Email},
		Role:        acc.Role,
		RoleDisplay: acc.Role.Display(),
		Access:      access,
		Menu:        model.MenuFor(acc.Role),
	})
}

// DemoAccounts lists the autofill cards shown under the login form.
func (h *AuthHandler) DemoAccounts(c echo.Context) error {
	list := h.Accounts.List()
	out := make([]demoAccount, 0, len(list))
	for _, a := range list {
		out = append(out, demoAccount{
			Role:        a.Role,
			RoleDisplay: a.Role.Display(),
			Email:       a.Email,
			Password:    a.Password,
			Description: a.Description,
		})
	}
	return c.JSON(http.StatusOK, items(out))
}

// Logout is stateless: tokens are not tracked, so the client just drops
// its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Me describes the signed-in account.
func (h *AuthHandler) Me(c echo.Context) error {
	role, _ := middleware.CurrentRole(c)
	acc, err := h.Accounts.GetByID(c.Request().Context(), middleware.CurrentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown session")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":        userPart{ID: acc.ID, Name: acc.Name, Email: acc.Email},
		"role":        role,
		"roleDisplay": role.Display(),
		"menu":        model.MenuFor(role),
	})
}
