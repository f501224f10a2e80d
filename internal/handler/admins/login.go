package admins

import (
	"net/http"
	"time"

	"course-market/internal/api"
	"course-market/internal/cache"
	"course-market/internal/database"
	"course-market/internal/service"
	"course-market/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	getAdminByUsername   = store.GetAdminByUsername
	comparePassword      = service.ComparePassword
	issueAccessToken     = service.IssueAccessToken
	issueRefreshToken    = service.IssueRefreshToken
	validateRefreshToken = service.ValidateRefreshToken
	revokeRefreshToken   = service.RevokeRefreshToken
)

// @Summary     Admin login
// @Description Verifies admin credentials and issues access and refresh tokens
// @Tags        admins
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Admin username"
// @Param       password formData string true "Admin password"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "invalid credentials"
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Unknown username and wrong password are indistinguishable on the
		// outside.
		admin, err := getAdminByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := comparePassword(admin.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(admin.ID, service.RoleAdmin, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(c.Request().Context(), rdb, admin.ID, service.RoleAdmin, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken:  token,
			TokenType:    "Bearer",
			ExpiresIn:    int(accessTokenTTL.Seconds()),
			RefreshToken: refreshToken,
		})
	}
}

// @Summary     Admin token refresh
// @Description Exchanges a refresh token for a new token pair; the old refresh token is rotated out
// @Tags        admins
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       refresh_token formData string true "Refresh token"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "invalid refresh token"
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/auth/refresh [post]
func RefreshHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RefreshRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		data, err := validateRefreshToken(ctx, rdb, service.RoleAdmin, req.RefreshToken)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid refresh token"})
		}
		if err := revokeRefreshToken(ctx, rdb, service.RoleAdmin, req.RefreshToken); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to rotate refresh token"})
		}

		token, err := issueAccessToken(data.ID, service.RoleAdmin, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		refreshToken, err := issueRefreshToken(ctx, rdb, data.ID, service.RoleAdmin, refreshTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue refresh token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken:  token,
			TokenType:    "Bearer",
			ExpiresIn:    int(accessTokenTTL.Seconds()),
			RefreshToken: refreshToken,
		})
	}
}
