package admins

import (
	"errors"
	"net/http"

	"course-market/internal/api"
	"course-market/internal/database"
	"course-market/internal/model"
	"course-market/internal/service"
	"course-market/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createAdmin  = store.CreateAdmin
)

// @Summary     Admin signup
// @Description Registers a new admin account
// @Tags        admins
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "Admin username (4-30 bytes, no spaces)"
// @Param       password formData string true "Admin password (strong-password policy)"
// @Success     201 {object} api.SignupResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "username already taken"
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/signup [post]
func SignupHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		if !service.IsValidUsername(req.Username) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid username"})
		}
		if !service.IsValidPassword(req.Password) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "password does not meet the policy"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		admin, err := createAdmin(c.Request().Context(), db, &model.Admin{
			Username:     req.Username,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username already taken"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create admin"})
		}

		return c.JSON(http.StatusCreated, api.SignupResponse{
			ID:        admin.ID,
			Username:  admin.Username,
			CreatedAt: admin.CreatedAt,
		})
	}
}
