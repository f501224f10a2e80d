// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"course-market/internal/api"
	"course-market/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check response model.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports service health.
// @Summary     Health check
// @Description Returns pong after verifying the database connection
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
