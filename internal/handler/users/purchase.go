package users

import (
	"errors"
	"net/http"
	"strconv"

	"course-market/internal/api"
	"course-market/internal/database"
	"course-market/internal/middleware"
	"course-market/internal/service"
	"course-market/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getCourseByID        = store.GetCourseByID
	createPurchase       = store.CreatePurchase
	listPurchasedCourses = store.ListPurchasedCourses
)

// @Summary     Purchase a course
// @Description Records the purchase of a published course; repeating the purchase is a no-op success
// @Tags        users
// @Produce     json
// @Param       course_id path int true "Course ID"
// @Success     200 {object} api.PurchaseResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "course not found"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/courses/{course_id} [post]
func PurchaseCourseHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextClaimsKey).(*service.CustomClaims)

		courseID, err := strconv.Atoi(c.Param("course_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid course ID"})
		}

		ctx := c.Request().Context()

		// An unpublished course is indistinguishable from an absent one.
		course, err := getCourseByID(ctx, db, courseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "course not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load course"})
		}
		if !course.Published {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "course not found"})
		}

		created, err := createPurchase(ctx, db, claims.ID, course.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to record purchase"})
		}

		purchased, err := listPurchasedCourses(ctx, db, claims.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list purchases"})
		}

		return c.JSON(http.StatusOK, api.PurchaseResponse{
			AlreadyPurchased: !created,
			PurchasedCourses: api.NewCoursesResponse(purchased).Courses,
		})
	}
}

// @Summary     List purchased courses
// @Description Returns the courses in the caller's ledger; an empty ledger is a normal result
// @Tags        users
// @Produce     json
// @Success     200 {object} api.CoursesResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/purchases [get]
func ListPurchasedCoursesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextClaimsKey).(*service.CustomClaims)

		purchased, err := listPurchasedCourses(c.Request().Context(), db, claims.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list purchases"})
		}
		return c.JSON(http.StatusOK, api.NewCoursesResponse(purchased))
	}
}
