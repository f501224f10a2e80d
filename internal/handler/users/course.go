package users

import (
	"net/http"

	"course-market/internal/api"
	"course-market/internal/cache"
	"course-market/internal/database"
	"course-market/internal/service"
	"course-market/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listPublishedCourses   = store.ListPublishedCourses
	cachedPublishedCourses = service.CachedPublishedCourses
	cachePublishedCourses  = service.CachePublishedCourses
)

// @Summary     List published courses
// @Description Returns the courses visible to users; unpublished courses are never included
// @Tags        users
// @Produce     json
// @Success     200 {object} api.CoursesResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/courses [get]
func ListCoursesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		// Cache problems degrade to a direct read, never to a failure.
		if courses, ok, err := cachedPublishedCourses(ctx, rdb); err == nil && ok {
			return c.JSON(http.StatusOK, api.NewCoursesResponse(courses))
		}

		courses, err := listPublishedCourses(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list courses"})
		}
		_ = cachePublishedCourses(ctx, rdb, courses)

		return c.JSON(http.StatusOK, api.NewCoursesResponse(courses))
	}
}
