package admins

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"course-market/internal/api"
	"course-market/internal/cache"
	"course-market/internal/database"
	"course-market/internal/service"
	"course-market/internal/store"
	"course-market/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createCourse               = store.CreateCourse
	updateCourse               = store.UpdateCourse
	listCourses                = store.ListCourses
	invalidatePublishedCourses = service.InvalidatePublishedCourses
)

func courseDetails(req api.CourseRequest) (service.CourseDetails, bool) {
	d := service.SanitizeCourseDetails(service.CourseDetails{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageLink:   req.ImageLink,
		Published:   req.Published,
	})
	return d, service.ValidCourseDetails(d)
}

// dropCatalogCache schedules the published-catalog invalidation off the
// request path. Falls through inline when the pool queue is full; the TTL
// covers a lost invalidation either way.
func dropCatalogCache(rdb cache.Cache, wp worker.Pool) {
	task := func() { _ = invalidatePublishedCourses(context.Background(), rdb) }
	if wp == nil || !wp.TrySubmit(task) {
		task()
	}
}

// @Summary     Create a course
// @Description Sanitizes and validates the course details and stores a new course
// @Tags        admins
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       title       formData string true "Course title (10-50 bytes)"
// @Param       description formData string true "Course description (50-500 bytes)"
// @Param       price       formData string true "Price, integer 0-100000"
// @Param       image_link  formData string true "Image URL"
// @Param       published   formData string true "true/false/0/1"
// @Success     201 {object} api.CourseResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/courses [post]
func CreateCourseHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		details, ok := courseDetails(req)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid course details"})
		}

		course := details.Course()
		if _, err := createCourse(c.Request().Context(), db, &course); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create course"})
		}
		dropCatalogCache(rdb, wp)

		return c.JSON(http.StatusCreated, api.NewCourseResponse(course))
	}
}

// @Summary     Update a course
// @Description Replaces every mutable field of an existing course
// @Tags        admins
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       course_id   path     int    true "Course ID"
// @Param       title       formData string true "Course title (10-50 bytes)"
// @Param       description formData string true "Course description (50-500 bytes)"
// @Param       price       formData string true "Price, integer 0-100000"
// @Param       image_link  formData string true "Image URL"
// @Param       published   formData string true "true/false/0/1"
// @Success     200 {object} api.CourseResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "course not found"
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/courses/{course_id} [put]
func UpdateCourseHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		courseID, err := strconv.Atoi(c.Param("course_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid course ID"})
		}

		var req api.CourseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		details, ok := courseDetails(req)
		if !ok {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid course details"})
		}

		course := details.Course()
		course.ID = courseID
		if err := updateCourse(c.Request().Context(), db, &course); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "course not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update course"})
		}
		dropCatalogCache(rdb, wp)

		return c.JSON(http.StatusOK, api.NewCourseResponse(course))
	}
}

// @Summary     List all courses
// @Description Returns every course, published or not
// @Tags        admins
// @Produce     json
// @Success     200 {object} api.CoursesResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/courses [get]
func ListCoursesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		courses, err := listCourses(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list courses"})
		}
		return c.JSON(http.StatusOK, api.NewCoursesResponse(courses))
	}
}
