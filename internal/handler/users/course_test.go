package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"course-market/internal/cache"
	"course-market/internal/database"
	"course-market/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newGetCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestListCoursesHandler(t *testing.T) {
	t.Cleanup(restore)
	e := echo.New()

	// cache hit never touches the database
	cachedPublishedCourses = func(context.Context, cache.Cache) ([]model.Course, bool, error) {
		return []model.Course{{ID: 1, Title: "cached course", Published: true}}, true, nil
	}
	listPublishedCourses = func(context.Context, database.DB) ([]model.Course, error) {
		t.Fatal("database hit on a cache hit")
		return nil, nil
	}
	ctx, rec := newGetCtx(e)
	require.NoError(t, ListCoursesHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "cached course")

	// cache miss reads the database and refills
	cachedPublishedCourses = func(context.Context, cache.Cache) ([]model.Course, bool, error) {
		return nil, false, nil
	}
	refilled := false
	cachePublishedCourses = func(ctx context.Context, c cache.Cache, courses []model.Course) error {
		refilled = true
		return nil
	}
	listPublishedCourses = func(context.Context, database.DB) ([]model.Course, error) {
		return []model.Course{{ID: 2, Title: "fresh course", Published: true}}, nil
	}
	ctx, rec = newGetCtx(e)
	require.NoError(t, ListCoursesHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "fresh course")
	require.True(t, refilled)

	// cache error degrades to a direct read
	cachedPublishedCourses = func(context.Context, cache.Cache) ([]model.Course, bool, error) {
		return nil, false, errors.New("redis down")
	}
	ctx, rec = newGetCtx(e)
	require.NoError(t, ListCoursesHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "fresh course")

	// a failed refill is not surfaced
	cachePublishedCourses = func(context.Context, cache.Cache, []model.Course) error { return errors.New("redis") }
	ctx, rec = newGetCtx(e)
	require.NoError(t, ListCoursesHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	// database failure
	listPublishedCourses = func(context.Context, database.DB) ([]model.Course, error) { return nil, errors.New("db") }
	ctx, rec = newGetCtx(e)
	require.NoError(t, ListCoursesHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
