package router

import (
	"net/http"
	"testing"

	"course-market/internal/cache"
	"course-market/internal/database"
	"course-market/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	wp := worker.NewPool(1, 1)
	defer wp.Stop()
	Setup(e, &database.FakeDB{}, &cache.FakeCache{}, wp)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/admin/signup",
		http.MethodPost + " /api/admin/login",
		http.MethodPost + " /api/admin/auth/refresh",
		http.MethodPost + " /api/admin/courses",
		http.MethodPut + " /api/admin/courses/:course_id",
		http.MethodGet + " /api/admin/courses",
		http.MethodPost + " /api/users/signup",
		http.MethodPost + " /api/users/login",
		http.MethodPost + " /api/users/auth/refresh",
		http.MethodGet + " /api/users/courses",
		http.MethodPost + " /api/users/courses/:course_id",
		http.MethodGet + " /api/users/purchases",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}
