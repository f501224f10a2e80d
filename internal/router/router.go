// File: internal/router/router.go
package router

import (
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/labstack/echo/v4"

	"course-market/internal/cache"
	"course-market/internal/database"
	"course-market/internal/handler"
	"course-market/internal/handler/admins"
	"course-market/internal/handler/users"
	"course-market/internal/middleware"
	"course-market/internal/worker"
)

// loginRateLimit caps credential attempts per client IP.
const loginRateLimit = rate.Limit(5)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db))

	loginLimiter := echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(loginRateLimit))

	// Admin credential endpoints
	api.POST("/admin/signup", admins.SignupHandler(db))
	api.POST("/admin/login", admins.LoginHandler(db, rdb), loginLimiter)
	api.POST("/admin/auth/refresh", admins.RefreshHandler(rdb))

	// Admin course management
	apiAdminCourses := api.Group("/admin/courses", middleware.RequireAdmin)
	apiAdminCourses.POST("", admins.CreateCourseHandler(db, rdb, wp))
	apiAdminCourses.PUT("/:course_id", admins.UpdateCourseHandler(db, rdb, wp))
	apiAdminCourses.GET("", admins.ListCoursesHandler(db))

	// User credential endpoints
	api.POST("/users/signup", users.SignupHandler(db))
	api.POST("/users/login", users.LoginHandler(db, rdb), loginLimiter)
	api.POST("/users/auth/refresh", users.RefreshHandler(rdb))

	// User catalog and purchases
	api.GET("/users/courses", users.ListCoursesHandler(db, rdb), middleware.RequireUser)
	api.POST("/users/courses/:course_id", users.PurchaseCourseHandler(db), middleware.RequireUser)
	api.GET("/users/purchases", users.ListPurchasedCoursesHandler(db), middleware.RequireUser)
}
