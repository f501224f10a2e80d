// File: internal/service/catalog.go
package service

import (
	"context"
	"time"

	"course-market/internal/cache"
	"course-market/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	publishedCoursesKey = "courses:published"
	// PublishedCoursesTTL bounds staleness if an invalidation is ever lost.
	PublishedCoursesTTL = 5 * time.Minute
)

// CachedPublishedCourses returns the cached published catalog. ok is false on
// a miss; any other cache failure is surfaced so callers can fall back.
func CachedPublishedCourses(ctx context.Context, c cache.Cache) ([]model.Course, bool, error) {
	raw, err := c.Get(ctx, publishedCoursesKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var courses []model.Course
	if err := jsonUnmarshal([]byte(raw), &courses); err != nil {
		return nil, false, err
	}
	return courses, true, nil
}

// CachePublishedCourses stores the published catalog for PublishedCoursesTTL.
func CachePublishedCourses(ctx context.Context, c cache.Cache, courses []model.Course) error {
	data, err := jsonMarshal(courses)
	if err != nil {
		return err
	}
	return c.Set(ctx, publishedCoursesKey, data, PublishedCoursesTTL).Err()
}

// InvalidatePublishedCourses drops the cached catalog; called after any
// course create or update.
func InvalidatePublishedCourses(ctx context.Context, c cache.Cache) error {
	return c.Del(ctx, publishedCoursesKey).Err()
}
