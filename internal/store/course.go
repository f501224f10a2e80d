package store

import (
	"context"

	"course-market/internal/database"
	"course-market/internal/model"

	"github.com/jackc/pgx/v5"
)

const courseColumns = `id, title, description, price, image_link, published, created_at, updated_at`

func CreateCourse(ctx context.Context, db database.DB, c *model.Course) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO courses (title, description, price, image_link, published)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		c.Title,
		c.Description,
		c.Price,
		c.ImageLink,
		c.Published,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, wrapErr("CreateCourse", err)
	}
	return c, nil
}

// UpdateCourse replaces every mutable field of the course; partial patches
// are not supported.
func UpdateCourse(ctx context.Context, db database.DB, c *model.Course) error {
	tag, err := db.Exec(ctx,
		`UPDATE courses
		 SET title = $1, description = $2, price = $3, image_link = $4,
		     published = $5, updated_at = now()
		 WHERE id = $6`,
		c.Title,
		c.Description,
		c.Price,
		c.ImageLink,
		c.Published,
		c.ID,
	)
	if err != nil {
		return wrapErr("UpdateCourse", err)
	}
	if tag.RowsAffected() == 0 {
		return wrapErr("UpdateCourse", ErrNotFound)
	}
	return nil
}

func GetCourseByID(ctx context.Context, db database.DB, courseID int) (*model.Course, error) {
	row := db.QueryRow(ctx,
		`SELECT `+courseColumns+`
		 FROM courses WHERE id = $1`,
		courseID,
	)
	c := &model.Course{}
	if err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Price,
		&c.ImageLink,
		&c.Published,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, wrapErr("GetCourseByID", err)
	}
	return c, nil
}

// ListCourses returns every course regardless of published state. Admin read
// path.
func ListCourses(ctx context.Context, db database.DB) ([]model.Course, error) {
	rows, err := db.Query(ctx,
		`SELECT `+courseColumns+`
		 FROM courses ORDER BY id`,
	)
	if err != nil {
		return nil, wrapErr("ListCourses", err)
	}
	defer rows.Close()
	return scanCourses("ListCourses", rows)
}

// ListPublishedCourses returns only published courses. User read path.
func ListPublishedCourses(ctx context.Context, db database.DB) ([]model.Course, error) {
	rows, err := db.Query(ctx,
		`SELECT `+courseColumns+`
		 FROM courses WHERE published ORDER BY id`,
	)
	if err != nil {
		return nil, wrapErr("ListPublishedCourses", err)
	}
	defer rows.Close()
	return scanCourses("ListPublishedCourses", rows)
}

func scanCourses(op string, rows pgx.Rows) ([]model.Course, error) {
	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.Description,
			&c.Price,
			&c.ImageLink,
			&c.Published,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, wrapErr(op, err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return courses, nil
}
