package store

import (
	"context"

	"course-market/internal/database"
	"course-market/internal/model"

	"github.com/google/uuid"
)

var uuidNewString = uuid.NewString

// CreatePurchase appends a ledger row for (userID, courseID). The insert is
// conditional on the composite primary key, so a repeat purchase is a no-op:
// created reports whether a new row was written.
func CreatePurchase(ctx context.Context, db database.DB, userID, courseID int) (created bool, err error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO purchases (user_id, course_id, receipt_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, course_id) DO NOTHING`,
		userID,
		courseID,
		uuidNewString(),
	)
	if err != nil {
		return false, wrapErr("CreatePurchase", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListPurchasedCourses returns the courses recorded in the user's ledger.
// An empty slice is a normal result, not an error.
func ListPurchasedCourses(ctx context.Context, db database.DB, userID int) ([]model.Course, error) {
	rows, err := db.Query(ctx,
		`SELECT c.id, c.title, c.description, c.price, c.image_link, c.published, c.created_at, c.updated_at
		 FROM purchases p
		 JOIN courses c ON c.id = p.course_id
		 WHERE p.user_id = $1
		 ORDER BY p.purchased_at`,
		userID,
	)
	if err != nil {
		return nil, wrapErr("ListPurchasedCourses", err)
	}
	defer rows.Close()
	return scanCourses("ListPurchasedCourses", rows)
}
