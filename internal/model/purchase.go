// File: internal/model/purchase.go
package model

import "time"

// Purchase is one row of the ledger tying a user to a course they bought.
// Rows are append-only; the (UserID, CourseID) pair is unique.
type Purchase struct {
	UserID      int       `db:"user_id" json:"user_id"`
	CourseID    int       `db:"course_id" json:"course_id"`
	ReceiptID   string    `db:"receipt_id" json:"receipt_id"`
	PurchasedAt time.Time `db:"purchased_at" json:"purchased_at"`
}
