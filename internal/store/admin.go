package store

import (
	"context"

	"course-market/internal/database"
	"course-market/internal/model"
)

func CreateAdmin(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		a.Username,
		a.PasswordHash,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, wrapErr("CreateAdmin", err)
	}
	return a, nil
}

func GetAdminByUsername(ctx context.Context, db database.DB, username string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM admins WHERE username = $1`,
		username,
	)
	a := &model.Admin{}
	if err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		return nil, wrapErr("GetAdminByUsername", err)
	}
	return a, nil
}
