package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
)

type Admin struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

const getAdminByUsername = `
SELECT id, username, email, password_hash, created_at
FROM admins WHERE username = $1`

func (q *Queries) GetAdminByUsername(ctx context.Context, username string) (Admin, error) {
	var a Admin
	err := q.db.QueryRow(ctx, getAdminByUsername, username).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Admin{}, domain.ErrNotFound
	}
	return a, err
}
