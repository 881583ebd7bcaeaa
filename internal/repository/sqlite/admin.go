package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akash-insiders/community-hub/pkg/models"
)

func (r *SQLiteRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("admin is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO admin_users (email, name, password_hash) VALUES (?, ?, ?)`, a.Email, a.Name, a.PasswordHash)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, email, name, password_hash, created_at FROM admin_users WHERE email = ?`, email)
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &a, nil
}
