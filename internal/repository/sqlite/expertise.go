package sqlite

import (
	"context"
	"fmt"

	"github.com/akash-insiders/community-hub/pkg/models"
)

func (r *SQLiteRepo) CreateExpertise(ctx context.Context, e *models.ExpertiseEntry) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("expertise entry is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO user_expertise (user_id, technology, expertise_level, years_experience) VALUES (?, ?, ?, ?)`,
		e.ProfileID, e.Technology, e.Level, e.Years)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListByProfile(ctx context.Context, profileID int64) ([]models.ExpertiseEntry, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, technology, expertise_level, years_experience FROM user_expertise WHERE user_id = ? ORDER BY id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ExpertiseEntry{}
	for rows.Next() {
		var e models.ExpertiseEntry
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Technology, &e.Level, &e.Years); err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
