package sqlite

import (
	"context"
	"database/sql"

	"github.com/akash-insiders/community-hub/pkg/models"
)

// Stats recomputes the dashboard aggregates on every call. All queries return
// empty or zero results on an empty store rather than failing.
func (r *SQLiteRepo) Stats(ctx context.Context) (*models.Stats, error) {
	s := &models.Stats{
		ByMonth:         []models.MonthCount{},
		ByTech:          []models.TechCount{},
		ByRole:          []models.RoleCount{},
		ByLocation:      []models.LocationCount{},
		ExpertiseLevels: []models.LevelCount{},
	}

	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM users`)
	if err := row.Scan(&s.TotalUsers); err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT strftime('%Y-%m', created_at) AS m, COUNT(*) AS c FROM users GROUP BY m ORDER BY m`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var mc models.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		s.ByMonth = append(s.ByMonth, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.conn.QueryRows(ctx, `SELECT technology, COUNT(*) AS c FROM user_expertise GROUP BY technology ORDER BY c DESC LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var tc models.TechCount
		if err := rows.Scan(&tc.Technology, &tc.Count); err != nil {
			return nil, err
		}
		s.ByTech = append(s.ByTech, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.conn.QueryRows(ctx, `SELECT role, COUNT(*) AS c FROM users GROUP BY role ORDER BY c DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var rc models.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, err
		}
		s.ByRole = append(s.ByRole, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.conn.QueryRows(ctx, `SELECT location, COUNT(*) AS c FROM users WHERE location IS NOT NULL GROUP BY location ORDER BY c DESC LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var lc models.LocationCount
		if err := rows.Scan(&lc.Location, &lc.Count); err != nil {
			return nil, err
		}
		s.ByLocation = append(s.ByLocation, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// AVG over zero rows is NULL; report 0 instead
	var avg sql.NullFloat64
	row = r.conn.QueryRow(ctx, `SELECT AVG(years_experience) FROM user_expertise`)
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if avg.Valid {
		s.AvgExperience = avg.Float64
	}

	rows, err = r.conn.QueryRows(ctx, `SELECT expertise_level, COUNT(*) AS c FROM user_expertise GROUP BY expertise_level ORDER BY expertise_level`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var lc models.LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return nil, err
		}
		s.ExpertiseLevels = append(s.ExpertiseLevels, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return s, nil
}
