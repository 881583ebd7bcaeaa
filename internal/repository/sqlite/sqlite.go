package sqlite

import (
	"database/sql"
	"io"
	"log/slog"

	"github.com/akash-insiders/community-hub/internal/db"
	"github.com/akash-insiders/community-hub/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.ExpertiseRepo = (*SQLiteRepo)(nil)
var _ repository.AdminRepo = (*SQLiteRepo)(nil)
var _ repository.StatsRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// nullable maps the empty string to NULL so optional profile columns stay
// NULL instead of storing "".
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func fromNull(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
