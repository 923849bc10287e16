package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/vitrinedev/vitrine/internal/database"
)

// sqlite's CURRENT_TIMESTAMP text layout; viewed_at round-trips through it.
const sqliteTimeFormat = "2006-01-02 15:04:05"

// HistoryRepo persists navigation history: an append-only view log and the
// last position per manifest source.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// RecordView appends one visit. Duplicate entries in a catalog produce
// distinct rows; the log never deduplicates.
func (r *HistoryRepo) RecordView(ctx context.Context, v View) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.ViewedAt.IsZero() {
		v.ViewedAt = database.Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO views(id, session_id, source, entry_title, entry_path, entry_date, position, viewed_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?);
	`,
		v.ID, v.SessionID, v.Source, v.EntryTitle, v.EntryPath, v.EntryDate, v.Position,
		v.ViewedAt.Format(sqliteTimeFormat))
	return err
}

// SavePosition upserts the last viewed position for a manifest source.
func (r *HistoryRepo) SavePosition(ctx context.Context, source string, position int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO positions(source, position, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(source) DO UPDATE SET position = excluded.position, updated_at = CURRENT_TIMESTAMP;
	`, source, position)
	return err
}

// LastPosition returns the stored position for source. ok is false when the
// source has never been visited.
func (r *HistoryRepo) LastPosition(ctx context.Context, source string) (int, bool, error) {
	var pos int
	err := r.db.QueryRowContext(ctx, `SELECT position FROM positions WHERE source = ?`, source).Scan(&pos)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return pos, true, nil
}

// RecentViews lists the newest views for source, most recent first.
func (r *HistoryRepo) RecentViews(ctx context.Context, source string, limit int) ([]View, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, source, entry_title, entry_path, entry_date, position, viewed_at
	FROM views WHERE source = ? ORDER BY viewed_at DESC, rowid DESC LIMIT ?;
	`, source, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []View
	for rows.Next() {
		var v View
		var viewedAt string
		if err := rows.Scan(&v.ID, &v.SessionID, &v.Source, &v.EntryTitle, &v.EntryPath, &v.EntryDate, &v.Position, &viewedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(sqliteTimeFormat, viewedAt); err == nil {
			v.ViewedAt = t
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
