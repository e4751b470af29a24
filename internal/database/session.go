package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/countdown/internal/models"
)

const sessionColumns = "id, duration_ms, remaining_ms, outcome, pauses, resets, started_at, ended_at"

func toMillis(d time.Duration) int64 {
	return int64(d / time.Millisecond)
}

func fromMillis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func scanSession(row interface{ Scan(...interface{}) error }) (models.Session, error) {
	var (
		s           models.Session
		durationMS  int64
		remainingMS int64
		outcome     string
		endedAt     sql.NullTime
	)
	if err := row.Scan(&s.ID, &durationMS, &remainingMS, &outcome, &s.Pauses, &s.Resets, &s.StartedAt, &endedAt); err != nil {
		return s, err
	}
	s.Duration = fromMillis(durationMS)
	s.Remaining = fromMillis(remainingMS)
	s.Outcome = models.Outcome(outcome)
	s.EndedAt = timePtr(endedAt)
	return s, nil
}

// StartSession records a countdown that has just begun.
func (d *Database) StartSession(ctx context.Context, s models.Session) error {
	if s.ID == "" {
		return wrapSessionErr("start", "", errors.New("missing id"))
	}
	if s.Outcome == "" {
		s.Outcome = models.OutcomeRunning
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}
	_, err := d.DB.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, toMillis(s.Duration), toMillis(s.Remaining), string(s.Outcome), s.Pauses, s.Resets, s.StartedAt.UTC(), nullableTime(s.EndedAt))
	return wrapSessionErr("start", s.ID, err)
}

// FinishSession closes a running session. Closing an unknown or already
// closed session returns ErrNotFound.
func (d *Database) FinishSession(ctx context.Context, id string, remaining time.Duration, outcome models.Outcome, pauses, resets int, endedAt time.Time) error {
	if !outcome.Closed() {
		return wrapSessionErr("finish", id, fmt.Errorf("outcome %q does not close a session", outcome))
	}
	res, err := d.DB.ExecContext(ctx,
		`UPDATE sessions SET remaining_ms = ?, outcome = ?, pauses = ?, resets = ?, ended_at = ?
		 WHERE id = ? AND outcome = ?`,
		toMillis(remaining), string(outcome), pauses, resets, endedAt.UTC(), id, string(models.OutcomeRunning))
	if err != nil {
		return wrapSessionErr("finish", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapSessionErr("finish", id, err)
	}
	if n == 0 {
		return wrapSessionErr("finish", id, ErrNotFound)
	}
	return nil
}

func (d *Database) GetSession(ctx context.Context, id string) (models.Session, error) {
	row := d.DB.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return s, wrapSessionErr("get", id, ErrNotFound)
	}
	return s, wrapSessionErr("get", id, err)
}

// ListSessions returns the most recent sessions first. A non-positive limit returns all.
func (d *Database) ListSessions(ctx context.Context, limit int) ([]models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY started_at DESC, rowid DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapSessionErr("list", "", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, wrapSessionErr("list", "", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, wrapSessionErr("list", "", rows.Err())
}

// SessionStats aggregates closed sessions.
func (d *Database) SessionStats(ctx context.Context) (models.SessionStats, error) {
	var (
		stats   models.SessionStats
		spentMS int64
	)
	err := d.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN outcome = 'finished' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'stopped' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN outcome = 'reset' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(MAX(duration_ms - remaining_ms, 0)), 0)
		FROM sessions
		WHERE outcome != 'running'`).Scan(&stats.Total, &stats.Finished, &stats.Stopped, &stats.Reset, &spentMS)
	if err != nil {
		return stats, wrapSessionErr("stats", "", err)
	}
	stats.TimeSpent = fromMillis(spentMS)
	return stats, nil
}

// ClearSessions deletes the whole history and returns how many rows were removed.
func (d *Database) ClearSessions(ctx context.Context) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, wrapSessionErr("clear", "", err)
	}
	n, err := res.RowsAffected()
	return n, wrapSessionErr("clear", "", err)
}
