package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SessionRepo persists the single in-flight practice session so an
// interrupted run can be resumed. At most one snapshot exists.
type SessionRepo struct {
	db *sql.DB
}

// Save replaces the stored snapshot with the JSON encoding of v.
func (r *SessionRepo) Save(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO session_snapshot (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`, string(data))
	if err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return nil
}

// Load decodes the stored snapshot into v. It reports false when no
// snapshot exists. A snapshot that no longer parses is treated as
// absent and cleared rather than surfaced as an error.
func (r *SessionRepo) Load(ctx context.Context, v any) (bool, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM session_snapshot WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		_ = r.Clear(ctx)
		return false, nil
	}
	return true, nil
}

// Clear removes the stored snapshot, if any.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_snapshot`); err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}
	return nil
}
