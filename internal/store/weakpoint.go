package store

import (
	"context"
	"database/sql"
	"fmt"
)

// WeakPoint is a persisted weak knowledge point. WeaknessLevel runs
// 0-100, higher means weaker. Rows are updated in place and never
// deleted; QuestionsAnswered and CorrectRate accumulate across sessions.
type WeakPoint struct {
	ID                string
	Name              string
	Category          string
	WeaknessLevel     int
	QuestionsAnswered int
	CorrectRate       int
}

// WeakPointRepo manages the weak_points table.
type WeakPointRepo struct {
	db *sql.DB
}

// defaultWeakPoints seeds a fresh database so the practice flow has
// something to offer before any real history exists.
var defaultWeakPoints = []WeakPoint{
	{ID: "1", Name: "Algebraic Equations", Category: "Algebra", WeaknessLevel: 85, QuestionsAnswered: 12, CorrectRate: 42},
	{ID: "2", Name: "Quadratic Functions", Category: "Algebra", WeaknessLevel: 72, QuestionsAnswered: 18, CorrectRate: 56},
	{ID: "3", Name: "Trigonometric Identities", Category: "Trigonometry", WeaknessLevel: 68, QuestionsAnswered: 15, CorrectRate: 60},
	{ID: "4", Name: "Calculus Derivatives", Category: "Calculus", WeaknessLevel: 78, QuestionsAnswered: 20, CorrectRate: 45},
	{ID: "5", Name: "Integration Techniques", Category: "Calculus", WeaknessLevel: 81, QuestionsAnswered: 14, CorrectRate: 38},
	{ID: "6", Name: "Probability Theory", Category: "Statistics", WeaknessLevel: 65, QuestionsAnswered: 22, CorrectRate: 64},
	{ID: "7", Name: "Linear Transformations", Category: "Linear Algebra", WeaknessLevel: 75, QuestionsAnswered: 10, CorrectRate: 50},
	{ID: "8", Name: "Complex Numbers", Category: "Algebra", WeaknessLevel: 70, QuestionsAnswered: 16, CorrectRate: 58},
}

// List returns all weak points sorted weakest first. An empty table is
// seeded with the defaults before returning.
func (r *WeakPointRepo) List(ctx context.Context) ([]WeakPoint, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM weak_points`).Scan(&count); err != nil {
		return nil, fmt.Errorf("count weak points: %w", err)
	}
	if count == 0 {
		if err := r.seed(ctx); err != nil {
			return nil, err
		}
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, weakness_level, questions_answered, correct_rate
		FROM weak_points
		ORDER BY weakness_level DESC, position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list weak points: %w", err)
	}
	defer rows.Close()

	var points []WeakPoint
	for rows.Next() {
		var p WeakPoint
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.WeaknessLevel, &p.QuestionsAnswered, &p.CorrectRate); err != nil {
			return nil, fmt.Errorf("scan weak point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// Get returns the weak point with the given id, or nil if absent.
func (r *WeakPointRepo) Get(ctx context.Context, id string) (*WeakPoint, error) {
	var p WeakPoint
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, weakness_level, questions_answered, correct_rate
		FROM weak_points WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.WeaknessLevel, &p.QuestionsAnswered, &p.CorrectRate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get weak point %s: %w", id, err)
	}
	return &p, nil
}

// Update writes a weak point's mutable fields back in place.
func (r *WeakPointRepo) Update(ctx context.Context, p WeakPoint) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE weak_points
		SET weakness_level = ?, questions_answered = ?, correct_rate = ?
		WHERE id = ?`,
		p.WeaknessLevel, p.QuestionsAnswered, p.CorrectRate, p.ID)
	if err != nil {
		return fmt.Errorf("update weak point %s: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("update weak point %s: not found", p.ID)
	}
	return nil
}

func (r *WeakPointRepo) seed(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed weak points: %w", err)
	}
	defer tx.Rollback()

	for i, p := range defaultWeakPoints {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO weak_points (id, name, category, weakness_level, questions_answered, correct_rate, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Category, p.WeaknessLevel, p.QuestionsAnswered, p.CorrectRate, i); err != nil {
			return fmt.Errorf("seed weak point %s: %w", p.ID, err)
		}
	}
	return tx.Commit()
}
