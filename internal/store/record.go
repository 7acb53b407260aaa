package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// RecordQuestion is one graded question inside a practice record.
type RecordQuestion struct {
	ID            string `json:"id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation"`
}

// Record is one completed practice session. Records are append-only;
// the questions payload is stored as a JSON column.
type Record struct {
	ID               string
	Topic            string
	Difficulty       string
	TotalQuestions   int
	CorrectAnswers   int
	Accuracy         int
	TimeSpentMinutes int
	Date             string // RFC3339
	Questions        []RecordQuestion
}

// RecordRepo manages the practice_records table.
type RecordRepo struct {
	db *sql.DB
}

// Append stores a new record at the head of the history.
func (r *RecordRepo) Append(ctx context.Context, rec Record) error {
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return fmt.Errorf("encode record questions: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO practice_records
			(id, topic, difficulty, total_questions, correct_answers, accuracy, time_spent_min, date, questions, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(seq) FROM practice_records), 0) + 1)`,
		rec.ID, rec.Topic, rec.Difficulty, rec.TotalQuestions, rec.CorrectAnswers,
		rec.Accuracy, rec.TimeSpentMinutes, rec.Date, string(questions))
	if err != nil {
		return fmt.Errorf("append practice record: %w", err)
	}
	return nil
}

// List returns records newest first. limit <= 0 returns everything.
func (r *RecordRepo) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, topic, difficulty, total_questions, correct_answers, accuracy, time_spent_min, date, questions
		FROM practice_records
		ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list practice records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var questions string
		if err := rows.Scan(&rec.ID, &rec.Topic, &rec.Difficulty, &rec.TotalQuestions,
			&rec.CorrectAnswers, &rec.Accuracy, &rec.TimeSpentMinutes, &rec.Date, &questions); err != nil {
			return nil, fmt.Errorf("scan practice record: %w", err)
		}
		if err := json.Unmarshal([]byte(questions), &rec.Questions); err != nil {
			return nil, fmt.Errorf("decode record questions: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored records.
func (r *RecordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM practice_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count practice records: %w", err)
	}
	return n, nil
}
