package store

import "database/sql"

const schema = `
CREATE TABLE IF NOT EXISTS weak_points (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	category           TEXT NOT NULL,
	weakness_level     INTEGER NOT NULL,
	questions_answered INTEGER NOT NULL,
	correct_rate       INTEGER NOT NULL,
	position           INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS practice_records (
	id              TEXT PRIMARY KEY,
	topic           TEXT NOT NULL,
	difficulty      TEXT NOT NULL,
	total_questions INTEGER NOT NULL,
	correct_answers INTEGER NOT NULL,
	accuracy        INTEGER NOT NULL,
	time_spent_min  INTEGER NOT NULL,
	date            TEXT NOT NULL,
	questions       TEXT NOT NULL,
	seq             INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_practice_records_seq ON practice_records (seq DESC);

CREATE TABLE IF NOT EXISTS session_snapshot (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
