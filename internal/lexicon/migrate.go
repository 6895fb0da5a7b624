package lexicon

import (
	"database/sql"
	"fmt"
)

// Migrate creates the lexicon schema. Idempotent.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS senses (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			word       TEXT NOT NULL,
			rank       INTEGER NOT NULL,
			pos_tag    TEXT NOT NULL,
			definition TEXT NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_senses_word ON senses(word, rank);",
		`CREATE TABLE IF NOT EXISTS sense_examples (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			sense_id INTEGER NOT NULL REFERENCES senses(id),
			position INTEGER NOT NULL,
			sentence TEXT NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_sense_examples_sense ON sense_examples(sense_id, position);",
		`CREATE TABLE IF NOT EXISTS sense_synonyms (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			sense_id INTEGER NOT NULL REFERENCES senses(id),
			term     TEXT NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS idx_sense_synonyms_sense ON sense_synonyms(sense_id);",
		// meta: corpus source and import bookkeeping
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}
	return nil
}
