package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/knsugi/wordlens/internal/entry"
)

// SQLLexicon serves senses from the libsql lexicon database.
type SQLLexicon struct {
	db *sql.DB
}

func NewSQLLexicon(db *sql.DB) *SQLLexicon {
	return &SQLLexicon{db: db}
}

// Senses returns the word's senses ordered by corpus rank. A word with
// no rows yields an empty slice, not an error.
func (l *SQLLexicon) Senses(ctx context.Context, word string) ([]entry.Sense, error) {
	word = strings.ToLower(strings.TrimSpace(word))

	rows, err := l.db.QueryContext(ctx, `
		SELECT id, pos_tag, definition
		FROM senses
		WHERE word = ?
		ORDER BY rank ASC;
	`, word)
	if err != nil {
		return nil, fmt.Errorf("query senses for %q: %w", word, err)
	}
	defer rows.Close()

	type row struct {
		id    int64
		sense entry.Sense
	}
	var found []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.sense.Tag, &r.sense.Definition); err != nil {
			return nil, fmt.Errorf("scan sense row: %w", err)
		}
		found = append(found, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate senses: %w", err)
	}

	senses := make([]entry.Sense, 0, len(found))
	for _, r := range found {
		examples, err := l.senseExamples(ctx, r.id)
		if err != nil {
			return nil, err
		}
		synonyms, err := l.senseSynonymTerms(ctx, r.id)
		if err != nil {
			return nil, err
		}
		r.sense.Examples = examples
		r.sense.Synonyms = synonyms
		senses = append(senses, r.sense)
	}
	return senses, nil
}

func (l *SQLLexicon) senseExamples(ctx context.Context, senseID int64) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT sentence FROM sense_examples
		WHERE sense_id = ?
		ORDER BY position ASC;
	`, senseID)
	if err != nil {
		return nil, fmt.Errorf("query examples: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows)
}

func (l *SQLLexicon) senseSynonymTerms(ctx context.Context, senseID int64) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT term FROM sense_synonyms
		WHERE sense_id = ?
		ORDER BY id ASC;
	`, senseID)
	if err != nil {
		return nil, fmt.Errorf("query synonyms: %w", err)
	}
	defer rows.Close()
	return scanStrings(rows)
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan string row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// WordCount reports how many distinct words the lexicon holds. Used to
// decide whether the corpus bootstrap is needed.
func (l *SQLLexicon) WordCount(ctx context.Context) (int64, error) {
	var n int64
	err := l.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT word) FROM senses;").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count lexicon words: %w", err)
	}
	return n, nil
}

// InsertWordSenses stores all senses of one word in a single
// transaction, rank following slice order. Existing rows for the word
// are replaced, so re-importing a corpus never duplicates senses.
func (l *SQLLexicon) InsertWordSenses(ctx context.Context, word string, senses []entry.Sense) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || len(senses) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM sense_examples WHERE sense_id IN (SELECT id FROM senses WHERE word = ?)",
		"DELETE FROM sense_synonyms WHERE sense_id IN (SELECT id FROM senses WHERE word = ?)",
		"DELETE FROM senses WHERE word = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, word); err != nil {
			return fmt.Errorf("clear senses for %q: %w", word, err)
		}
	}

	for rank, s := range senses {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO senses(word, rank, pos_tag, definition) VALUES (?, ?, ?, ?)",
			word, rank, s.Tag, s.Definition)
		if err != nil {
			return fmt.Errorf("insert sense for %q: %w", word, err)
		}
		senseID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("sense id for %q: %w", word, err)
		}

		for pos, ex := range s.Examples {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO sense_examples(sense_id, position, sentence) VALUES (?, ?, ?)",
				senseID, pos, ex); err != nil {
				return fmt.Errorf("insert example for %q: %w", word, err)
			}
		}
		for _, syn := range s.Synonyms {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO sense_synonyms(sense_id, term) VALUES (?, ?)",
				senseID, syn); err != nil {
				return fmt.Errorf("insert synonym for %q: %w", word, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}
	return nil
}

// SetMeta and GetMeta track corpus bookkeeping (source URL, import time).
func (l *SQLLexicon) SetMeta(ctx context.Context, key, value string) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO meta(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;
	`, key, value)
	if err != nil {
		return fmt.Errorf("set meta %q: %w", key, err)
	}
	return nil
}

func (l *SQLLexicon) GetMeta(ctx context.Context, key string) (string, error) {
	var v string
	err := l.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?;", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get meta %q: %w", key, err)
	}
	return v, nil
}
