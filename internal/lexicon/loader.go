package lexicon

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knsugi/wordlens/internal/entry"
	"github.com/knsugi/wordlens/internal/logger"
)

// corpusRecord is one line of a JSONL corpus dump.
type corpusRecord struct {
	Word   string        `json:"word"`
	Senses []entry.Sense `json:"senses"`
}

// maxCorpusLine bounds a single corpus line; some senses carry long
// example lists.
const maxCorpusLine = 1 << 20

// LoadFile imports a JSONL corpus dump into the store and returns the
// number of words imported. Malformed lines are skipped with a log
// line rather than aborting the import.
func LoadFile(ctx context.Context, store *SQLLexicon, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	n, err := loadReader(ctx, store, f)
	if err != nil {
		return n, err
	}
	if err := store.SetMeta(ctx, metaCorpusSource, path); err != nil {
		return n, err
	}
	if hash, err := fileHash(path); err == nil {
		if err := store.SetMeta(ctx, metaCorpusHash, hash); err != nil {
			return n, err
		}
	}
	return n, nil
}

func loadReader(ctx context.Context, store *SQLLexicon, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxCorpusLine)

	imported := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec corpusRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			logger.Warn("skipping malformed corpus line %d: %v", lineNo, err)
			continue
		}
		normalizeRecord(&rec)
		if rec.Word == "" || len(rec.Senses) == 0 {
			continue
		}

		if err := store.InsertWordSenses(ctx, rec.Word, rec.Senses); err != nil {
			return imported, fmt.Errorf("import word %q: %w", rec.Word, err)
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("read corpus: %w", err)
	}
	return imported, nil
}

// normalizeRecord lowercases the headword and cleans lemma-style
// underscores out of synonym terms ("coffee_mug" -> "coffee mug").
func normalizeRecord(rec *corpusRecord) {
	rec.Word = strings.ToLower(strings.TrimSpace(rec.Word))
	for i := range rec.Senses {
		for j, syn := range rec.Senses[i].Synonyms {
			rec.Senses[i].Synonyms[j] = strings.ReplaceAll(strings.TrimSpace(syn), "_", " ")
		}
	}
}
