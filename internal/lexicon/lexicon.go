// Package lexicon provides the lexical knowledge base: a libsql-backed
// sense store, the corpus importer that fills it, and the resolver that
// assembles a WordEntry from a word's ordered senses.
package lexicon

import (
	"context"

	"github.com/knsugi/wordlens/internal/entry"
)

// Lexicon serves the ordered senses of a word. The order is the
// corpus's own ranking; index 0 is the most common sense.
type Lexicon interface {
	Senses(ctx context.Context, word string) ([]entry.Sense, error)
}
