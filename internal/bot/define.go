package bot

import (
	"context"

	"github.com/knsugi/wordlens/internal/entry"
	"github.com/knsugi/wordlens/internal/format"
	"github.com/knsugi/wordlens/internal/lexicon"
	"github.com/knsugi/wordlens/internal/logger"
)

// DefineEntry resolves a word to a structured entry. refused is true
// when the safety gate rejected the input; the entry is then zero.
func (b *Bot) DefineEntry(ctx context.Context, word string) (entry.WordEntry, bool) {
	if !b.gate.IsSafe(word) {
		return entry.WordEntry{}, true
	}

	if b.delegate != nil {
		if e, ok := b.delegate.DefineWord(ctx, word); ok {
			logger.Debug("word %q resolved by the online track", word)
			return e, false
		}
	}

	senses, err := b.lexicon.Senses(ctx, word)
	if err != nil {
		// A lookup failure renders as not-found rather than an error;
		// the loop must keep going.
		logger.Error("lexicon lookup for %q failed: %v", word, err)
		senses = nil
	}
	return lexicon.Resolve(word, senses), false
}

// Define resolves a word and renders it for display.
func (b *Bot) Define(ctx context.Context, word string) string {
	e, refused := b.DefineEntry(ctx, word)
	if refused {
		return b.gate.RefusalMessage()
	}
	return format.Word(e)
}
