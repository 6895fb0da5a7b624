package lexicon

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/knsugi/wordlens/internal/logger"
)

const (
	metaCorpusSource = "corpus_source"
	metaCorpusHash   = "corpus_hash"
)

// Syncer keeps one external source in step with the lexicon database.
type Syncer interface {
	Key() string
	NeedsReload(ctx context.Context) bool
	Sync(ctx context.Context) error
}

// LaunchSyncers runs each syncer in its own goroutine. Startup does not
// block on them; lookups against slightly stale data are fine.
func LaunchSyncers(ctx context.Context, syncers ...Syncer) {
	for _, s := range syncers {
		go func(s Syncer) {
			if !s.NeedsReload(ctx) {
				logger.Debug("[%s] sync skipped (up-to-date)", s.Key())
				return
			}
			if err := s.Sync(ctx); err != nil {
				logger.Error("[%s] sync failed: %v", s.Key(), err)
			} else {
				logger.Info("[%s] sync done", s.Key())
			}
		}(s)
	}
}

// CorpusSyncer re-imports the corpus file recorded in meta when its
// content hash changes. A source that is not a local file (or was never
// set) is left alone.
type CorpusSyncer struct {
	store *SQLLexicon
}

func NewCorpusSyncer(store *SQLLexicon) *CorpusSyncer {
	return &CorpusSyncer{store: store}
}

func (c *CorpusSyncer) Key() string { return "corpus" }

func (c *CorpusSyncer) NeedsReload(ctx context.Context) bool {
	source, err := c.store.GetMeta(ctx, metaCorpusSource)
	if err != nil || source == "" {
		return false
	}
	info, err := os.Stat(source)
	if err != nil || info.IsDir() {
		return false
	}

	curr, err := fileHash(source)
	if err != nil {
		return false
	}
	last, err := c.store.GetMeta(ctx, metaCorpusHash)
	if err != nil {
		return true // conservative: reload when bookkeeping is unreadable
	}
	return curr != last
}

func (c *CorpusSyncer) Sync(ctx context.Context) error {
	source, err := c.store.GetMeta(ctx, metaCorpusSource)
	if err != nil {
		return err
	}
	if source == "" {
		return nil
	}
	n, err := LoadFile(ctx, c.store, source)
	if err != nil {
		return err
	}
	logger.Debug("re-imported %d words from %s", n, source)
	return nil
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
