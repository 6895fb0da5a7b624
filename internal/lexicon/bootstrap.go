package lexicon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/knsugi/wordlens/internal/logger"
)

const downloadTimeout = 60 * time.Second

// EnsureCorpus fills an empty lexicon from corpusURL on first run,
// mirroring a download-on-first-use corpus bootstrap. A populated
// store or an unset URL is a no-op. Failures are logged and returned;
// the caller keeps running with an empty lexicon (every lookup then
// resolves to a not-found entry).
func EnsureCorpus(ctx context.Context, store *SQLLexicon, corpusURL string) error {
	n, err := store.WordCount(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug("lexicon already holds %d words, skipping bootstrap", n)
		return nil
	}
	if corpusURL == "" {
		logger.Warn("lexicon is empty and no corpus URL configured; word lookups will return not-found entries")
		return nil
	}

	logger.Info("downloading lexicon corpus from %s", corpusURL)
	path, err := downloadCorpus(ctx, corpusURL)
	if err != nil {
		return fmt.Errorf("download corpus: %w", err)
	}

	imported, err := LoadFile(ctx, store, path)
	if err != nil {
		return fmt.Errorf("import corpus: %w", err)
	}
	if err := store.SetMeta(ctx, metaCorpusSource, corpusURL); err != nil {
		return err
	}
	logger.Info("lexicon ready: %d words imported", imported)
	return nil
}

func downloadCorpus(ctx context.Context, url string) (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	dest := filepath.Join(cacheDir, "wordlens", "corpus.jsonl")
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create corpus request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch corpus: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch corpus: unexpected status %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create corpus cache file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("write corpus cache file: %w", err)
	}
	return dest, nil
}
