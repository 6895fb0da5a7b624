package lexicon_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knsugi/wordlens/internal/lexicon"
)

func writeCorpus(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCorpusSyncer_ReloadsWhenFileChanges(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "corpus.jsonl")

	writeCorpus(t, path, `{"word":"cat","senses":[{"tag":"n","definition":"feline mammal"}]}`+"\n")
	_, err := lexicon.LoadFile(ctx, store, path)
	require.NoError(t, err)

	syncer := lexicon.NewCorpusSyncer(store)
	require.False(t, syncer.NeedsReload(ctx))

	writeCorpus(t, path, `{"word":"cat","senses":[{"tag":"n","definition":"small domestic feline"}]}`+"\n")
	require.True(t, syncer.NeedsReload(ctx))

	require.NoError(t, syncer.Sync(ctx))
	require.False(t, syncer.NeedsReload(ctx))

	senses, err := store.Senses(ctx, "cat")
	require.NoError(t, err)
	require.Len(t, senses, 1)
	require.Equal(t, "small domestic feline", senses[0].Definition)
}

func TestCorpusSyncer_SkipsWithoutRecordedSource(t *testing.T) {
	store := setupLexiconDB(t)
	syncer := lexicon.NewCorpusSyncer(store)

	require.False(t, syncer.NeedsReload(context.Background()))
	require.NoError(t, syncer.Sync(context.Background()))
}

func TestCorpusSyncer_SkipsWhenSourceIsNotAFile(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()

	require.NoError(t, store.SetMeta(ctx, "corpus_source", "https://example.com/corpus.jsonl"))

	syncer := lexicon.NewCorpusSyncer(store)
	require.False(t, syncer.NeedsReload(ctx))
}
