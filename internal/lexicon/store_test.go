package lexicon_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "github.com/tursodatabase/go-libsql"

	"github.com/knsugi/wordlens/internal/entry"
	"github.com/knsugi/wordlens/internal/lexicon"
)

func setupLexiconDB(t *testing.T) *lexicon.SQLLexicon {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := lexicon.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return lexicon.NewSQLLexicon(db)
}

func TestSQLLexicon_RoundTrip(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()

	senses := []entry.Sense{
		{
			Tag:        "n",
			Definition: "feline mammal",
			Examples:   []string{"first example", "second example"},
			Synonyms:   []string{"true cat"},
		},
		{
			Tag:        "v",
			Definition: "beat with a whip",
		},
	}
	require.NoError(t, store.InsertWordSenses(ctx, "Cat", senses))

	got, err := store.Senses(ctx, "cat")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Rank order and per-sense payloads survive the round trip.
	if got[0].Definition != "feline mammal" || got[1].Definition != "beat with a whip" {
		t.Errorf("sense order lost: %+v", got)
	}
	require.Equal(t, []string{"first example", "second example"}, got[0].Examples)
	require.Equal(t, []string{"true cat"}, got[0].Synonyms)
	require.Empty(t, got[1].Examples)
}

func TestSQLLexicon_InsertReplacesExistingSenses(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()

	require.NoError(t, store.InsertWordSenses(ctx, "cat", []entry.Sense{
		{Tag: "n", Definition: "old definition", Examples: []string{"old example"}},
	}))
	require.NoError(t, store.InsertWordSenses(ctx, "cat", []entry.Sense{
		{Tag: "n", Definition: "new definition"},
	}))

	got, err := store.Senses(ctx, "cat")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "new definition", got[0].Definition)
	require.Empty(t, got[0].Examples)
}

func TestSQLLexicon_LookupIsCaseInsensitive(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()

	require.NoError(t, store.InsertWordSenses(ctx, "dog", []entry.Sense{{Tag: "n", Definition: "d"}}))

	got, err := store.Senses(ctx, "  DOG ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestSQLLexicon_MissingWordYieldsNoSenses(t *testing.T) {
	store := setupLexiconDB(t)

	got, err := store.Senses(context.Background(), "missing")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLLexicon_WordCount(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()

	n, err := store.WordCount(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, store.InsertWordSenses(ctx, "one", []entry.Sense{{Tag: "n", Definition: "d"}}))
	require.NoError(t, store.InsertWordSenses(ctx, "two", []entry.Sense{{Tag: "n", Definition: "d"}, {Tag: "v", Definition: "d"}}))

	n, err = store.WordCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestSQLLexicon_Meta(t *testing.T) {
	store := setupLexiconDB(t)
	ctx := context.Background()

	v, err := store.GetMeta(ctx, "corpus_source")
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, store.SetMeta(ctx, "corpus_source", "file-a"))
	require.NoError(t, store.SetMeta(ctx, "corpus_source", "file-b"))

	v, err = store.GetMeta(ctx, "corpus_source")
	require.NoError(t, err)
	require.Equal(t, "file-b", v)
}
