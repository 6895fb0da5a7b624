package online_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knsugi/wordlens/internal/config"
	"github.com/knsugi/wordlens/internal/online"
)

func writePrompts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "word_prompts.txt"),
		[]byte("You are a dictionary. Reply with JSON only."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image_prompts.txt"),
		[]byte("You describe images. Reply with JSON only."), 0644))
	return dir
}

func newTestClient(t *testing.T, endpoint string) *online.Client {
	t.Helper()
	return online.NewClient(config.OnlineConfig{
		Enabled:    true,
		APIKey:     "test-key",
		Endpoint:   endpoint,
		Model:      "gpt-4o-mini",
		PromptsDir: writePrompts(t),
	})
}

func chatReply(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestDefineWord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("api-key"))
		require.Equal(t, "/openai/deployments/gpt-4o-mini/chat/completions", r.URL.Path)
		require.Equal(t, "2024-02-01", r.URL.Query().Get("api-version"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		require.Equal(t, "system", req.Messages[0].Role)

		w.Write([]byte(chatReply(`{"word":"serendipity","part_of_speech":"noun","pronunciation":"/ˌsɛrənˈdɪpɪti/","definition":"a fortunate discovery","examples":["pure serendipity"],"synonyms":["luck"]}`)))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	e, ok := c.DefineWord(context.Background(), "serendipity")
	require.True(t, ok)
	require.Equal(t, "serendipity", e.Word)
	require.Equal(t, "noun", e.PartOfSpeech)
	require.Equal(t, []string{"luck"}, e.Synonyms)
}

func TestDefineWord_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, ok := newTestClient(t, srv.URL).DefineWord(context.Background(), "cat")
	require.False(t, ok)
}

func TestDefineWord_InvalidContentFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("Sure! Here is the definition you asked for...")))
	}))
	defer srv.Close()

	_, ok := newTestClient(t, srv.URL).DefineWord(context.Background(), "cat")
	require.False(t, ok)
}

func TestDefineWord_IncompleteEntryFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(`{"word":"cat"}`)))
	}))
	defer srv.Close()

	_, ok := newTestClient(t, srv.URL).DefineWord(context.Background(), "cat")
	require.False(t, ok)
}

func TestDefineWord_MissingPromptFallsBack(t *testing.T) {
	c := online.NewClient(config.OnlineConfig{
		Enabled:    true,
		APIKey:     "k",
		Endpoint:   "http://127.0.0.1:1",
		Model:      "m",
		PromptsDir: t.TempDir(), // no templates inside
	})

	_, ok := c.DefineWord(context.Background(), "cat")
	require.False(t, ok)
}

func TestDefineWord_UnreachableEndpointFallsBack(t *testing.T) {
	c := online.NewClient(config.OnlineConfig{
		Enabled:    true,
		APIKey:     "k",
		Endpoint:   "http://127.0.0.1:1",
		Model:      "m",
		PromptsDir: writePrompts(t),
	})

	_, ok := c.DefineWord(context.Background(), "cat")
	require.False(t, ok)
}

func TestDescribeImage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/openai/deployments/gpt-4o-mini/chat/completions", r.URL.Path)

		var req struct {
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// The user message carries image parts: a data URL and a text
		// instruction.
		var parts []map[string]any
		require.NoError(t, json.Unmarshal(req.Messages[1].Content, &parts))
		require.Len(t, parts, 2)
		require.Equal(t, "image_url", parts[0]["type"])

		w.Write([]byte(chatReply(`{"label":"tabby","description":"a striped cat","meaning":"a common house cat","confidence":0.93}`)))
	}))
	defer srv.Close()

	imgPath := filepath.Join(t.TempDir(), "cat.jpg")
	require.NoError(t, os.WriteFile(imgPath, []byte("jpeg bytes"), 0644))

	e, ok := newTestClient(t, srv.URL).DescribeImage(context.Background(), imgPath)
	require.True(t, ok)
	require.Equal(t, "tabby", e.Label)
	require.Equal(t, 0.93, e.Confidence)
}

func TestDescribeImage_MissingFileFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called when the file is unreadable")
	}))
	defer srv.Close()

	_, ok := newTestClient(t, srv.URL).DescribeImage(context.Background(), "/no/such/file.jpg")
	require.False(t, ok)
}
