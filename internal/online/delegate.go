package online

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/knsugi/wordlens/internal/entry"
	"github.com/knsugi/wordlens/internal/logger"
)

const (
	wordPromptFile  = "word_prompts.txt"
	imagePromptFile = "image_prompts.txt"
)

// DefineWord asks the remote model for a word entry. ok is false
// whenever the result cannot be used, for any reason.
func (c *Client) DefineWord(ctx context.Context, word string) (entry.WordEntry, bool) {
	systemPrompt := c.loadPrompt(wordPromptFile)
	if systemPrompt == "" {
		return entry.WordEntry{}, false
	}

	content, err := c.complete(ctx, wordTimeout, systemPrompt, word)
	if err != nil {
		logger.Warn("online word lookup failed: %v", err)
		return entry.WordEntry{}, false
	}

	var e entry.WordEntry
	if err := json.Unmarshal(content, &e); err != nil {
		logger.Warn("online word lookup returned invalid JSON: %v", err)
		return entry.WordEntry{}, false
	}
	if e.Word == "" || e.Definition == "" {
		logger.Warn("online word lookup returned an incomplete entry")
		return entry.WordEntry{}, false
	}
	if e.Pronunciation == "" {
		e.Pronunciation = entry.PronunciationNA
	}
	return e, true
}

type imagePart struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url,omitempty"`
}

// DescribeImage asks the remote vision model about the image at path.
// The file is sent base64-encoded as a data URL.
func (c *Client) DescribeImage(ctx context.Context, path string) (entry.ImageEntry, bool) {
	systemPrompt := c.loadPrompt(imagePromptFile)
	if systemPrompt == "" {
		return entry.ImageEntry{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("online image lookup could not read %s: %v", path, err)
		return entry.ImageEntry{}, false
	}

	parts := []imagePart{
		{
			Type: "image_url",
			ImageURL: &struct {
				URL string `json:"url"`
			}{URL: fmt.Sprintf("data:image/jpeg;base64,%s", base64.StdEncoding.EncodeToString(data))},
		},
		{Type: "text", Text: "Describe this image."},
	}

	content, err := c.complete(ctx, imageTimeout, systemPrompt, parts)
	if err != nil {
		logger.Warn("online image lookup failed: %v", err)
		return entry.ImageEntry{}, false
	}

	var e entry.ImageEntry
	if err := json.Unmarshal(content, &e); err != nil {
		logger.Warn("online image lookup returned invalid JSON: %v", err)
		return entry.ImageEntry{}, false
	}
	if e.Label == "" {
		logger.Warn("online image lookup returned an incomplete entry")
		return entry.ImageEntry{}, false
	}
	return e, true
}
