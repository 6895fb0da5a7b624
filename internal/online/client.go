// Package online implements the optional remote-model track. Every
// failure, transport, status, or parse, degrades to a "not available"
// outcome so the caller can fall through to the offline resolvers; the
// user never sees an online error.
package online

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knsugi/wordlens/internal/config"
	"github.com/knsugi/wordlens/internal/logger"
)

// Single attempt, no retries. Image calls get a longer budget for the
// payload upload.
const (
	wordTimeout  = 10 * time.Second
	imageTimeout = 15 * time.Second
)

const apiVersion = "2024-02-01"

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	apiKey     string
	endpoint   string
	model      string
	promptsDir string
	httpClient *http.Client
}

func NewClient(cfg config.OnlineConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		promptsDir: cfg.PromptsDir,
		httpClient: &http.Client{},
	}
}

// loadPrompt reads a system prompt template from the prompts dir. An
// empty or missing template disables the online track for that call.
func (c *Client) loadPrompt(name string) string {
	path := filepath.Join(c.promptsDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("prompt template not found: %s", path)
		return ""
	}
	return strings.TrimSpace(string(data))
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete performs the single POST and returns the raw message
// content, expected to be a JSON object per the prompt contract.
func (c *Client) complete(ctx context.Context, timeout time.Duration, systemPrompt string, userContent any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reqBody, err := json.Marshal(chatRequest{
		Model:       c.model,
		Temperature: 0.2,
		MaxTokens:   512,
		TopP:        1.0,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimSuffix(c.endpoint, "/"), c.model, apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chat response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("chat endpoint returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("chat response has no choices")
	}
	return []byte(parsed.Choices[0].Message.Content), nil
}
