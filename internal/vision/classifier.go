package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/knsugi/wordlens/internal/entry"
)

// Classifier ranks the content of a decoded image. Implementations are
// expected to return predictions ordered by descending probability.
type Classifier interface {
	Classify(ctx context.Context, image []byte) ([]entry.Prediction, error)
}

const classifyTimeout = 5 * time.Second

// HTTPClassifier talks to a local inference daemon that serves a
// pretrained image model over HTTP.
type HTTPClassifier struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPClassifier(baseURL string) *HTTPClassifier {
	return &HTTPClassifier{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: classifyTimeout},
	}
}

type classifyRequest struct {
	Image string `json:"image"` // base64-encoded file bytes
	TopK  int    `json:"top_k"`
}

type classifyResponse struct {
	Predictions []entry.Prediction `json:"predictions"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, image []byte) ([]entry.Prediction, error) {
	ctx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	reqBody, err := json.Marshal(classifyRequest{
		Image: base64.StdEncoding.EncodeToString(image),
		TopK:  5,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/classify", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classify response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed classifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse classify response: %w", err)
	}
	if len(parsed.Predictions) == 0 {
		return nil, fmt.Errorf("classifier returned no predictions")
	}
	return parsed.Predictions, nil
}
