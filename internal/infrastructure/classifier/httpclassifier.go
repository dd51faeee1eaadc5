package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"campusmind/internal/domain/issue"
	"campusmind/internal/shared/logger"
)

const (
	// Maximum response body size for the classifier API (64KB)
	maxClassifierResponseSize = 64 << 10
	defaultRequestTimeout     = 2 * time.Second
)

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// HTTPClassifier calls an external text-classification service. The request
// timeout bounds every call; callers treat any error as "no classification"
// and degrade to the fallback.
type HTTPClassifier struct {
	endpoint   string
	httpClient *http.Client
	logger     logger.Interface
}

var _ issue.Classifier = (*HTTPClassifier)(nil)

func NewHTTPClassifier(endpoint string, timeout time.Duration, logger logger.Interface) *HTTPClassifier {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &HTTPClassifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (issue.Classification, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return issue.Classification{}, fmt.Errorf("failed to encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return issue.Classification{}, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return issue.Classification{}, fmt.Errorf("classify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return issue.Classification{}, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxClassifierResponseSize))
	if err != nil {
		return issue.Classification{}, fmt.Errorf("failed to read classify response: %w", err)
	}

	var parsed classifyResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return issue.Classification{}, fmt.Errorf("failed to decode classify response: %w", err)
	}

	c.logger.Debugw("classifier response",
		"category", parsed.Category,
		"confidence", parsed.Confidence,
	)

	return issue.Classification{
		Category:   parsed.Category,
		Confidence: parsed.Confidence,
		Source:     "http",
	}, nil
}
