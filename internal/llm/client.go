package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/senmay/Geo-Asystent-AI/internal/config"
	"github.com/senmay/Geo-Asystent-AI/pkg/e"
)

// Client calls a Groq (OpenAI-compatible) chat completions endpoint.
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
}

func NewClient(cfg config.LLMConfig) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type apiRequest struct {
	Model          string          `json:"model"`
	Messages       []apiMessage    `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type apiChoice struct {
	Message apiMessage `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
	Error   *apiError   `json:"error,omitempty"`
}

// Complete sends one system+user exchange and returns the completion text.
// jsonOnly requests strict JSON output from the model; the caller still
// validates, the model is never trusted to enforce schema.
func (c *Client) Complete(ctx context.Context, system, user string, jsonOnly bool) (string, error) {
	const op = "llm.Client.Complete"

	reqBody := apiRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []apiMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if jsonOnly {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%s: marshaling request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: creating request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// client timeouts get the dedicated deadline sentinel so callers
		// can answer with the timeout message instead of the generic one
		if isTimeout(err) {
			return "", fmt.Errorf("%s: %v: %w", op, err, e.ErrDeadline)
		}
		return "", fmt.Errorf("%s: %v: %w", op, err, e.ErrLLMUnavailable)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: reading response: %w", op, e.ErrLLMUnavailable)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("%s: parsing response: %w", op, e.ErrLLMMalformed)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("%s: api error (%s): %s: %w", op, apiResp.Error.Type, apiResp.Error.Message, e.ErrLLMUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrLLMUnavailable)
	}
	if len(apiResp.Choices) == 0 || apiResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: empty completion: %w", op, e.ErrLLMMalformed)
	}

	return apiResp.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
