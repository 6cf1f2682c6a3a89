package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is a chat completions client for one OpenAI-compatible endpoint,
// bound to a single model, credential, and sampling temperature.
type Client struct {
	httpClient  *http.Client
	model       string
	apiKey      string
	baseURL     string
	temperature float64
}

// NewClient creates a Client bound to the given endpoint triple.
func NewClient(model, apiKey, baseURL string, temperature float64) *Client {
	return &Client{
		httpClient:  &http.Client{},
		model:       model,
		apiKey:      apiKey,
		baseURL:     baseURL,
		temperature: temperature,
	}
}

// Model returns the model identifier this client is bound to.
func (c *Client) Model() string { return c.model }

// Complete sends the messages to the bound model and returns the text of the
// first choice. The call blocks until the endpoint answers or ctx is done.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm: %s: unexpected status %d: %s", c.model, resp.StatusCode, string(respBody))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("llm: %s: empty response", c.model)
	}
	return chatResp.Choices[0].Message.Content, nil
}
