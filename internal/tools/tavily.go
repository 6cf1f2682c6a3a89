package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	tavilyName    = "tavily_search"
	tavilyBaseURL = "https://api.tavily.com"
)

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

type tavilyResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// NewTavily returns the Tavily web search tool.
func NewTavily(apiKey string) Tool {
	return newTavily(apiKey, tavilyBaseURL)
}

func newTavily(apiKey, baseURL string) Tool {
	httpClient := &http.Client{}
	return Tool{
		Name: tavilyName,
		Description: "Search the web for current information and recent news. " +
			"Use for up-to-date facts, current events, and real-time data. " +
			"Input: search query (str)",
		Run: func(ctx context.Context, query string) (string, error) {
			body, err := json.Marshal(tavilyRequest{
				APIKey:      apiKey,
				Query:       query,
				SearchDepth: "basic",
			})
			if err != nil {
				return "", fmt.Errorf("tavily: %w", err)
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/search", bytes.NewReader(body))
			if err != nil {
				return "", fmt.Errorf("tavily: %w", err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := httpClient.Do(req)
			if err != nil {
				return "", fmt.Errorf("tavily: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				respBody, _ := io.ReadAll(resp.Body)
				return "", fmt.Errorf("tavily: unexpected status %d: %s", resp.StatusCode, string(respBody))
			}

			var searchResp tavilyResponse
			if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
				return "", fmt.Errorf("tavily: %w", err)
			}
			if len(searchResp.Results) == 0 {
				return "No results found for: " + query, nil
			}

			var sb strings.Builder
			for _, r := range searchResp.Results {
				fmt.Fprintf(&sb, "- %s\n  %s\n  Source: %s\n", r.Title, r.Content, r.URL)
			}
			return strings.TrimRight(sb.String(), "\n"), nil
		},
	}
}
