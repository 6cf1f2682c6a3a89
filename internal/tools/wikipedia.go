package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	wikipediaName    = "wikipedia_search"
	wikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1"
)

type wikipediaSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// NewWikipedia returns the Wikipedia summary tool.
func NewWikipedia() Tool {
	return newWikipedia(wikipediaBaseURL)
}

func newWikipedia(baseURL string) Tool {
	httpClient := &http.Client{}
	return Tool{
		Name: wikipediaName,
		Description: "Get information from Wikipedia for general knowledge topics, " +
			"historical facts, and biographical information. " +
			"Input: topic or person name (str)",
		Run: func(ctx context.Context, query string) (string, error) {
			title := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(query), " ", "_"))
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/page/summary/"+title, nil)
			if err != nil {
				return "", fmt.Errorf("wikipedia: %w", err)
			}

			resp, err := httpClient.Do(req)
			if err != nil {
				return "", fmt.Errorf("wikipedia: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				return "Wikipedia page not found for: " + query, nil
			}
			if resp.StatusCode != http.StatusOK {
				return "", fmt.Errorf("wikipedia: unexpected status %d", resp.StatusCode)
			}

			var summary wikipediaSummary
			if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
				return "", fmt.Errorf("wikipedia: %w", err)
			}
			return fmt.Sprintf("Wikipedia Summary for %q:\n\n%s", query, summary.Extract), nil
		},
	}
}
