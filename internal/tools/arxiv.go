package tools

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	arxivName       = "arxiv_search"
	arxivBaseURL    = "http://export.arxiv.org/api"
	arxivMaxResults = 3
	arxivMaxAuthors = 3
)

// Minimal view of the arXiv Atom feed.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
	Links     []arxivLink   `xml:"link"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
}

// NewArxiv returns the arXiv paper search tool.
func NewArxiv() Tool {
	return newArxiv(arxivBaseURL)
}

func newArxiv(baseURL string) Tool {
	httpClient := &http.Client{}
	return Tool{
		Name: arxivName,
		Description: "Search for academic papers and research on arXiv. " +
			"Use for scientific research, technical papers, and cutting-edge findings. " +
			"Input: research topic or query (str)",
		Run: func(ctx context.Context, query string) (string, error) {
			params := url.Values{}
			params.Set("search_query", "all:"+query)
			params.Set("max_results", fmt.Sprint(arxivMaxResults))
			params.Set("sortBy", "submittedDate")
			params.Set("sortOrder", "descending")

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/query?"+params.Encode(), nil)
			if err != nil {
				return "", fmt.Errorf("arxiv: %w", err)
			}

			resp, err := httpClient.Do(req)
			if err != nil {
				return "", fmt.Errorf("arxiv: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return "", fmt.Errorf("arxiv: unexpected status %d", resp.StatusCode)
			}

			var feed arxivFeed
			if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
				return "", fmt.Errorf("arxiv: %w", err)
			}
			if len(feed.Entries) == 0 {
				return "No papers found on arXiv for: " + query, nil
			}

			var sb strings.Builder
			for i, entry := range feed.Entries {
				fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.TrimSpace(entry.Title))
				fmt.Fprintf(&sb, "   Authors: %s\n", joinAuthors(entry.Authors))
				fmt.Fprintf(&sb, "   Published: %s\n", entry.Published)
				fmt.Fprintf(&sb, "   Summary: %s\n", truncate(strings.TrimSpace(entry.Summary), 300))
				if pdf := pdfLink(entry.Links); pdf != "" {
					fmt.Fprintf(&sb, "   URL: %s\n", pdf)
				}
			}
			return strings.TrimRight(sb.String(), "\n"), nil
		},
	}
}

func joinAuthors(authors []arxivAuthor) string {
	names := make([]string, 0, arxivMaxAuthors)
	for i, a := range authors {
		if i == arxivMaxAuthors {
			break
		}
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}

func pdfLink(links []arxivLink) string {
	for _, l := range links {
		if l.Title == "pdf" {
			return l.Href
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
