package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toolNames(ts []Tool) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

func TestAvailableWithoutTavilyKey(t *testing.T) {
	ts := Available("")
	assert.Equal(t, []string{"wikipedia_search", "arxiv_search"}, toolNames(ts))
}

func TestAvailableWithTavilyKey(t *testing.T) {
	ts := Available("tv-key")
	assert.Equal(t, []string{"tavily_search", "wikipedia_search", "arxiv_search"}, toolNames(ts))
	for _, tool := range ts {
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.NotNil(t, tool.Run, tool.Name)
	}
}

func TestStatuses(t *testing.T) {
	statuses := Statuses("")
	require.Len(t, statuses, 3)
	assert.False(t, statuses[0].Available)
	assert.NotEmpty(t, statuses[0].Hint)
	assert.True(t, statuses[1].Available)
	assert.True(t, statuses[2].Available)

	statuses = Statuses("tv-key")
	assert.True(t, statuses[0].Available)
}

func TestTavilyRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)

		var req tavilyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tv-key", req.APIKey)
		assert.Equal(t, "quantum computing", req.Query)
		assert.Equal(t, "basic", req.SearchDepth)

		json.NewEncoder(w).Encode(tavilyResponse{Results: []tavilyResult{
			{Title: "Quantum leap", Content: "Qubits explained.", URL: "https://example.com/q"},
		}})
	}))
	defer server.Close()

	tool := newTavily("tv-key", server.URL)
	got, err := tool.Run(context.Background(), "quantum computing")
	require.NoError(t, err)
	assert.Contains(t, got, "Quantum leap")
	assert.Contains(t, got, "Qubits explained.")
	assert.Contains(t, got, "Source: https://example.com/q")
}

func TestTavilyRunNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(tavilyResponse{})
	}))
	defer server.Close()

	tool := newTavily("tv-key", server.URL)
	got, err := tool.Run(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Equal(t, "No results found for: nothing", got)
}

func TestWikipediaRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/page/summary/Ada_Lovelace", r.URL.Path)
		json.NewEncoder(w).Encode(wikipediaSummary{
			Title:   "Ada Lovelace",
			Extract: "English mathematician and writer.",
		})
	}))
	defer server.Close()

	tool := newWikipedia(server.URL)
	got, err := tool.Run(context.Background(), "Ada Lovelace")
	require.NoError(t, err)
	assert.Contains(t, got, `Wikipedia Summary for "Ada Lovelace"`)
	assert.Contains(t, got, "English mathematician and writer.")
}

func TestWikipediaRunNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	tool := newWikipedia(server.URL)
	got, err := tool.Run(context.Background(), "No Such Page")
	require.NoError(t, err)
	assert.Equal(t, "Wikipedia page not found for: No Such Page", got)
}

const arxivSample = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Attention Is All You Need</title>
    <summary>We propose the Transformer.</summary>
    <published>2017-06-12T17:57:34Z</published>
    <author><name>Ashish Vaswani</name></author>
    <author><name>Noam Shazeer</name></author>
    <link href="http://arxiv.org/pdf/1706.03762" title="pdf"/>
  </entry>
</feed>`

func TestArxivRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "all:transformers", r.URL.Query().Get("search_query"))
		assert.Equal(t, "3", r.URL.Query().Get("max_results"))
		assert.Equal(t, "submittedDate", r.URL.Query().Get("sortBy"))

		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(arxivSample))
	}))
	defer server.Close()

	tool := newArxiv(server.URL)
	got, err := tool.Run(context.Background(), "transformers")
	require.NoError(t, err)
	assert.Contains(t, got, "1. Attention Is All You Need")
	assert.Contains(t, got, "Authors: Ashish Vaswani, Noam Shazeer")
	assert.Contains(t, got, "Published: 2017-06-12T17:57:34Z")
	assert.Contains(t, got, "Summary: We propose the Transformer.")
	assert.Contains(t, got, "URL: http://arxiv.org/pdf/1706.03762")
}

func TestArxivRunNoEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
	}))
	defer server.Close()

	tool := newArxiv(server.URL)
	got, err := tool.Run(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Equal(t, "No papers found on arXiv for: nothing", got)
}
