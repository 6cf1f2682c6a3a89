// Package tools provides external knowledge sources that can be advertised to
// discussion participants. The discussion core only reads tool names and
// descriptions; Run is for callers that want to execute a lookup themselves.
package tools

import "context"

// Tool is an advertised external knowledge source.
type Tool struct {
	Name        string
	Description string
	Run         func(ctx context.Context, query string) (string, error)
}

// Status reports whether a tool can be constructed.
type Status struct {
	Name      string
	Available bool
	Hint      string
}

// Available returns every tool that can be constructed with the given
// credentials. A tool that cannot be constructed is simply absent.
func Available(tavilyAPIKey string) []Tool {
	var ts []Tool
	if tavilyAPIKey != "" {
		ts = append(ts, NewTavily(tavilyAPIKey))
	}
	ts = append(ts, NewWikipedia(), NewArxiv())
	return ts
}

// Statuses reports availability for every known tool.
func Statuses(tavilyAPIKey string) []Status {
	tavily := Status{Name: tavilyName, Available: tavilyAPIKey != ""}
	if !tavily.Available {
		tavily.Hint = "set TAVILY_API_KEY in .env"
	}
	return []Status{
		tavily,
		{Name: wikipediaName, Available: true},
		{Name: arxivName, Available: true},
	}
}
