package roundtable

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects an export encoding.
type Format int

const (
	FormatMarkdown Format = iota
	FormatText
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to its Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Export renders a finished discussion in the given format. Pure; writing the
// result anywhere is the caller's concern.
func Export(d *Discussion, f Format) (string, error) {
	switch f {
	case FormatMarkdown:
		return exportMarkdown(d), nil
	case FormatText:
		return exportText(d), nil
	case FormatJSON:
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return "", fmt.Errorf("roundtable: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

func exportMarkdown(d *Discussion) string {
	var sb strings.Builder
	sb.WriteString("# Roundtable Discussion\n\n")
	sb.WriteString("## Question\n\n")
	sb.WriteString(d.Question + "\n\n")
	sb.WriteString("## Discussion\n")

	for _, round := range d.Rounds {
		fmt.Fprintf(&sb, "\n### Round %d\n", round.Number)
		for _, c := range round.Contributions {
			fmt.Fprintf(&sb, "\n**%s** (%s):\n\n%s\n", c.Participant, c.Model, c.Text)
		}
	}

	if d.FinalSummary != "" {
		sb.WriteString("\n## Final Summary\n\n")
		sb.WriteString(d.FinalSummary + "\n")
	}
	return sb.String()
}

func exportText(d *Discussion) string {
	rule := strings.Repeat("=", 80)
	var sb strings.Builder
	sb.WriteString("ROUNDTABLE DISCUSSION\n")
	sb.WriteString(rule + "\n\n")
	sb.WriteString("Question: " + d.Question + "\n")

	for _, round := range d.Rounds {
		fmt.Fprintf(&sb, "\n--- Round %d ---\n\n", round.Number)
		for _, c := range round.Contributions {
			fmt.Fprintf(&sb, "%s (%s):\n%s\n\n", c.Participant, c.Model, c.Text)
		}
	}

	if d.FinalSummary != "" {
		thin := strings.Repeat("-", 80)
		sb.WriteString("\n" + thin + "\n")
		sb.WriteString("FINAL SUMMARY:\n")
		sb.WriteString(thin + "\n")
		sb.WriteString(d.FinalSummary + "\n")
	}
	return sb.String()
}
