package roundtable

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDiscussion() *Discussion {
	return &Discussion{
		ID:        "11111111-2222-3333-4444-555555555555",
		Question:  "What makes a great leader?",
		StartedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Rounds: []Round{
			{Number: 1, Contributions: []Contribution{
				{Participant: "Participant 1", Model: "gpt-4o", Text: "Empathy matters most."},
				{Participant: "Participant 2", Model: "claude-sonnet-4.5", Text: "Clarity of vision."},
			}},
			{Number: 2, Contributions: []Contribution{
				{Participant: "Participant 1", Model: "gpt-4o", Text: "Vision without empathy fails."},
				{Participant: "Participant 2", Model: "claude-sonnet-4.5", Text: "Both converge on trust."},
			}},
		},
		FinalSummary: "Great leaders combine empathy, vision, and trust.",
	}
}

func TestExportMarkdown(t *testing.T) {
	d := sampleDiscussion()
	got, err := Export(d, FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, got, "# Roundtable Discussion")
	assert.Contains(t, got, d.Question)
	assert.Contains(t, got, "### Round 1")
	assert.Contains(t, got, "### Round 2")
	for _, round := range d.Rounds {
		for _, c := range round.Contributions {
			assert.Contains(t, got, "**"+c.Participant+"** ("+c.Model+"):")
			assert.Contains(t, got, c.Text)
		}
	}
	assert.Contains(t, got, "## Final Summary")
	assert.Contains(t, got, d.FinalSummary)
}

func TestExportMarkdownNoSummary(t *testing.T) {
	d := sampleDiscussion()
	d.FinalSummary = ""
	got, err := Export(d, FormatMarkdown)
	require.NoError(t, err)
	assert.NotContains(t, got, "Final Summary")
}

func TestExportText(t *testing.T) {
	d := sampleDiscussion()
	got, err := Export(d, FormatText)
	require.NoError(t, err)

	assert.Contains(t, got, "ROUNDTABLE DISCUSSION")
	assert.Contains(t, got, strings.Repeat("=", 80))
	assert.Contains(t, got, "Question: "+d.Question)
	assert.Contains(t, got, "--- Round 1 ---")
	assert.Contains(t, got, "Participant 1 (gpt-4o):")
	assert.Contains(t, got, "FINAL SUMMARY:")
	assert.NotContains(t, got, "**")
}

func TestExportJSONRoundTrips(t *testing.T) {
	d := sampleDiscussion()
	got, err := Export(d, FormatJSON)
	require.NoError(t, err)

	var back Discussion
	require.NoError(t, json.Unmarshal([]byte(got), &back))

	assert.Equal(t, d.ID, back.ID)
	assert.Equal(t, d.Question, back.Question)
	assert.Equal(t, d.FinalSummary, back.FinalSummary)
	require.Len(t, back.Rounds, len(d.Rounds))
	for i, round := range d.Rounds {
		assert.Equal(t, round.Number, back.Rounds[i].Number)
		assert.Equal(t, round.Contributions, back.Rounds[i].Contributions)
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
		"TEXT":     FormatText,
		"txt":      FormatText,
		"json":     FormatJSON,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseFormatUnknown(t *testing.T) {
	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export(sampleDiscussion(), Format(42))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
