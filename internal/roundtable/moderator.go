package roundtable

import (
	"context"
	"fmt"
	"strings"

	"github.com/mamipour/roundtable/internal/llm"
)

const moderatorSystemPrompt = "You are a skilled moderator synthesizing a roundtable discussion. " +
	"Your task is to create a clear, balanced summary that captures:\n" +
	"1. Key insights and agreements\n" +
	"2. Diverse perspectives\n" +
	"3. Practical conclusions or recommendations\n" +
	"Be concise but comprehensive."

// summarize sends the full round-labeled transcript to the moderator and
// returns its synthesis verbatim.
func (rt *Roundtable) summarize(ctx context.Context, d *Discussion) (string, error) {
	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: moderatorSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(
			"Question discussed: %s\n\nDiscussion:\n%s\n\nPlease provide a final summary of this roundtable discussion.",
			d.Question, transcript(d))},
	}

	summary, err := rt.moderator.Complete(ctx, msgs)
	if err != nil {
		return "", &ProviderError{Participant: "Moderator", Model: rt.moderatorModel, Err: err}
	}
	return summary, nil
}

// transcript renders every contribution in round order then registration
// order, labeled by round and participant.
func transcript(d *Discussion) string {
	var sb strings.Builder
	for _, round := range d.Rounds {
		fmt.Fprintf(&sb, "--- Round %d ---\n", round.Number)
		for _, c := range round.Contributions {
			fmt.Fprintf(&sb, "%s: %s\n", c.Participant, c.Text)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
