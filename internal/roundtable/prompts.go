package roundtable

import (
	"fmt"
	"strings"

	"github.com/mamipour/roundtable/internal/llm"
)

const participantSystemPrompt = "You are a thoughtful participant in a roundtable discussion. " +
	"Your goal is to contribute meaningful insights, build on others' ideas, " +
	"and help the group reach a well-reasoned conclusion."

// buildContext assembles the prior-round contributions shown to a participant,
// in round order then registration order, excluding the participant's own
// text. Empty for round 1.
func buildContext(d *Discussion, label string) string {
	if len(d.Rounds) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, round := range d.Rounds {
		fmt.Fprintf(&sb, "--- Round %d ---\n", round.Number)
		for _, c := range round.Contributions {
			if c.Participant == label {
				continue
			}
			fmt.Fprintf(&sb, "%s: %s\n", c.Participant, c.Text)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (rt *Roundtable) systemPrompt() string {
	if len(rt.tools) == 0 {
		return participantSystemPrompt
	}
	var sb strings.Builder
	sb.WriteString(participantSystemPrompt)
	sb.WriteString("\n\nAvailable tools for research:\n")
	for _, t := range rt.tools {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Name, t.Description)
	}
	return sb.String()
}

func (rt *Roundtable) buildPrompt(question string, round int, context string) []llm.Message {
	var user string
	if round == 1 {
		user = fmt.Sprintf(
			"We're discussing: %s\n\n"+
				"This is Round %d. Please share your initial thoughts and insights. "+
				"Be specific, insightful, and concise (2-4 sentences).",
			question, round)
	} else {
		user = fmt.Sprintf(
			"We're discussing: %s\n\n"+
				"This is Round %d. Here's what others have said:\n%s\n\n"+
				"Please respond by:\n"+
				"1. Building on the strongest ideas\n"+
				"2. Adding new perspectives or addressing gaps\n"+
				"3. Helping move toward a conclusion\n\n"+
				"Keep it concise (2-4 sentences).",
			question, round, context)
	}
	return []llm.Message{
		{Role: llm.RoleSystem, Content: rt.systemPrompt()},
		{Role: llm.RoleUser, Content: user},
	}
}
