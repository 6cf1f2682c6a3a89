package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/mamipour/roundtable/internal/roundtable"
	"github.com/mamipour/roundtable/internal/tools"
)

const ruleWidth = 80

// PrintBanner prints the discussion header: question, participants, tool set.
func PrintBanner(question string, participants []string, toolNames []string) {
	fmt.Printf("\n%s %s\n\n", color.Cyan.Render("Question:"), color.Bold.Render(question))
	fmt.Printf("Participants: %d\n", len(participants))
	for _, p := range participants {
		fmt.Printf("  - %s\n", p)
	}
	if len(toolNames) > 0 {
		fmt.Printf("Tools: %d available\n", len(toolNames))
		for _, name := range toolNames {
			fmt.Printf("  - %s\n", name)
		}
	}
	fmt.Printf("\n%s\n\n", strings.Repeat("=", ruleWidth))
}

// PrintRoundStart prints a round header.
func PrintRoundStart(round, maxRounds int) {
	fmt.Printf("%s\n%s\n\n",
		color.Yellow.Sprintf("Round %d/%d", round, maxRounds),
		strings.Repeat("-", ruleWidth),
	)
}

// PrintContribution prints one participant's contribution.
func PrintContribution(c roundtable.Contribution) {
	fmt.Printf("%s (%s):\n%s\n\n",
		color.Bold.Render(c.Participant),
		color.Gray.Render(c.Model),
		c.Text,
	)
}

// PrintSummary prints the moderator's synthesis.
func PrintSummary(summary string) {
	fmt.Printf("%s\n%s\n\n%s\n\n%s\n",
		strings.Repeat("=", ruleWidth),
		color.Cyan.Render("Final Summary"),
		summary,
		strings.Repeat("=", ruleWidth),
	)
}

// PrintToolStatus prints one tool's availability line.
func PrintToolStatus(s tools.Status) {
	if s.Available {
		fmt.Printf("%s %s\n", color.Green.Render("[ok]"), s.Name)
		return
	}
	fmt.Printf("%s %s", color.Red.Render("[--]"), s.Name)
	if s.Hint != "" {
		fmt.Printf(" (%s)", s.Hint)
	}
	fmt.Println()
}

// WriteFile writes exported content to path.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}
