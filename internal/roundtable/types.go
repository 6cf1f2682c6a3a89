package roundtable

import (
	"context"
	"time"

	"github.com/mamipour/roundtable/internal/llm"
)

// Completer is the chat capability a participant or moderator is bound to.
// Satisfied by *llm.Client; mocked in tests.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// Participant is one configured model taking part in the discussion. Its
// contribution log is append-only and written only by the orchestrator.
type Participant struct {
	Label  string
	Model  string
	client Completer

	contributions []string
}

// NewParticipant binds a labeled model to its chat client.
func NewParticipant(label, model string, client Completer) *Participant {
	return &Participant{Label: label, Model: model, client: client}
}

// Contributions returns the participant's own past contribution texts.
func (p *Participant) Contributions() []string { return p.contributions }

// Contribution is a single participant's text in one round.
type Contribution struct {
	Participant string `json:"participant"`
	Model       string `json:"model"`
	Text        string `json:"text"`
}

// Round is one pass where every participant contributed exactly once.
type Round struct {
	Number        int            `json:"round_number"`
	Contributions []Contribution `json:"contributions"`
}

// Discussion is a complete roundtable discussion record.
type Discussion struct {
	ID           string    `json:"id"`
	Question     string    `json:"question"`
	StartedAt    time.Time `json:"started_at"`
	Rounds       []Round   `json:"rounds"`
	FinalSummary string    `json:"final_summary,omitempty"`
}
