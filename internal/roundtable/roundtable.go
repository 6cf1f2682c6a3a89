package roundtable

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mamipour/roundtable/internal/config"
	"github.com/mamipour/roundtable/internal/llm"
	"github.com/mamipour/roundtable/internal/tools"
)

// Moderators summarize rather than brainstorm, so they run cooler than the
// participants regardless of the configured temperature.
const moderatorTemperature = 0.3

// Options configure a Roundtable.
type Options struct {
	MaxRounds        int
	Temperature      float64
	ModeratorEnabled bool
	ToolsEnabled     bool
}

// Roundtable orchestrates a multi-participant discussion. One instance runs
// one discussion at a time; concurrent Discuss calls on the same instance
// would interleave writes to the participant contribution logs.
type Roundtable struct {
	opts           Options
	participants   []*Participant
	moderator      Completer
	moderatorModel string
	tools          []tools.Tool

	// Optional progress hooks, invoked synchronously from Discuss.
	OnRoundStart   func(round int)
	OnContribution func(round int, c Contribution)
	OnSummary      func(text string)
}

// New creates a Roundtable from already-resolved participants and moderator.
func New(participants []*Participant, moderator Completer, available []tools.Tool, opts Options) (*Roundtable, error) {
	if opts.MaxRounds < 1 {
		return nil, fmt.Errorf("roundtable: max rounds must be >= 1, got %d", opts.MaxRounds)
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if opts.ModeratorEnabled && moderator == nil {
		return nil, ErrNoModerator
	}
	rt := &Roundtable{
		opts:         opts,
		participants: participants,
	}
	if opts.ModeratorEnabled {
		rt.moderator = moderator
	}
	if opts.ToolsEnabled {
		rt.tools = available
	}
	return rt, nil
}

// FromConfig resolves one chat client per configured participant, plus the
// moderator and tool set when enabled, and builds a Roundtable.
func FromConfig(cfg *config.Config, opts Options) (*Roundtable, error) {
	participants := make([]*Participant, 0, len(cfg.Participants))
	for _, mc := range cfg.Participants {
		client := llm.NewClient(mc.Model, mc.APIKey, mc.BaseURL, opts.Temperature)
		participants = append(participants, NewParticipant(mc.Label, mc.Model, client))
	}

	var moderator Completer
	var moderatorModel string
	if opts.ModeratorEnabled {
		if cfg.Moderator == nil {
			return nil, ErrNoModerator
		}
		moderator = llm.NewClient(cfg.Moderator.Model, cfg.Moderator.APIKey, cfg.Moderator.BaseURL, moderatorTemperature)
		moderatorModel = cfg.Moderator.Model
	}

	var available []tools.Tool
	if opts.ToolsEnabled {
		available = tools.Available(cfg.TavilyAPIKey)
	}

	rt, err := New(participants, moderator, available, opts)
	if err != nil {
		return nil, err
	}
	rt.moderatorModel = moderatorModel
	return rt, nil
}

// Participants returns the registered participants in order.
func (rt *Roundtable) Participants() []*Participant { return rt.participants }

// Tools returns the advertised tool set, empty unless tools are enabled.
func (rt *Roundtable) Tools() []tools.Tool { return rt.tools }

// Discuss conducts a full discussion on the question: MaxRounds sequential
// rounds, then one moderator synthesis when enabled. Any provider failure
// aborts the discussion and the partial record is discarded.
func (rt *Roundtable) Discuss(ctx context.Context, question string) (*Discussion, error) {
	d := &Discussion{
		ID:        uuid.NewString(),
		Question:  question,
		StartedAt: time.Now().UTC(),
	}

	for number := 1; number <= rt.opts.MaxRounds; number++ {
		if rt.OnRoundStart != nil {
			rt.OnRoundStart(number)
		}
		round, err := rt.runRound(ctx, number, d)
		if err != nil {
			return nil, err
		}
		d.Rounds = append(d.Rounds, round)
	}

	if rt.moderator != nil {
		summary, err := rt.summarize(ctx, d)
		if err != nil {
			return nil, err
		}
		d.FinalSummary = summary
		if rt.OnSummary != nil {
			rt.OnSummary(summary)
		}
	}

	return d, nil
}

func (rt *Roundtable) runRound(ctx context.Context, number int, d *Discussion) (Round, error) {
	round := Round{Number: number}
	for _, p := range rt.participants {
		if err := ctx.Err(); err != nil {
			return Round{}, fmt.Errorf("roundtable: %w", err)
		}

		msgs := rt.buildPrompt(d.Question, number, buildContext(d, p.Label))
		text, err := p.client.Complete(ctx, msgs)
		if err != nil {
			return Round{}, &ProviderError{Participant: p.Label, Model: p.Model, Err: err}
		}

		p.contributions = append(p.contributions, text)
		c := Contribution{Participant: p.Label, Model: p.Model, Text: text}
		round.Contributions = append(round.Contributions, c)
		if rt.OnContribution != nil {
			rt.OnContribution(number, c)
		}
	}
	return round, nil
}
