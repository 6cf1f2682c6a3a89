package roundtable

import (
	"errors"
	"fmt"
)

// Configuration errors, surfaced at construction time before any network call.
var (
	ErrNoParticipants = errors.New("roundtable: no participants configured")
	ErrNoModerator    = errors.New("roundtable: moderator enabled but not configured")
)

// ErrUnknownFormat reports an unsupported export format.
var ErrUnknownFormat = errors.New("roundtable: unknown export format")

// ProviderError reports a failed model call. It aborts the discussion in
// progress; completed rounds are discarded.
type ProviderError struct {
	Participant string
	Model       string
	Err         error
}

func (e *ProviderError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("roundtable: %s (%s): %v", e.Participant, e.Model, e.Err)
	}
	return fmt.Sprintf("roundtable: %s: %v", e.Participant, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
