package study

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Outcome is the learner's self-reported recall quality for a single word.
type Outcome string

const (
	OutcomeKnown      Outcome = "known"
	OutcomeUnfamiliar Outcome = "unfamiliar"
	OutcomeForgotten  Outcome = "forgotten"
)

func (Outcome) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(OutcomeKnown),
			string(OutcomeUnfamiliar),
			string(OutcomeForgotten),
		},
		Description: "Self-reported recall quality",
		Examples:    []any{OutcomeKnown},
	}
}

// IsValid reports whether o is one of the three defined recall signals.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeKnown, OutcomeUnfamiliar, OutcomeForgotten:
		return true
	}
	return false
}

// Validate implements huma's validation hook so invalid values are rejected
// before reaching the service.
func (o Outcome) Validate() error {
	if !o.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, string(o))
	}
	return nil
}

func (o Outcome) String() string {
	return string(o)
}
