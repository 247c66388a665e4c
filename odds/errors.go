package odds

import "fmt"

// DomainError reports an input outside the valid domain of a distribution
// function: a win rate outside [0,1], a win count outside the rule's
// support, or unusable rule parameters.
type DomainError struct {
	Param string
	Value float64
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("odds: %s=%v out of domain: %s", e.Param, e.Value, e.Msg)
}

// LengthMismatchError reports a reward table whose length does not match
// the distribution it is being folded against. This indicates a
// misconfigured event format, not a runtime condition.
type LengthMismatchError struct {
	Distribution int
	Rewards      int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("odds: reward table has %d entries, distribution has %d", e.Rewards, e.Distribution)
}
