package baccarat

import "errors"

var (
	ErrRoundResolved      = errors.New("round already resolved")
	ErrDecisionNotAllowed = errors.New("decision not allowed in this phase")
)

// InvalidStateError reports a RoundState that could not have been produced by
// NewRound and Submit, such as an unknown phase or a hand of the wrong size.
type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

var ErrNoShoe = errors.New("no shoe to draw from")
