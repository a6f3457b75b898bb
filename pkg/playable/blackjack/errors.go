package blackjack

import (
	"errors"
	"fmt"
)

// ErrNoPlayers is returned when a game is created without any seats
var ErrNoPlayers = errors.New("game requires at least one player")

// ErrInconsistentState is a fatal error when the round state breaks an internal invariant
var ErrInconsistentState = errors.New("inconsistent round state")

// ErrNoHoleCard happens when the showdown starts without a dealer hole card
var ErrNoHoleCard = errors.New("dealer hole card not set at showdown")

// ErrRoundNotOver is returned when the next round is requested before settlement
var ErrRoundNotOver = errors.New("the round is not over")

// ErrReplayDiverged is returned when a replayed action is rejected
var ErrReplayDiverged = errors.New("replay diverged from history")

// ValidationError is the reason an action was rejected
// A rejected action leaves the round as it was and is recorded as INVALID.
type ValidationError struct {
	Action ActionType
	Reason string
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s rejected: %s", v.Action, v.Reason)
}

func reject(action ActionType, format string, a ...interface{}) *ValidationError {
	return &ValidationError{
		Action: action,
		Reason: fmt.Sprintf(format, a...),
	}
}

func inconsistent(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInconsistentState, fmt.Sprintf(format, a...))
}
