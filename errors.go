package bgammon

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedMove    = errors.New("malformed move")
	ErrInvalidSide      = errors.New("invalid side")
	ErrInvalidPoint     = errors.New("invalid point")
	ErrCheckerCount     = errors.New("checker count mismatch")
	ErrInvalidDie       = errors.New("invalid die value")
	ErrNotStarted       = errors.New("game not started")
	ErrAlreadyStarted   = errors.New("game already started")
	ErrAlreadyRolled    = errors.New("dice already rolled")
	ErrNoMovesRemaining = errors.New("no moves remaining")
	ErrGameFinished     = errors.New("game finished")
)

// RuleViolation is returned by a Rule that rejects a whole batch of moves.
type RuleViolation struct {
	Rule    string
	Message string
}

func (v *RuleViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Message)
}
