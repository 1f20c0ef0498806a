package bgammon

import "fmt"

// Rule validates a whole batch of moves before any of them is applied. A
// rule returns a *RuleViolation to reject the batch.
type Rule interface {
	Validate(side Side, moves []Move, distances []int, board *Board) error
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(side Side, moves []Move, distances []int, board *Board) error

func (f RuleFunc) Validate(side Side, moves []Move, distances []int, board *Board) error {
	return f(side, moves, distances, board)
}

// DefaultRules returns the rules enforced by a new Game.
func DefaultRules() []Rule {
	return []Rule{
		BarPriorityRule{},
		BearOffReadinessRule{},
	}
}

// BarPriorityRule rejects batches with moves that do not enter from the
// bar while the side still has checkers on the bar.
type BarPriorityRule struct{}

func (BarPriorityRule) Validate(side Side, moves []Move, _ []int, board *Board) error {
	waiting := board.BarCount(side)
	if waiting == 0 {
		return nil
	}
	for _, m := range moves {
		if m.From != Bar {
			return &RuleViolation{
				Rule:    "bar priority",
				Message: fmt.Sprintf("%s has %d checker(s) on the bar and must enter them before moving other checkers.", side, waiting),
			}
		}
	}
	return nil
}

// BearOffReadinessRule rejects batches that bear off before every checker
// of the side has reached its home quadrant.
type BearOffReadinessRule struct{}

func (BearOffReadinessRule) Validate(side Side, moves []Move, _ []int, board *Board) error {
	for _, m := range moves {
		if m.To == Off && !board.AllCheckersHome(side) {
			from, to := HomeRange(side)
			return &RuleViolation{
				Rule:    "bear off",
				Message: fmt.Sprintf("%s cannot bear off yet: all checkers must first be in the home quadrant (%d-%d).", side, from, to),
			}
		}
	}
	return nil
}

// checkRules runs rules in order and returns the first violation.
func checkRules(rules []Rule, side Side, moves []Move, distances []int, board *Board) error {
	for _, rule := range rules {
		if err := rule.Validate(side, moves, distances, board); err != nil {
			return err
		}
	}
	return nil
}
