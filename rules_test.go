package bgammon

import (
	"errors"
	"testing"
)

func TestBarPriorityRule(t *testing.T) {
	b := NewBoard()
	rule := BarPriorityRule{}

	if err := rule.Validate(SideA, []Move{{0, 3}}, []int{3, 5}, b); err != nil {
		t.Errorf("rule rejected a batch with an empty bar: %v", err)
	}

	mustSetPoint(t, b, 0, SideA, 1)
	if err := b.SetBar(SideA, 1); err != nil {
		t.Fatal(err)
	}
	if err := rule.Validate(SideA, []Move{{Bar, 3}}, []int{4, 5}, b); err != nil {
		t.Errorf("rule rejected a bar entry: %v", err)
	}

	err := rule.Validate(SideA, []Move{{Bar, 3}, {5, 9}}, []int{4, 4}, b)
	var violation *RuleViolation
	if !errors.As(err, &violation) {
		t.Fatalf("err = %v, want *RuleViolation", err)
	}
	if violation.Message == "" {
		t.Error("violation has no message")
	}

	if err := rule.Validate(SideB, []Move{{23, 20}}, []int{3, 5}, b); err != nil {
		t.Errorf("side B was held to side A's bar: %v", err)
	}
}

func TestBearOffReadinessRule(t *testing.T) {
	rule := BearOffReadinessRule{}
	b := homeBoard(t)
	if err := rule.Validate(SideA, []Move{{22, Off}}, []int{2, 3}, b); err != nil {
		t.Errorf("rule rejected a legal bear off: %v", err)
	}

	mustSetPoint(t, b, 18, SideA, 2)
	mustSetPoint(t, b, 10, SideA, 1)
	var violation *RuleViolation
	if err := rule.Validate(SideA, []Move{{10, 12}, {22, Off}}, []int{2, 2, 2, 2}, b); !errors.As(err, &violation) {
		t.Errorf("err = %v, want *RuleViolation", err)
	}
	if err := rule.Validate(SideA, []Move{{10, 12}}, []int{2, 3}, b); err != nil {
		t.Errorf("rule rejected a batch without bearing off: %v", err)
	}
}

func TestRuleFunc(t *testing.T) {
	var called bool
	rule := RuleFunc(func(side Side, moves []Move, distances []int, board *Board) error {
		called = true
		return &RuleViolation{Rule: "test", Message: "no"}
	})
	err := checkRules([]Rule{BarPriorityRule{}, rule}, SideA, nil, nil, NewBoard())
	if !called {
		t.Fatal("rule not called")
	}
	if err == nil || err.Error() != "test: no" {
		t.Errorf("err = %v", err)
	}
}
