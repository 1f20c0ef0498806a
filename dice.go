package bgammon

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
)

// Dice rolls a pair of six-sided dice.
type Dice interface {
	Roll() (int, int)
}

// RandomDice rolls using crypto/rand.
type RandomDice struct{}

func (RandomDice) Roll() (int, int) {
	return RandInt(6) + 1, RandInt(6) + 1
}

// RandInt returns a uniformly distributed value in [0, max).
func RandInt(max int) int {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(i.Int64())
}

// SeededDice rolls from a deterministic source. Two SeededDice created
// with the same seed produce the same sequence of rolls.
type SeededDice struct {
	r *mathrand.Rand
}

func NewSeededDice(seed int64) *SeededDice {
	return &SeededDice{
		r: mathrand.New(mathrand.NewSource(seed)),
	}
}

func (d *SeededDice) Roll() (int, int) {
	return d.r.Intn(6) + 1, d.r.Intn(6) + 1
}

// FixedDice replays a scripted sequence of die values, two per roll. It
// wraps around once the sequence is exhausted. A sequence of only doubles
// never settles an opening roll.
type FixedDice struct {
	Values []int
	next   int
}

func NewFixedDice(values ...int) *FixedDice {
	return &FixedDice{Values: values}
}

func (d *FixedDice) Roll() (int, int) {
	if len(d.Values) == 0 {
		return 0, 0
	}
	v1 := d.Values[d.next%len(d.Values)]
	v2 := d.Values[(d.next+1)%len(d.Values)]
	d.next += 2
	return v1, v2
}

// ValidDie reports whether v is a face of a six-sided die.
func ValidDie(v int) bool {
	return v >= 1 && v <= 6
}

// ExpandDistances returns the move distances granted by a roll: both values,
// or four copies of the value when doubles are rolled.
func ExpandDistances(d1 int, d2 int) ([]int, error) {
	if !ValidDie(d1) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDie, d1)
	} else if !ValidDie(d2) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDie, d2)
	}
	if d1 == d2 {
		return []int{d1, d1, d1, d1}, nil
	}
	return []int{d1, d2}, nil
}
