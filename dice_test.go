package bgammon

import (
	"errors"
	"reflect"
	"testing"
)

func TestExpandDistances(t *testing.T) {
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := 1; d2 <= 6; d2++ {
			got, err := ExpandDistances(d1, d2)
			if err != nil {
				t.Fatalf("ExpandDistances(%d, %d): %v", d1, d2, err)
			}
			want := []int{d1, d2}
			if d1 == d2 {
				want = []int{d1, d1, d1, d1}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("ExpandDistances(%d, %d) = %v, want %v", d1, d2, got, want)
			}
		}
	}
}

func TestExpandDistancesInvalid(t *testing.T) {
	for _, roll := range [][2]int{{0, 3}, {3, 7}, {-1, -1}} {
		if _, err := ExpandDistances(roll[0], roll[1]); !errors.Is(err, ErrInvalidDie) {
			t.Errorf("ExpandDistances(%d, %d) err = %v, want ErrInvalidDie", roll[0], roll[1], err)
		}
	}
}

func TestRandomDice(t *testing.T) {
	var seen [7]bool
	d := RandomDice{}
	for i := 0; i < 1000; i++ {
		v1, v2 := d.Roll()
		if !ValidDie(v1) || !ValidDie(v2) {
			t.Fatalf("Roll() = %d, %d", v1, v2)
		}
		seen[v1], seen[v2] = true, true
	}
	for v := 1; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("value %d never rolled", v)
		}
	}
}

func TestSeededDice(t *testing.T) {
	a, b := NewSeededDice(42), NewSeededDice(42)
	for i := 0; i < 50; i++ {
		a1, a2 := a.Roll()
		b1, b2 := b.Roll()
		if a1 != b1 || a2 != b2 {
			t.Fatalf("roll %d differs: %d-%d vs %d-%d", i, a1, a2, b1, b2)
		}
		if !ValidDie(a1) || !ValidDie(a2) {
			t.Fatalf("Roll() = %d, %d", a1, a2)
		}
	}
}

func TestFixedDice(t *testing.T) {
	d := NewFixedDice(6, 1, 3, 3)
	rolls := [][2]int{{6, 1}, {3, 3}, {6, 1}}
	for _, want := range rolls {
		v1, v2 := d.Roll()
		if v1 != want[0] || v2 != want[1] {
			t.Errorf("Roll() = %d-%d, want %d-%d", v1, v2, want[0], want[1])
		}
	}
}
