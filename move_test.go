package bgammon

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		token   string
		want    Location
		wantErr bool
	}{
		{"0", 0, false},
		{"23", 23, false},
		{" 7 ", 7, false},
		{"bar", Bar, false},
		{"BAR", Bar, false},
		{"off", Off, false},
		{"24", 0, true},
		{"-1", 0, true},
		{"home", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseLocation(tt.token)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedMove) {
				t.Errorf("ParseLocation(%q) err = %v, want ErrMalformedMove", tt.token, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLocation(%q) = %v, %v, want %v", tt.token, got, err, tt.want)
		}
	}
}

func TestMovesFromPairs(t *testing.T) {
	moves, err := MovesFromPairs([][]string{{"bar", "3"}, {"5", "9"}, {"22", "off"}})
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{{Bar, 3}, {5, 9}, {22, Off}}
	if !reflect.DeepEqual(moves, want) {
		t.Errorf("moves = %v, want %v", moves, want)
	}

	bad := [][][]string{
		{{"1", "2", "3"}},
		{{"1"}},
		{{"off", "3"}},
		{{"3", "bar"}},
	}
	for _, pairs := range bad {
		if _, err := MovesFromPairs(pairs); !errors.Is(err, ErrMalformedMove) {
			t.Errorf("MovesFromPairs(%v) err = %v, want ErrMalformedMove", pairs, err)
		}
	}
}

func TestFormatAndSortMoves(t *testing.T) {
	moves := []Move{{22, Off}, {5, 9}, {Bar, 3}, {5, 7}}
	SortMoves(moves)
	if got := string(FormatMoves(moves)); got != "bar/3 5/7 5/9 22/off" {
		t.Errorf("FormatMoves = %q", got)
	}
}
