package bgammon

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Location is a move endpoint: a point index 0-23, Bar or Off.
type Location int8

// Symbolic endpoints. Bar is only valid as an origin and Off only as a destination.
const (
	Bar Location = 25
	Off Location = 26
)

// Point returns the location of the point with the provided index.
func Point(index int) Location {
	return Location(index)
}

// IsPoint reports whether l is one of the 24 track points.
func (l Location) IsPoint() bool {
	return l >= 0 && int(l) < BoardPoints
}

func (l Location) String() string {
	switch l {
	case Bar:
		return "bar"
	case Off:
		return "off"
	default:
		return strconv.Itoa(int(l))
	}
}

// ParseLocation parses a point index or one of the tokens bar and off.
func ParseLocation(token string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "bar":
		return Bar, nil
	case "off":
		return Off, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || v < 0 || v >= BoardPoints {
		return 0, fmt.Errorf("%w: invalid location %q", ErrMalformedMove, token)
	}
	return Location(v), nil
}

// Move carries a checker from one location to another.
type Move struct {
	From Location
	To   Location
}

func (m Move) String() string {
	return m.From.String() + "/" + m.To.String()
}

// validate checks the shape of a move without looking at the board.
func (m Move) validate() error {
	if !m.From.IsPoint() && m.From != Bar {
		return fmt.Errorf("%w: invalid origin %s", ErrMalformedMove, m.From)
	}
	if !m.To.IsPoint() && m.To != Off {
		return fmt.Errorf("%w: invalid destination %s", ErrMalformedMove, m.To)
	}
	return nil
}

// MovesFromPairs converts origin/destination token pairs into moves. Each
// pair must hold exactly two tokens.
func MovesFromPairs(pairs [][]string) ([]Move, error) {
	moves := make([]Move, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: move %d has %d elements", ErrMalformedMove, i+1, len(pair))
		}
		from, err := ParseLocation(pair[0])
		if err != nil {
			return nil, err
		}
		to, err := ParseLocation(pair[1])
		if err != nil {
			return nil, err
		}
		m := Move{From: from, To: to}
		if err := m.validate(); err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats moves as space separated from/to pairs.
func FormatMoves(moves []Move) []byte {
	var out bytes.Buffer
	for i, m := range moves {
		if i != 0 {
			out.WriteByte(' ')
		}
		out.WriteString(m.String())
	}
	return out.Bytes()
}

// SortMoves orders moves by origin and then destination, with bar first and off last.
func SortMoves(moves []Move) {
	rank := func(l Location) int {
		switch l {
		case Bar:
			return -1
		case Off:
			return BoardPoints
		default:
			return int(l)
		}
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return rank(moves[i].From) < rank(moves[j].From)
		}
		return rank(moves[i].To) < rank(moves[j].To)
	})
}
