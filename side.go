package bgammon

// Side identifies the owner of a checker. The zero value belongs to neither side.
type Side int8

const (
	SideNone Side = iota
	SideA         // X, moves from point 0 toward point 23.
	SideB         // O, moves from point 23 toward point 0.
)

// Checker is a single piece on the board. Only its side matters.
type Checker = Side

// CheckersPerSide is the number of checkers each side starts with.
const CheckersPerSide = 15

// Valid reports whether s is SideA or SideB.
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SideA:
		return SideB
	case SideB:
		return SideA
	default:
		return SideNone
	}
}

// Direction returns +1 for SideA and -1 for SideB.
func (s Side) Direction() int {
	switch s {
	case SideA:
		return 1
	case SideB:
		return -1
	default:
		return 0
	}
}

// Symbol returns the checker symbol shown for the side.
func (s Side) Symbol() string {
	switch s {
	case SideA:
		return "X"
	case SideB:
		return "O"
	default:
		return "-"
	}
}

func (s Side) String() string {
	return s.Symbol()
}

// HomeRange returns the first and last point of the side's home quadrant.
func HomeRange(s Side) (from int, to int) {
	if s == SideB {
		return 0, 5
	}
	return 18, 23
}

// InHome reports whether point lies in the side's home quadrant.
func InHome(s Side, point int) bool {
	from, to := HomeRange(s)
	return point >= from && point <= to
}

// entryPoint is the pseudo point a side enters from when leaving the bar.
func entryPoint(s Side) int {
	if s == SideB {
		return BoardPoints
	}
	return -1
}

// exitPoint is the pseudo point a side reaches when bearing off.
func exitPoint(s Side) int {
	if s == SideB {
		return -1
	}
	return BoardPoints
}
