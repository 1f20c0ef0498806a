package bgammon

import (
	"fmt"
)

// board is stored as 24 stacks indexed 0-23 from side A's starting point
// side A travels up the indexes and bears off past 23, side B travels down and bears off past 0
// bar and off counts are indexed by Side

// BoardPoints is the number of points on the track.
const BoardPoints = 24

type Board struct {
	points [BoardPoints][]Side // Bottom of each stack first, top last.
	bar    [3]int
	off    [3]int
}

// NewBoard returns a board with the standard starting layout.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmptyBoard returns a board with no checkers on it.
func NewEmptyBoard() *Board {
	return &Board{}
}

// Reset restores the standard starting layout.
func (b *Board) Reset() {
	*b = Board{}
	layout := []struct {
		point int
		side  Side
		count int
	}{
		{0, SideA, 2},
		{11, SideA, 5},
		{16, SideA, 3},
		{18, SideA, 5},
		{23, SideB, 2},
		{12, SideB, 5},
		{7, SideB, 3},
		{5, SideB, 5},
	}
	for _, l := range layout {
		b.points[l.point] = stack(l.side, l.count)
	}
}

func stack(side Side, count int) []Side {
	s := make([]Side, count)
	for i := range s {
		s[i] = side
	}
	return s
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		bar: b.bar,
		off: b.off,
	}
	for i := range b.points {
		c.points[i] = append([]Side(nil), b.points[i]...)
	}
	return c
}

// SetPoint replaces the contents of a point with count checkers of side.
func (b *Board) SetPoint(point int, side Side, count int) error {
	if point < 0 || point >= BoardPoints {
		return fmt.Errorf("%w: %d", ErrInvalidPoint, point)
	} else if count < 0 || (count > 0 && !side.Valid()) {
		return fmt.Errorf("%w: %d checkers of side %d", ErrInvalidPoint, count, side)
	}
	b.points[point] = stack(side, count)
	return nil
}

// SetBar sets the number of side's checkers waiting on the bar.
func (b *Board) SetBar(side Side, count int) error {
	if !side.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	b.bar[side] = count
	return nil
}

// SetOff sets the number of side's checkers borne off.
func (b *Board) SetOff(side Side, count int) error {
	if !side.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	b.off[side] = count
	return nil
}

// Top returns the side owning the top checker of a point, or SideNone when
// the point is empty.
func (b *Board) Top(point int) Side {
	if point < 0 || point >= BoardPoints || len(b.points[point]) == 0 {
		return SideNone
	}
	s := b.points[point]
	return s[len(s)-1]
}

// Count returns the number of checkers stacked on a point.
func (b *Board) Count(point int) int {
	if point < 0 || point >= BoardPoints {
		return 0
	}
	return len(b.points[point])
}

// BarCount returns the number of side's checkers on the bar.
func (b *Board) BarCount(side Side) int {
	if !side.Valid() {
		return 0
	}
	return b.bar[side]
}

// OffCount returns the number of side's checkers borne off.
func (b *Board) OffCount(side Side) int {
	if !side.Valid() {
		return 0
	}
	return b.off[side]
}

// PointCount returns the number of side's checkers on the track.
func (b *Board) PointCount(side Side) int {
	var n int
	for _, s := range b.points {
		for _, checker := range s {
			if checker == side {
				n++
			}
		}
	}
	return n
}

// Verify checks that every side still accounts for all of its checkers.
func (b *Board) Verify() error {
	for _, side := range []Side{SideA, SideB} {
		total := b.PointCount(side) + b.bar[side] + b.off[side]
		if total != CheckersPerSide {
			return fmt.Errorf("%w: side %s has %d checkers", ErrCheckerCount, side, total)
		}
	}
	return nil
}

// DistanceFor returns the number of points a move covers in side's
// direction of travel. The bar is the point just before side's first point
// and off is the point just past its last. A result of zero or less means
// the move goes the wrong way.
func (b *Board) DistanceFor(side Side, from Location, to Location) int {
	f, t := int(from), int(to)
	if from == Bar {
		f = entryPoint(side)
	}
	if to == Off {
		t = exitPoint(side)
	}
	return (t - f) * side.Direction()
}

// CanCapture reports whether point holds a single opposing checker.
func (b *Board) CanCapture(side Side, point int) bool {
	return b.Count(point) == 1 && b.Top(point) == side.Opponent()
}

// IsBlocked reports whether point holds two or more opposing checkers.
func (b *Board) IsBlocked(side Side, point int) bool {
	return b.Count(point) >= 2 && b.Top(point) == side.Opponent()
}

// CanEnterFromBar reports whether a checker leaving the bar may land on point.
func (b *Board) CanEnterFromBar(side Side, point int) bool {
	return point >= 0 && point < BoardPoints && !b.IsBlocked(side, point)
}

// AllCheckersHome reports whether every checker side has on the track is
// within its home quadrant. A side with checkers on the bar is never home.
func (b *Board) AllCheckersHome(side Side) bool {
	if !side.Valid() || b.bar[side] > 0 {
		return false
	}
	for point, s := range b.points {
		if InHome(side, point) {
			continue
		}
		for _, checker := range s {
			if checker == side {
				return false
			}
		}
	}
	return true
}

// MoveOutcome describes the result of a single move.
type MoveOutcome struct {
	Succeeded    bool
	Captured     bool
	DistanceUsed int
	Message      string
}

// ApplyMove moves one of side's checkers without consulting the dice. Rule
// violations are reported through the outcome and leave the board untouched.
// An error is returned only when side or the move itself is malformed.
func (b *Board) ApplyMove(side Side, from Location, to Location) (MoveOutcome, error) {
	m := Move{From: from, To: to}
	if !side.Valid() {
		return MoveOutcome{}, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	} else if err := m.validate(); err != nil {
		return MoveOutcome{}, err
	}
	distance := b.DistanceFor(side, from, to)
	if reason := b.checkMove(side, m, distance); reason != "" {
		return MoveOutcome{Message: reason}, nil
	}
	return b.execute(side, m, distance), nil
}

// checkMove returns a description of the first rule the move breaks, or
// an empty string when the move is legal on the current board.
func (b *Board) checkMove(side Side, m Move, distance int) string {
	if distance <= 0 {
		return fmt.Sprintf("Invalid move %s: %s must move %s, this move goes %d point(s) the wrong way.", m, side, travelDescription(side), -distance)
	}

	if m.From == Bar {
		if b.bar[side] == 0 {
			return fmt.Sprintf("%s has no checkers on the bar.", side)
		}
	} else {
		point := int(m.From)
		top := b.Top(point)
		if top == SideNone {
			return fmt.Sprintf("There are no checkers at point %d.", point)
		} else if top != side {
			return fmt.Sprintf("The checker at point %d does not belong to %s.", point, side)
		}
	}

	if m.To == Off {
		from, to := HomeRange(side)
		if !b.AllCheckersHome(side) {
			return fmt.Sprintf("%s cannot bear off yet: all checkers must first be in the home quadrant (%d-%d).", side, from, to)
		} else if !m.From.IsPoint() || !InHome(side, int(m.From)) {
			return fmt.Sprintf("%s cannot bear off from %s: only checkers in the home quadrant (%d-%d) may bear off.", side, m.From, from, to)
		}
		return ""
	}

	point := int(m.To)
	if point < 0 || point >= BoardPoints {
		return fmt.Sprintf("Invalid move %s: destination is off the board.", m)
	} else if b.IsBlocked(side, point) {
		return fmt.Sprintf("Cannot move to %d: point is blocked by %d opposing checkers.", point, b.Count(point))
	}
	return ""
}

func travelDescription(side Side) string {
	if side == SideB {
		return "from 23 toward 0"
	}
	return "from 0 toward 23"
}

// execute performs a move that has already passed checkMove.
func (b *Board) execute(side Side, m Move, distance int) MoveOutcome {
	outcome := MoveOutcome{
		Succeeded:    true,
		DistanceUsed: distance,
	}

	if m.To.IsPoint() && b.CanCapture(side, int(m.To)) {
		b.pop(int(m.To))
		b.bar[side.Opponent()]++
		outcome.Captured = true
	}

	if m.From == Bar {
		b.bar[side]--
	} else {
		b.pop(int(m.From))
	}

	if m.To == Off {
		b.off[side]++
		outcome.Message = fmt.Sprintf("%s bore off from %s using %d.", side, m.From, distance)
		return outcome
	}

	b.points[m.To] = append(b.points[m.To], side)
	outcome.Message = fmt.Sprintf("%s moved from %s to %s using %d.", side, m.From, m.To, distance)
	if outcome.Captured {
		outcome.Message += " Hit an opposing checker."
	}
	return outcome
}

func (b *Board) pop(point int) {
	s := b.points[point]
	b.points[point] = s[:len(s)-1]
}

// BatchResult is the outcome of applying a batch of moves.
type BatchResult struct {
	Results            []bool // One entry per submitted move.
	DistancesUsed      []int
	DistancesRemaining []int
	Log                []string
}

// Applied returns the number of moves that succeeded.
func (r BatchResult) Applied() int {
	var n int
	for _, ok := range r.Results {
		if ok {
			n++
		}
	}
	return n
}

// ApplyMoveBatch applies moves in order, each consuming one matching
// distance from the pool. A rejected move leaves the board as the previous
// move left it and evaluation continues with the next move; successful
// moves are never rolled back. Malformed moves are reported as an error
// before any move is applied.
func (b *Board) ApplyMoveBatch(side Side, moves []Move, distances []int) (BatchResult, error) {
	if !side.Valid() {
		return BatchResult{}, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	for i, m := range moves {
		if err := m.validate(); err != nil {
			return BatchResult{}, fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	result := BatchResult{
		Results:            make([]bool, 0, len(moves)),
		DistancesUsed:      []int{},
		DistancesRemaining: append([]int{}, distances...),
	}
	for _, m := range moves {
		ok, message := b.applyFromPool(side, m, &result)
		result.Results = append(result.Results, ok)
		result.Log = append(result.Log, message)
	}
	return result, nil
}

func (b *Board) applyFromPool(side Side, m Move, result *BatchResult) (bool, string) {
	if m.From != Bar && b.bar[side] > 0 {
		return false, fmt.Sprintf("%s must enter %d checker(s) from the bar before moving other checkers.", side, b.bar[side])
	}

	distance := b.DistanceFor(side, m.From, m.To)
	index := indexOf(result.DistancesRemaining, distance)
	if index < 0 {
		if distance <= 0 {
			return false, fmt.Sprintf("Invalid move %s: %s must move %s, this move goes %d point(s) the wrong way. Available dice: %v", m, side, travelDescription(side), -distance, result.DistancesRemaining)
		}
		return false, fmt.Sprintf("No die with value %d is available. Available dice: %v", distance, result.DistancesRemaining)
	}

	if reason := b.checkMove(side, m, distance); reason != "" {
		return false, reason
	}
	outcome := b.execute(side, m, distance)

	result.DistancesRemaining = append(result.DistancesRemaining[:index], result.DistancesRemaining[index+1:]...)
	result.DistancesUsed = append(result.DistancesUsed, distance)
	return true, outcome.Message
}

func indexOf(values []int, v int) int {
	for i := range values {
		if values[i] == v {
			return i
		}
	}
	return -1
}

// LegalMoves returns every single move side could make with one of the
// provided distances on the current board: bar entries while checkers wait
// on the bar, otherwise moves from each owned point, including exact
// bear-offs once all checkers are home.
func (b *Board) LegalMoves(side Side, distances []int) []Move {
	if !side.Valid() {
		return nil
	}

	var moves []Move
	seen := make(map[int]bool)
	for _, distance := range distances {
		if distance <= 0 || seen[distance] {
			continue
		}
		seen[distance] = true

		var origins []Location
		if b.bar[side] > 0 {
			origins = []Location{Bar}
		} else {
			for point := 0; point < BoardPoints; point++ {
				if b.Top(point) == side {
					origins = append(origins, Location(point))
				}
			}
		}

		for _, from := range origins {
			start := int(from)
			if from == Bar {
				start = entryPoint(side)
			}
			dest := start + distance*side.Direction()
			var to Location
			switch {
			case dest >= 0 && dest < BoardPoints:
				to = Location(dest)
			case dest == exitPoint(side):
				to = Off
			default:
				continue
			}
			m := Move{From: from, To: to}
			if b.checkMove(side, m, distance) == "" {
				moves = append(moves, m)
			}
		}
	}
	SortMoves(moves)
	return moves
}

// Snapshot is a copy of the board state.
type Snapshot struct {
	Points [BoardPoints][]Side
	Bar    map[Side]int
	Off    map[Side]int
}

// Snapshot returns a deep copy of the board state.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i := range b.points {
		s.Points[i] = append([]Side{}, b.points[i]...)
	}
	s.Bar = map[Side]int{SideA: b.bar[SideA], SideB: b.bar[SideB]}
	s.Off = map[Side]int{SideA: b.off[SideA], SideB: b.off[SideB]}
	return s
}
