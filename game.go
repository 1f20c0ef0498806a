package bgammon

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is the phase of a game.
type State int8

const (
	StateNotStarted State = iota
	StateAwaitingRoll
	StateAwaitingMoves
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateAwaitingRoll:
		return "awaiting roll"
	case StateAwaitingMoves:
		return "awaiting moves"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", s)
	}
}

// Game controls turn order, dice and move submission for a single game
// played to 15 checkers off. A Game is not safe for concurrent use; all
// calls must come from a single goroutine.
type Game struct {
	Player1 Player
	Player2 Player

	id        string
	board     *Board
	dice      Dice
	rules     []Rule
	logger    *zap.Logger
	state     State
	turn      Side
	remaining int
	roll      [2]int
	opening   [2]int
	distances []int
	moves     []Move // Moves played this turn.
	winner    Side
	started   time.Time
	replay    [][]byte
}

// Option configures a Game.
type Option func(g *Game)

// WithDice sets the dice used for every roll.
func WithDice(d Dice) Option {
	return func(g *Game) {
		g.dice = d
	}
}

// WithRules replaces the rules validated before each batch of moves.
func WithRules(rules ...Rule) Option {
	return func(g *Game) {
		g.rules = rules
	}
}

// WithBoard starts the game from the provided board instead of the
// standard layout.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// WithLogger sets the logger used to trace turns.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// NewGame returns a game between two players. The first player plays side
// A and the second plays side B.
func NewGame(name1 string, name2 string, options ...Option) *Game {
	g := &Game{
		Player1: NewPlayer(name1, SideA),
		Player2: NewPlayer(name2, SideB),
		id:      uuid.NewString(),
		dice:    RandomDice{},
		rules:   DefaultRules(),
		logger:  zap.NewNop(),
	}
	for _, o := range options {
		o(g)
	}
	if g.board == nil {
		g.board = NewBoard()
	}
	g.logger = g.logger.With(zap.String("game", g.id))
	return g
}

// Start decides which side moves first and rolls its dice. A finished game
// is reset to the standard layout and started again.
func (g *Game) Start() error {
	switch g.state {
	case StateAwaitingRoll, StateAwaitingMoves:
		return ErrAlreadyStarted
	case StateFinished:
		g.board.Reset()
		g.winner = SideNone
		g.replay = nil
		g.id = uuid.NewString()
	}

	first, err := g.rollForTurnOrder()
	if err != nil {
		return err
	}
	g.turn = first
	g.state = StateAwaitingRoll
	g.started = time.Now()
	g.replay = append(g.replay, []byte(fmt.Sprintf("i %d %s %s %s", g.started.Unix(), g.Player1.Name, g.Player2.Name, g.id)))
	g.logger.Info("game started", zap.Stringer("first", first), zap.Int("roll1", g.opening[0]), zap.Int("roll2", g.opening[1]))

	_, err = g.RollDice()
	return err
}

// rollForTurnOrder rolls one die per side until they differ. Side A takes
// the first die and side B the second. The higher die moves first.
func (g *Game) rollForTurnOrder() (Side, error) {
	for {
		d1, d2 := g.dice.Roll()
		if !ValidDie(d1) || !ValidDie(d2) {
			return SideNone, fmt.Errorf("%w: opening roll %d-%d", ErrInvalidDie, d1, d2)
		}
		g.opening = [2]int{d1, d2}
		switch {
		case d1 > d2:
			return SideA, nil
		case d2 > d1:
			return SideB, nil
		}
		g.logger.Debug("opening roll tied", zap.Int("value", d1))
	}
}

// RollDice rolls the dice for the side to move.
func (g *Game) RollDice() ([2]int, error) {
	switch g.state {
	case StateNotStarted:
		return [2]int{}, ErrNotStarted
	case StateAwaitingMoves:
		return [2]int{}, ErrAlreadyRolled
	case StateFinished:
		return [2]int{}, ErrGameFinished
	}

	d1, d2 := g.dice.Roll()
	distances, err := ExpandDistances(d1, d2)
	if err != nil {
		return [2]int{}, err
	}
	g.roll = [2]int{d1, d2}
	g.distances = distances
	g.remaining = len(distances)
	g.moves = g.moves[:0]
	g.state = StateAwaitingMoves
	g.logger.Debug("dice rolled", zap.Stringer("side", g.turn), zap.Int("die1", d1), zap.Int("die2", d2), zap.Int("remaining", g.remaining))
	return g.roll, nil
}

// SubmitMoves validates the batch against the game's rules and applies it
// to the board. A rule violation rejects the entire batch, which is
// reported through the result rather than as an error. Once every distance
// of the roll is used the turn passes to the other side.
func (g *Game) SubmitMoves(moves []Move) (BatchResult, error) {
	switch g.state {
	case StateNotStarted:
		return BatchResult{}, ErrNotStarted
	case StateFinished:
		return BatchResult{}, ErrGameFinished
	}
	if g.remaining <= 0 {
		return BatchResult{}, fmt.Errorf("%w: %s must roll first", ErrNoMovesRemaining, g.turn)
	}
	for i, m := range moves {
		if err := m.validate(); err != nil {
			return BatchResult{}, fmt.Errorf("move %d: %w", i+1, err)
		}
	}

	if err := checkRules(g.rules, g.turn, moves, g.Distances(), g.board); err != nil {
		var violation *RuleViolation
		if !errors.As(err, &violation) {
			return BatchResult{}, err
		}
		g.logger.Debug("batch rejected", zap.String("rule", violation.Rule), zap.String("reason", violation.Message))
		return BatchResult{
			Results:            make([]bool, len(moves)),
			DistancesUsed:      []int{},
			DistancesRemaining: g.Distances(),
			Log:                []string{violation.Message},
		}, nil
	}

	result, err := g.board.ApplyMoveBatch(g.turn, moves, g.distances)
	if err != nil {
		return BatchResult{}, err
	}
	g.distances = append([]int{}, result.DistancesRemaining...)
	g.remaining -= len(result.DistancesUsed)
	for i, ok := range result.Results {
		if ok {
			g.moves = append(g.moves, moves[i])
		}
	}
	g.logger.Debug("batch applied", zap.Stringer("side", g.turn), zap.Int("applied", result.Applied()), zap.Int("remaining", g.remaining))

	if g.HasWinner() {
		return result, nil
	}
	if g.remaining <= 0 {
		g.endTurn()
	}
	return result, nil
}

// Pass ends the turn of the side to move without using its remaining dice.
func (g *Game) Pass() error {
	switch g.state {
	case StateNotStarted:
		return ErrNotStarted
	case StateFinished:
		return ErrGameFinished
	case StateAwaitingRoll:
		return fmt.Errorf("%w: %s must roll first", ErrNoMovesRemaining, g.turn)
	}
	g.logger.Debug("turn passed", zap.Stringer("side", g.turn), zap.Ints("unused", g.distances))
	g.endTurn()
	return nil
}

func (g *Game) endTurn() {
	g.recordTurn()
	g.turn = g.turn.Opponent()
	g.remaining = 0
	g.distances = nil
	g.roll = [2]int{}
	g.state = StateAwaitingRoll
}

// HasWinner reports whether a side has borne off all of its checkers. The
// first call that sees a winner also finishes the game: it records the
// final turn and the win in the replay and moves the game to
// StateFinished. Later calls only report the stored winner.
func (g *Game) HasWinner() bool {
	if g.winner != SideNone {
		return true
	}
	for _, side := range []Side{SideA, SideB} {
		if g.board.OffCount(side) == CheckersPerSide {
			g.finish(side)
			return true
		}
	}
	return false
}

func (g *Game) finish(winner Side) {
	g.recordTurn()
	g.replay = append(g.replay, []byte(fmt.Sprintf("w %s", winner)))
	g.winner = winner
	g.state = StateFinished
	g.remaining = 0
	g.distances = nil
	g.logger.Info("game won", zap.Stringer("side", winner), zap.String("player", g.Player(winner).Name))
}

// recordTurn appends the current turn to the replay.
func (g *Game) recordTurn() {
	if g.roll[0] == 0 {
		return
	}
	r1, r2 := g.roll[0], g.roll[1]
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	line := []byte(fmt.Sprintf("%s r %d-%d", g.turn, r1, r2))
	if len(g.moves) != 0 {
		line = append(append(line, ' '), FormatMoves(g.moves)...)
	}
	g.replay = append(g.replay, line)
	g.moves = g.moves[:0]
	g.roll = [2]int{}
}

// Winner returns the winning side, or SideNone while the game is undecided.
// Like HasWinner, it finishes the game when it is the first to see a winner.
func (g *Game) Winner() Side {
	g.HasWinner()
	return g.winner
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() (Player, error) {
	switch g.state {
	case StateNotStarted:
		return Player{}, ErrNotStarted
	case StateFinished:
		return Player{}, ErrGameFinished
	}
	return g.Player(g.turn), nil
}

// Player returns the player playing side.
func (g *Game) Player(side Side) Player {
	if side == SideB {
		return g.Player2
	}
	return g.Player1
}

// PlayerStatus returns the checker tallies of the player playing side.
func (g *Game) PlayerStatus(side Side) PlayerStatus {
	return g.Player(side).Status(g.board)
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() State {
	return g.state
}

// TurnSide returns the side to move, or SideNone before the game starts.
func (g *Game) TurnSide() Side {
	return g.turn
}

func (g *Game) RemainingMoves() int {
	return g.remaining
}

// DiceValues returns the current roll, or zeros while awaiting a roll.
func (g *Game) DiceValues() [2]int {
	return g.roll
}

// OpeningRoll returns the dice that decided the first turn.
func (g *Game) OpeningRoll() [2]int {
	return g.opening
}

// Distances returns the unused move distances of the current roll.
func (g *Game) Distances() []int {
	return append([]int{}, g.distances...)
}

// LegalMoves returns the single moves currently available to the side to move.
func (g *Game) LegalMoves() []Move {
	if g.state != StateAwaitingMoves {
		return nil
	}
	return g.board.LegalMoves(g.turn, g.distances)
}

// BoardSnapshot returns a copy of the board state.
func (g *Game) BoardSnapshot() Snapshot {
	return g.board.Snapshot()
}

// Replay returns a copy of the game record.
func (g *Game) Replay() [][]byte {
	replay := make([][]byte, len(g.replay))
	for i := range g.replay {
		replay[i] = append([]byte{}, g.replay[i]...)
	}
	return replay
}
