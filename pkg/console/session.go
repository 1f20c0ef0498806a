package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/tslocum/bgammon-rules"
	"codeberg.org/tslocum/gotext"
	"github.com/chzyer/readline"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LineReader reads one line of input at a time. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Commands lists the console commands in the order help prints them.
var Commands = []string{"board", "help", "hint", "move", "pass", "quit", "replay", "roll", "start", "state", "status"}

// Session runs a game between two players sharing one console.
type Session struct {
	cfg    *Config
	dice   bgammon.Dice
	in     LineReader
	out    io.Writer
	logger *zap.Logger
	domain string
	game   *bgammon.Game
}

func NewSession(cfg *Config, dice bgammon.Dice, in LineReader, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		cfg:    cfg,
		dice:   dice,
		in:     in,
		out:    out,
		logger: logger,
		domain: cfg.Domain(),
	}
}

// Game returns the game in progress, or nil before the first start command.
func (s *Session) Game() *bgammon.Game {
	return s.game
}

func (s *Session) printf(format string, a ...interface{}) {
	fmt.Fprint(s.out, gotext.GetD(s.domain, format, a...))
}

// Run reads and executes commands until the input ends or the player quits.
func (s *Session) Run() error {
	s.printf("Welcome to bgammon. Type 'start' to begin a game or 'help' for a list of commands.\n")
	for {
		s.in.SetPrompt(s.prompt())
		line, err := s.in.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		} else if err != nil {
			return fmt.Errorf("read command: %w", err)
		}
		if s.Execute(line) {
			return nil
		}
	}
}

func (s *Session) prompt() string {
	if s.game == nil {
		return "bgammon> "
	}
	p, err := s.game.CurrentPlayer()
	if err != nil {
		return "bgammon> "
	}
	return fmt.Sprintf("%s (%s)> ", p.Name, p.Side)
}

// Execute runs a single command line. It returns true when the session should end.
func (s *Session) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	command, args := line, ""
	if i := strings.IndexAny(line, " \t"); i != -1 {
		command, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	command = strings.ToLower(command)

	switch command {
	case "quit", "exit", "q":
		return true
	case "help", "h":
		s.help()
	case "start", "new":
		s.start()
	case "roll", "r":
		s.roll()
	case "move", "m", "mv":
		s.move(args)
	case "pass", "p":
		s.pass()
	case "board", "b":
		s.board()
	case "status", "s":
		s.status()
	case "state":
		s.state()
	case "hint":
		s.hint()
	case "replay":
		s.replay()
	default:
		if looksLikeMoves(line) {
			s.move(line)
			return false
		}
		s.printf("Unknown command: %s\n", command)
	}
	return false
}

func (s *Session) help() {
	s.printf("Commands:\n")
	for _, command := range Commands {
		fmt.Fprintf(s.out, "  %s %s\n", command, s.helpText(command))
	}
}

// helpText describes a command in the session's language.
func (s *Session) helpText(command string) string {
	switch command {
	case "start":
		return gotext.GetD(s.domain, "- Start a new game.")
	case "roll":
		return gotext.GetD(s.domain, "- Roll the dice.")
	case "move":
		return gotext.GetD(s.domain, "<from> <to>[, <from> <to>...] - Move checkers. Use bar and off for the bar and bearing off. The word move may be omitted.")
	case "pass":
		return gotext.GetD(s.domain, "- End the turn without using the remaining dice.")
	case "board":
		return gotext.GetD(s.domain, "- Print the board.")
	case "status":
		return gotext.GetD(s.domain, "- Print where each player's checkers are.")
	case "state":
		return gotext.GetD(s.domain, "- Print the game state as YAML.")
	case "hint":
		return gotext.GetD(s.domain, "- List the single moves available.")
	case "replay":
		return gotext.GetD(s.domain, "- Print the game record.")
	case "help":
		return gotext.GetD(s.domain, "- Print this help.")
	case "quit":
		return gotext.GetD(s.domain, "- Leave the game.")
	default:
		return ""
	}
}

func (s *Session) start() {
	if s.game != nil && s.game.State() != bgammon.StateFinished && s.game.State() != bgammon.StateNotStarted {
		s.printf("A game is already in progress.\n")
		return
	}
	if s.game == nil {
		s.game = bgammon.NewGame(s.cfg.Player1, s.cfg.Player2, bgammon.WithDice(s.dice), bgammon.WithLogger(s.logger))
	}
	if err := s.game.Start(); err != nil {
		s.reportError(err)
		return
	}

	opening := s.game.OpeningRoll()
	s.printf("%s rolled %d, %s rolled %d.\n", s.game.Player1.Name, opening[0], s.game.Player2.Name, opening[1])
	p, _ := s.game.CurrentPlayer()
	s.printf("%s (%s) moves first.\n", p.Name, p.Side)
	s.board()
	s.turnSummary()
}

func (s *Session) roll() {
	if !s.requireGame() {
		return
	}
	roll, err := s.game.RollDice()
	if err != nil {
		s.reportError(err)
		return
	}
	p, _ := s.game.CurrentPlayer()
	s.printf("%s rolled %d and %d.\n", p.Name, roll[0], roll[1])
	s.turnSummary()
}

func (s *Session) move(args string) {
	if !s.requireGame() {
		return
	}
	moves, err := ParseMoves(args)
	if err != nil {
		s.reportError(err)
		return
	}
	mover := s.game.TurnSide()
	result, err := s.game.SubmitMoves(moves)
	if err != nil {
		s.reportError(err)
		return
	}
	for _, line := range result.Log {
		fmt.Fprintln(s.out, line)
	}
	s.logger.Debug("moves submitted", zap.Stringer("side", mover), zap.ByteString("moves", bgammon.FormatMoves(moves)), zap.Int("applied", result.Applied()))

	if s.game.HasWinner() {
		winner := s.game.Player(s.game.Winner())
		s.board()
		s.printf("%s wins the game! Type 'start' to play again.\n", winner.Name)
		return
	}
	if s.game.TurnSide() != mover {
		s.printf("All moves played.\n")
		s.board()
	}
	s.turnSummary()
}

func (s *Session) pass() {
	if !s.requireGame() {
		return
	}
	if err := s.game.Pass(); err != nil {
		s.reportError(err)
		return
	}
	s.turnSummary()
}

func (s *Session) board() {
	if !s.requireGame() {
		return
	}
	viewer := s.game.TurnSide()
	s.out.Write(RenderBoard(bgammon.NewGameState(s.game, viewer)))
}

func (s *Session) status() {
	if !s.requireGame() {
		return
	}
	s.printf("State: %s\n", s.game.State())
	if p, err := s.game.CurrentPlayer(); err == nil {
		s.printf("Turn: %s (%s), %d move(s) remaining\n", p.Name, p.Side, s.game.RemainingMoves())
	}
	for _, side := range []bgammon.Side{bgammon.SideA, bgammon.SideB} {
		st := s.game.PlayerStatus(side)
		s.printf("%s (%s): %d on board, %d on bar, %d borne off\n", st.Name, st.Symbol, st.OnBoard, st.OnBar, st.BorneOff)
	}
}

func (s *Session) hint() {
	if !s.requireGame() {
		return
	}
	moves := s.game.LegalMoves()
	if len(moves) == 0 {
		s.printf("No moves available.\n")
		return
	}
	fmt.Fprintf(s.out, "%s\n", bgammon.FormatMoves(moves))
}

func (s *Session) replay() {
	if !s.requireGame() {
		return
	}
	for _, line := range s.game.Replay() {
		fmt.Fprintf(s.out, "%s\n", line)
	}
}

type pointDocument struct {
	Point int    `yaml:"point"`
	Side  string `yaml:"side"`
	Count int    `yaml:"count"`
}

type playerDocument struct {
	Name     string `yaml:"name"`
	Side     string `yaml:"side"`
	OnBoard  int    `yaml:"on_board"`
	OnBar    int    `yaml:"on_bar"`
	BorneOff int    `yaml:"borne_off"`
}

type stateDocument struct {
	Game      string           `yaml:"game"`
	State     string           `yaml:"state"`
	Turn      string           `yaml:"turn,omitempty"`
	Dice      []int            `yaml:"dice,omitempty"`
	Distances []int            `yaml:"distances,omitempty"`
	Remaining int              `yaml:"remaining"`
	Players   []playerDocument `yaml:"players"`
	Points    []pointDocument  `yaml:"points"`
}

func (s *Session) state() {
	if !s.requireGame() {
		return
	}
	doc := stateDocument{
		Game:      s.game.ID(),
		State:     s.game.State().String(),
		Distances: s.game.Distances(),
		Remaining: s.game.RemainingMoves(),
	}
	if roll := s.game.DiceValues(); roll[0] != 0 {
		doc.Dice = roll[:]
	}
	if side := s.game.TurnSide(); side.Valid() {
		doc.Turn = side.Symbol()
	}
	for _, side := range []bgammon.Side{bgammon.SideA, bgammon.SideB} {
		st := s.game.PlayerStatus(side)
		doc.Players = append(doc.Players, playerDocument{
			Name:     st.Name,
			Side:     st.Symbol,
			OnBoard:  st.OnBoard,
			OnBar:    st.OnBar,
			BorneOff: st.BorneOff,
		})
	}
	snapshot := s.game.BoardSnapshot()
	for point, stack := range snapshot.Points {
		if len(stack) == 0 {
			continue
		}
		doc.Points = append(doc.Points, pointDocument{
			Point: point,
			Side:  stack[len(stack)-1].Symbol(),
			Count: len(stack),
		})
	}

	buf, err := yaml.Marshal(doc)
	if err != nil {
		s.logger.Error("failed to marshal game state", zap.Error(err))
		return
	}
	s.out.Write(buf)
}

func (s *Session) turnSummary() {
	if s.game.HasWinner() {
		return
	}
	p, err := s.game.CurrentPlayer()
	if err != nil {
		return
	}
	switch s.game.State() {
	case bgammon.StateAwaitingRoll:
		s.printf("%s (%s) to roll.\n", p.Name, p.Side)
	case bgammon.StateAwaitingMoves:
		s.printf("%s (%s) to move %s, dice %v, %d move(s) remaining.\n", p.Name, p.Side, direction(p.Side), s.game.Distances(), s.game.RemainingMoves())
	}
}

func direction(side bgammon.Side) string {
	if side == bgammon.SideB {
		return "from 23 toward 0"
	}
	return "from 0 toward 23"
}

func (s *Session) requireGame() bool {
	if s.game == nil {
		s.printf("No game in progress. Type 'start' to begin.\n")
		return false
	}
	return true
}

func (s *Session) reportError(err error) {
	switch {
	case errors.Is(err, bgammon.ErrMalformedMove):
		s.printf("Invalid moves: %s. Example: 0 3, bar 5, 22 off\n", err)
	case errors.Is(err, bgammon.ErrNotStarted):
		s.printf("The game has not started. Type 'start' to begin.\n")
	case errors.Is(err, bgammon.ErrAlreadyStarted):
		s.printf("A game is already in progress.\n")
	case errors.Is(err, bgammon.ErrAlreadyRolled):
		s.printf("The dice have already been rolled. Move or pass.\n")
	case errors.Is(err, bgammon.ErrNoMovesRemaining):
		s.printf("No moves remaining. Roll the dice first.\n")
	case errors.Is(err, bgammon.ErrGameFinished):
		s.printf("The game is over. Type 'start' to play again.\n")
	default:
		s.logger.Error("command failed", zap.Error(err))
		s.printf("Error: %s\n", err)
	}
}
