package bgammon

// GameState is a view of a game from one side of the board.
type GameState struct {
	*Game

	// Side is the viewing side.
	Side      Side
	Board     Snapshot
	Available []Move // Legal moves.
}

// NewGameState captures the current state of g as seen by side.
func NewGameState(g *Game, side Side) *GameState {
	if !side.Valid() {
		side = SideA
	}
	return &GameState{
		Game:      g,
		Side:      side,
		Board:     g.BoardSnapshot(),
		Available: g.LegalMoves(),
	}
}

func (g *GameState) OpponentPlayer() Player {
	return g.Player(g.Side.Opponent())
}

func (g *GameState) LocalPlayer() Player {
	return g.Player(g.Side)
}

// Turn reports whether the viewing side is the side to move.
func (g *GameState) Turn() bool {
	return g.TurnSide() == g.Side
}
