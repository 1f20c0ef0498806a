package console

import (
	"bytes"
	"fmt"

	"codeberg.org/tslocum/bgammon-rules"
)

var boardTopA = []byte("+12-13-14-15-16-17-+---+18-19-20-21-22-23-+")
var boardBottomA = []byte("+11-10--9--8--7--6-+---+-5--4--3--2--1--0-+")

var boardTopB = boardBottomA
var boardBottomB = boardTopA

const (
	VerticalBar rune = '\u2502' // │
)

// renderStack draws one row of a stack of count checkers. height counts
// from the edge of the board, starting at 1. Stacks taller than five show
// their size in the fifth row.
func renderStack(count int, symbol string, height int) []byte {
	if height <= 0 || count < height {
		return []byte("   ")
	}
	if count > 5 && height == 5 {
		return []byte(fmt.Sprintf("%2d ", count))
	}
	return []byte(" " + symbol + " ")
}

// pointIndex returns the point drawn in a column of the top or bottom half.
func pointIndex(viewer bgammon.Side, top bool, col int) int {
	if top == (viewer != bgammon.SideB) {
		return 12 + col
	}
	return 11 - col
}

// RenderBoard draws the board as seen by the viewing side of state.
func RenderBoard(state *bgammon.GameState) []byte {
	var t bytes.Buffer

	player, opponent := state.Side, state.Side.Opponent()
	top, bottom := boardTopA, boardBottomA
	if player == bgammon.SideB {
		top, bottom = boardTopB, boardBottomB
	}

	t.Write(top)
	t.WriteByte('\n')

	space := func(row int, col int) []byte {
		if row == 5 {
			return []byte("   ")
		}
		height := row + 1
		if row > 5 {
			height = 5 - (row - 6)
		}

		if col == -1 {
			side := opponent
			if row > 5 {
				side = player
			}
			return renderStack(state.Board.Bar[side], side.Symbol(), height)
		}

		index := pointIndex(player, row < 5, col)
		stack := state.Board.Points[index]
		if len(stack) == 0 {
			return []byte("   ")
		}
		return renderStack(len(stack), stack[len(stack)-1].Symbol(), height)
	}

	for i := 0; i < 11; i++ {
		t.WriteRune(VerticalBar)
		for j := 0; j < 12; j++ {
			t.Write(space(i, j))

			if j == 5 {
				t.WriteRune(VerticalBar)
				t.Write(space(i, -1))
				t.WriteRune(VerticalBar)
			}
		}
		t.WriteRune(VerticalBar)

		switch i {
		case 0:
			t.Write(playerLine(state, opponent))
		case 2:
			t.Write(diceLine(state, opponent))
		case 8:
			t.Write(diceLine(state, player))
		case 10:
			t.Write(playerLine(state, player))
		}
		t.WriteByte('\n')
	}

	t.Write(bottom)
	t.WriteByte('\n')
	return t.Bytes()
}

func playerLine(state *bgammon.GameState, side bgammon.Side) []byte {
	line := fmt.Sprintf("  %s %s", side.Symbol(), state.Player(side).Name)
	if off := state.Board.Off[side]; off != 0 {
		line += fmt.Sprintf("  %d off", off)
	}
	if state.Winner() == side {
		line += "  winner"
	}
	return []byte(line)
}

func diceLine(state *bgammon.GameState, side bgammon.Side) []byte {
	roll := state.DiceValues()
	if state.TurnSide() != side || roll[0] == 0 {
		return []byte("  -  -  ")
	}
	return []byte(fmt.Sprintf("  %d  %d  ", roll[0], roll[1]))
}
