package console

import (
	"bytes"
	"strings"
	"testing"

	"codeberg.org/tslocum/bgammon-rules"
)

func TestRenderStack(t *testing.T) {
	tests := []struct {
		count  int
		height int
		want   string
	}{
		{0, 1, "   "},
		{2, 1, " X "},
		{2, 2, " X "},
		{2, 3, "   "},
		{5, 5, " X "},
		{7, 5, " 7 "},
		{12, 5, "12 "},
		{7, 0, "   "},
	}
	for _, tt := range tests {
		if got := string(renderStack(tt.count, "X", tt.height)); got != tt.want {
			t.Errorf("renderStack(%d, %d) = %q, want %q", tt.count, tt.height, got, tt.want)
		}
	}
}

func TestPointIndex(t *testing.T) {
	tests := []struct {
		viewer bgammon.Side
		top    bool
		col    int
		want   int
	}{
		{bgammon.SideA, true, 0, 12},
		{bgammon.SideA, true, 11, 23},
		{bgammon.SideA, false, 0, 11},
		{bgammon.SideA, false, 11, 0},
		{bgammon.SideB, true, 0, 11},
		{bgammon.SideB, false, 0, 12},
	}
	for _, tt := range tests {
		if got := pointIndex(tt.viewer, tt.top, tt.col); got != tt.want {
			t.Errorf("pointIndex(%s, %v, %d) = %d, want %d", tt.viewer, tt.top, tt.col, got, tt.want)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	g := bgammon.NewGame("alice", "bob", bgammon.WithDice(bgammon.NewFixedDice(5, 3, 3, 1)))
	if err := g.Start(); err != nil {
		t.Fatal(err)
	}

	out := RenderBoard(bgammon.NewGameState(g, bgammon.SideA))
	lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("rendered %d lines, want 13", len(lines))
	}
	if lines[0] != string(boardTopA) || lines[12] != string(boardBottomA) {
		t.Errorf("unexpected labels:\n%s\n%s", lines[0], lines[12])
	}
	if !strings.HasSuffix(lines[1], "  O bob") {
		t.Errorf("opponent line = %q", lines[1])
	}
	if !strings.HasSuffix(lines[11], "  X alice") {
		t.Errorf("player line = %q", lines[11])
	}
	if !strings.HasSuffix(lines[9], "  3  1  ") {
		t.Errorf("dice line = %q", lines[9])
	}
	if !strings.HasSuffix(lines[3], "  -  -  ") {
		t.Errorf("opponent dice line = %q", lines[3])
	}
	if !bytes.Contains(out, []byte(" X ")) || !bytes.Contains(out, []byte(" O ")) {
		t.Error("board is missing checkers")
	}

	flipped := RenderBoard(bgammon.NewGameState(g, bgammon.SideB))
	if !bytes.HasPrefix(flipped, boardTopB) {
		t.Errorf("side O view starts with %q", bytes.SplitN(flipped, []byte("\n"), 2)[0])
	}
}
