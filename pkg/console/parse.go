package console

import (
	"fmt"
	"strings"

	"codeberg.org/tslocum/bgammon-rules"
)

// ParseMoves parses moves separated by commas. Each move is an origin and a
// destination separated by a space, a dash or a slash, such as "0 3",
// "bar-5" or "22/off".
func ParseMoves(text string) ([]bgammon.Move, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: no moves", bgammon.ErrMalformedMove)
	}

	replacer := strings.NewReplacer("-", " ", "/", " ")
	var pairs [][]string
	for _, part := range strings.Split(text, ",") {
		fields := strings.Fields(replacer.Replace(part))
		if len(fields) == 0 {
			continue
		}
		pairs = append(pairs, fields)
	}
	return bgammon.MovesFromPairs(pairs)
}

// looksLikeMoves reports whether a line starts with a move origin rather than a command.
func looksLikeMoves(line string) bool {
	first := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '-' || r == '/' || r == ','
	})
	if len(first) == 0 {
		return false
	}
	_, err := bgammon.ParseLocation(first[0])
	return err == nil
}
