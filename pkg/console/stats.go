package console

import (
	"io"

	"codeberg.org/tslocum/bgammon-rules"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RollStatistics summarizes a series of rolls.
type RollStatistics struct {
	Total   int
	Doubles int
	OneSame int
	Faces   [6]int
}

// CollectRollStatistics rolls dice total times. Invalid die values are not
// counted as faces.
func CollectRollStatistics(dice bgammon.Dice, total int) RollStatistics {
	stats := RollStatistics{Total: total}
	var lastroll1, lastroll2 int
	for i := 0; i < total; i++ {
		roll1, roll2 := dice.Roll()

		for _, roll := range [2]int{roll1, roll2} {
			if bgammon.ValidDie(roll) {
				stats.Faces[roll-1]++
			}
		}

		if roll1 == lastroll1 || roll1 == lastroll2 || roll2 == lastroll1 || roll2 == lastroll2 {
			stats.OneSame++
		}

		if roll1 == roll2 {
			stats.Doubles++
		}

		lastroll1, lastroll2 = roll1, roll2
	}
	return stats
}

func percent(n int, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// PrintRollStatistics rolls dice total times and prints how often each
// face, doubles and repeated values came up.
func PrintRollStatistics(w io.Writer, dice bgammon.Dice, total int, tag language.Tag) RollStatistics {
	stats := CollectRollStatistics(dice, total)
	f := stats.Faces

	p := message.NewPrinter(tag)
	p.Fprintf(w, "Rolled %d pairs of dice.\nDoubles: %d (%.0f%%). One same as last: %d (%.0f%%).\n", total, stats.Doubles, percent(stats.Doubles, total), stats.OneSame, percent(stats.OneSame, total))
	p.Fprintf(w, "1s: %d (%.0f%%), 2s: %d (%.0f%%), 3s: %d (%.0f%%), 4s: %d (%.0f%%), 5s: %d (%.0f%%), 6s: %d (%.0f%%).\n", f[0], percent(f[0], total*2), f[1], percent(f[1], total*2), f[2], percent(f[2], total*2), f[3], percent(f[3], total*2), f[4], percent(f[4], total*2), f[5], percent(f[5], total*2))
	return stats
}
