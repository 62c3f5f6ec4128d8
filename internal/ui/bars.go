package ui

import (
	"fmt"
	"strings"
)

// MaxBarValue is the ceiling used for the happiness and energy bars
const MaxBarValue = 100

const barCells = 10

// renderBar draws a labeled progress bar, e.g.
// "Happiness  [████████░░]  80/100"
func renderBar(label string, value, max int) string {
	if max <= 0 {
		max = 1
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}

	filled := value * barCells / max
	var bar strings.Builder
	for i := 0; i < barCells; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}

	return fmt.Sprintf("%-11s [%s] %3d/%d", label, bar.String(), value, max)
}
