package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%. Green above two
// thirds, yellow above one third, red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", paint(ScoreColor(pct), bar), pct*100)
}

// AreaProgress renders the completion of one area of study. An area with
// no requirement is complete.
func AreaProgress(taken, required, width int) string {
	if required <= 0 {
		return RenderProgress(1, width)
	}
	return RenderProgress(float64(taken)/float64(required), width)
}
