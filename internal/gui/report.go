package gui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/wujingyue/aircraft-finder/internal/hunt"
)

// buildReport renders the observed board and the latest analysis as plain
// text, suitable for pasting into a bug report or a chat.
func buildReport(e *hunt.Engine, a *hunt.Analysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- aircraft hunt report ---\n")
	fmt.Fprintf(&b, "board=%dx%d aircraft=%d\n\n", e.Rows(), e.Cols(), e.Aircraft())

	b.WriteString("   ")
	for y := 0; y < e.Cols(); y++ {
		fmt.Fprintf(&b, "%c", 'A'+byte(y))
	}
	b.WriteString("\n")
	for x := 0; x < e.Rows(); x++ {
		fmt.Fprintf(&b, "%2d ", x+1)
		for y := 0; y < e.Cols(); y++ {
			c := e.At(x, y)
			if c == hunt.Gray {
				b.WriteByte('.')
			} else {
				b.WriteByte(c.Char())
			}
		}
		b.WriteString("\n")
	}

	if a != nil {
		fmt.Fprintf(&b, "\nsuggestion=(%d,%c) combinations=%d\n",
			a.BombX+1, 'A'+byte(a.BombY), a.Combinations)
		p := a.Prob(a.BombX, a.BombY)
		fmt.Fprintf(&b, "p_red=%.3f p_blue=%.3f p_white=%.3f entropy=%.3f\n",
			p.Red, p.Blue, p.White, p.Entropy())
	}
	return b.String()
}

// copyReport puts the current report on the system clipboard.
func (g *Game) copyReport() {
	report := buildReport(g.engine, g.analysis)
	if err := clipboard.WriteAll(report); err != nil {
		g.status = fmt.Sprintf("clipboard: %v", err)
		return
	}
	g.status = "report copied to clipboard"
}
