package hunt

import (
	"fmt"
	"log"
)

// Engine is the decision core: it owns the observed board, accumulates the
// adversary's answers through SetColor, and nominates the next cell to bomb.
// It is the only object the REPL, GUI, and benchmark drivers need.
type Engine struct {
	rows, cols  int
	numAircraft int
	board       *Board
}

// NewEngine allocates an all-Gray board. It rejects non-positive dimensions
// or aircraft counts, and boards too small to hold the fleet at all.
func NewEngine(rows, cols, numAircraft int) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board must be positive, got %dx%d", rows, cols)
	}
	if numAircraft <= 0 {
		return nil, fmt.Errorf("aircraft count must be positive, got %d", numAircraft)
	}
	if numAircraft*AircraftSize > rows*cols {
		return nil, fmt.Errorf("%d aircraft need %d cells but the board has %d",
			numAircraft, numAircraft*AircraftSize, rows*cols)
	}
	return &Engine{
		rows:        rows,
		cols:        cols,
		numAircraft: numAircraft,
		board:       NewBoard(rows, cols, Gray),
	}, nil
}

func (e *Engine) Rows() int     { return e.rows }
func (e *Engine) Cols() int     { return e.cols }
func (e *Engine) Aircraft() int { return e.numAircraft }

// At returns the observed color at (x, y).
func (e *Engine) At(x, y int) Color {
	return e.board.At(x, y)
}

// SetColor records the adversary's answer for (x, y). Rewriting a known cell
// with the same color is a no-op; a conflicting rewrite is ignored with a
// warning, preserving the invariant that non-Gray cells never change.
func (e *Engine) SetColor(x, y int, c Color) {
	known := e.board.At(x, y)
	if known != Gray {
		if known != c {
			log.Printf("hunt: cell (%d,%d) is already %v, ignoring %v", x, y, known, c)
		}
		return
	}
	e.board.Set(x, y, c)
}

// Analysis is the result of one full enumeration: the aggregate heatmap, the
// combination total, per-cell probability distributions, and the chosen cell.
type Analysis struct {
	Heatmap      *Heatmap
	Combinations int64
	BombX, BombY int

	probs []Probability
	cols  int
}

// Prob returns the normalized distribution at (x, y).
func (a *Analysis) Prob(x, y int) Probability {
	return a.probs[x*a.cols+y]
}

// Analyze enumerates every placement combination consistent with the current
// board and ranks the cells. It does not mutate the board, so repeated calls
// return identical results.
func (e *Engine) Analyze() *Analysis {
	heatmap, combinations := computeHeatmap(e.board, e.numAircraft)

	probs := make([]Probability, e.rows*e.cols)
	for i, f := range heatmap.cells {
		probs[i] = newProbability(f)
	}

	x, y := pickCell(e.board, probs)
	return &Analysis{
		Heatmap:      heatmap,
		Combinations: combinations,
		BombX:        x,
		BombY:        y,
		probs:        probs,
		cols:         e.cols,
	}
}

// GetCellToBomb runs the enumeration and returns the cell to bomb next.
// Deterministic given the board and aircraft count.
func (e *Engine) GetCellToBomb() (int, int) {
	a := e.Analyze()
	return a.BombX, a.BombY
}
