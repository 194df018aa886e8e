package hunt

// redThreshold is the exploitation cutoff: once some unknown cell holds a
// head in at least half of all surviving combinations, bombing it outranks
// any information-gathering move — heads are what end the game.
const redThreshold = 0.5

// pickCell chooses the next cell to bomb from the normalized heatmap.
//
// Exploitation: if any Gray cell has red probability ≥ redThreshold, the
// first such cell (row-major) achieving the maximum is returned.
//
// Exploration: otherwise every cell is ranked by entropy (descending), then
// unknown-before-known, then red probability (descending). The scan is
// row-major and replaces the incumbent only on a strict win, so the result is
// deterministic for a fixed heatmap.
func pickCell(board *Board, probs []Probability) (int, int) {
	bestRed := -1.0
	redX, redY := -1, -1
	for x := 0; x < board.rows; x++ {
		for y := 0; y < board.cols; y++ {
			if board.At(x, y) != Gray {
				continue
			}
			if p := probs[x*board.cols+y]; p.Red > bestRed {
				bestRed = p.Red
				redX, redY = x, y
			}
		}
	}
	if bestRed >= redThreshold {
		return redX, redY
	}

	bestX, bestY := 0, 0
	best := probs[0]
	bestKnown := board.cells[0] != Gray
	for x := 0; x < board.rows; x++ {
		for y := 0; y < board.cols; y++ {
			if x == 0 && y == 0 {
				continue
			}
			p := probs[x*board.cols+y]
			known := board.At(x, y) != Gray
			if outranks(p, known, best, bestKnown) {
				best = p
				bestKnown = known
				bestX, bestY = x, y
			}
		}
	}
	return bestX, bestY
}

// outranks reports whether candidate (p, known) strictly beats the incumbent
// under the (entropy, unknown-ness, red probability) key.
func outranks(p Probability, known bool, best Probability, bestKnown bool) bool {
	e1 := p.Entropy()
	e2 := best.Entropy()
	if e1 != e2 {
		return e1 > e2
	}
	if known != bestKnown {
		return !known
	}
	return p.Red > best.Red
}
