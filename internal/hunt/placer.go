package hunt

// Placer trial-places aircraft shapes onto an occupancy grid while honoring
// the evidence on the observed board.
//
// The occupancy grid is a flat rows×cols bool slice owned by the caller
// (true = a previously placed aircraft already covers this cell). The placed
// slice records every cell a TryLand painted so that Lift can undo it in
// O(AircraftSize) instead of rebuilding the grid.
type Placer struct {
	board *Board
}

// NewPlacer returns a placer that validates placements against board.
// The board is borrowed read-only.
func NewPlacer(board *Board) *Placer {
	return &Placer{board: board}
}

// TryLand attempts to paint the aircraft anchored at (x, y) in direction dir
// onto occupied, appending each painted cell's flat index to placed.
//
// It fails when any cell is out of bounds, already occupied, or contradicts
// the board (the head must land on Gray or Red, a body cell on Gray or Blue).
// A failed attempt may leave a partial paint behind; the caller must call
// Lift with the same placed slice whether or not the attempt succeeded.
func (p *Placer) TryLand(x, y, dir int, occupied []bool, placed *[]int) bool {
	for i, o := range aircraftBodies[dir] {
		x2 := x + o.dx
		y2 := y + o.dy
		if !p.board.InBounds(x2, y2) {
			return false
		}
		idx := x2*p.board.cols + y2
		if occupied[idx] {
			return false
		}
		paint := Blue
		if i == 0 {
			paint = Red
		}
		if known := p.board.cells[idx]; known != Gray && known != paint {
			return false
		}
		occupied[idx] = true
		*placed = append(*placed, idx)
	}
	return true
}

// Lift removes every cell recorded in placed from occupied and empties
// placed, restoring both to their state before the matching TryLand.
func (p *Placer) Lift(occupied []bool, placed *[]int) {
	for _, idx := range *placed {
		occupied[idx] = false
	}
	*placed = (*placed)[:0]
}
