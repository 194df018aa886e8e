package hunt

import (
	"runtime"

	channerics "github.com/niceyeti/channerics/channels"
)

// Placement anchors one aircraft: its head at (X, Y) in rotation Dir.
type Placement struct {
	X, Y, Dir int
}

// workerTally is one worker's contribution to the enumeration: its private
// heatmap plus the number of full combinations it counted.
type workerTally struct {
	heatmap      *Heatmap
	combinations int64
}

// computeHeatmap enumerates every combination of numAircraft legal,
// mutually disjoint, board-consistent placements and aggregates the per-cell
// head/body/empty counts. It returns the aggregate heatmap and the total
// number of combinations enumerated.
func computeHeatmap(board *Board, numAircraft int) (*Heatmap, int64) {
	return computeHeatmapWorkers(board, numAircraft, runtime.NumCPU())
}

// computeHeatmapWorkers is computeHeatmap with an explicit worker count.
// The aggregate is identical for any worker count: heatmap addition commutes
// and the seed queue partition is unobservable.
func computeHeatmapWorkers(board *Board, numAircraft, workers int) (*Heatmap, int64) {
	if workers < 1 {
		workers = 1
	}

	// One seed per candidate first placement. Workers pull seeds until the
	// queue drains; all deeper recursion stays inside the worker.
	seeds := make(chan Placement, board.rows*board.cols*4)
	for x := 0; x < board.rows; x++ {
		for y := 0; y < board.cols; y++ {
			for dir := 0; dir < 4; dir++ {
				seeds <- Placement{X: x, Y: y, Dir: dir}
			}
		}
	}
	close(seeds)

	knownBodies := board.KnownBodies()

	tallies := make([]<-chan workerTally, 0, workers)
	for i := 0; i < workers; i++ {
		out := make(chan workerTally, 1)
		w := newDFSWorker(board, numAircraft)
		go func() {
			defer close(out)
			out <- workerTally{
				heatmap:      w.heatmap,
				combinations: w.drain(seeds, knownBodies),
			}
		}()
		tallies = append(tallies, out)
	}

	total := NewHeatmap(board.rows, board.cols)
	var combinations int64
	for tally := range channerics.Merge(nil, tallies...) {
		total.Add(tally.heatmap)
		combinations += tally.combinations
	}
	total.finalize(combinations)
	return total, combinations
}

// dfsWorker owns all mutable state for one enumeration goroutine: a private
// heatmap, occupancy grid, placement stack, and one paint-undo scratch slice
// per recursion depth. The board is shared read-only.
type dfsWorker struct {
	board       *Board
	placer      *Placer
	numAircraft int

	heatmap  *Heatmap
	occupied []bool
	stack    []Placement
	scratch  [][]int // scratch[depth] records the cells painted at that depth
}

func newDFSWorker(board *Board, numAircraft int) *dfsWorker {
	scratch := make([][]int, numAircraft)
	for i := range scratch {
		scratch[i] = make([]int, 0, AircraftSize)
	}
	return &dfsWorker{
		board:       board,
		placer:      NewPlacer(board),
		numAircraft: numAircraft,
		heatmap:     NewHeatmap(board.rows, board.cols),
		occupied:    make([]bool, board.rows*board.cols),
		stack:       make([]Placement, 0, numAircraft),
		scratch:     scratch,
	}
}

// drain pops first-placement seeds until the queue is empty, running the full
// depth-first enumeration beneath each seed, and returns the number of
// combinations counted.
func (w *dfsWorker) drain(seeds <-chan Placement, knownBodies int) int64 {
	// The aircraft cannot collectively cover every known body cell, so no
	// combination exists at all.
	if w.numAircraft*AircraftSize < knownBodies {
		return 0
	}
	var combinations int64
	for seed := range seeds {
		combinations += w.place(seed.X, seed.Y, seed.Dir, knownBodies)
	}
	return combinations
}

// place trial-lands one aircraft and recurses on the remaining ones.
// remaining is the count of known Red/Blue cells not yet covered by the
// aircraft on the stack. Lift always runs on the depth's scratch slice, so a
// partial paint from a failed landing is undone too.
func (w *dfsWorker) place(x, y, dir, remaining int) int64 {
	depth := len(w.stack)
	placed := &w.scratch[depth]

	var combinations int64
	if w.placer.TryLand(x, y, dir, w.occupied, placed) {
		for _, idx := range *placed {
			if w.board.cells[idx] != Gray {
				remaining--
			}
		}
		w.stack = append(w.stack, Placement{X: x, Y: y, Dir: dir})
		combinations = w.descend(remaining)
		w.stack = w.stack[:depth]
	}
	w.placer.Lift(w.occupied, placed)
	return combinations
}

// descend enumerates placements for the next aircraft. Anchors are visited in
// strictly increasing (row, column) order relative to the previous aircraft,
// so each unordered combination is counted exactly once.
func (w *dfsWorker) descend(remaining int) int64 {
	// Prune: the aircraft still to be placed cannot cover all remaining
	// known body cells.
	if (w.numAircraft-len(w.stack))*AircraftSize < remaining {
		return 0
	}
	if len(w.stack) == w.numAircraft {
		w.record()
		return 1
	}

	prev := w.stack[len(w.stack)-1]
	var combinations int64
	for x := prev.X; x < w.board.rows; x++ {
		y := 0
		if x == prev.X {
			y = prev.Y + 1
		}
		for ; y < w.board.cols; y++ {
			for dir := 0; dir < 4; dir++ {
				combinations += w.place(x, y, dir, remaining)
			}
		}
	}
	return combinations
}

// record applies one complete combination to the worker's heatmap: the head
// cell of every placed aircraft counts red, the other nine cells blue.
func (w *dfsWorker) record() {
	for _, p := range w.stack {
		for i, o := range aircraftBodies[p.Dir] {
			idx := (p.X+o.dx)*w.board.cols + (p.Y + o.dy)
			if i == 0 {
				w.heatmap.cells[idx].Red++
			} else {
				w.heatmap.cells[idx].Blue++
			}
		}
	}
}
