package hunt

// Frequency counts, for one cell, how many enumerated placement combinations
// put a head, a body, or nothing there.
type Frequency struct {
	Red   int64
	Blue  int64
	White int64
}

// Heatmap is an R×C grid of Frequency counters. After a full enumeration of M
// combinations, Red+Blue+White == M holds for every cell.
type Heatmap struct {
	rows, cols int
	cells      []Frequency
}

// NewHeatmap returns a zeroed rows×cols heatmap.
func NewHeatmap(rows, cols int) *Heatmap {
	return &Heatmap{
		rows:  rows,
		cols:  cols,
		cells: make([]Frequency, rows*cols),
	}
}

func (h *Heatmap) Rows() int { return h.rows }
func (h *Heatmap) Cols() int { return h.cols }

// At returns the counters at (x, y).
func (h *Heatmap) At(x, y int) Frequency {
	return h.cells[x*h.cols+y]
}

// Add accumulates other into h cell-wise. Addition commutes, so per-worker
// heatmaps can be summed in any order.
func (h *Heatmap) Add(other *Heatmap) {
	for i := range h.cells {
		h.cells[i].Red += other.cells[i].Red
		h.cells[i].Blue += other.cells[i].Blue
		h.cells[i].White += other.cells[i].White
	}
}

// finalize derives the white counts from the combination total: a cell left
// unpainted by a combination is white in it, so White = M − Red − Blue.
func (h *Heatmap) finalize(combinations int64) {
	for i := range h.cells {
		h.cells[i].White = combinations - h.cells[i].Red - h.cells[i].Blue
	}
}
