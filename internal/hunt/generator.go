package hunt

import (
	"fmt"
	"math/rand"
)

// Generator produces random ground-truth boards: numAircraft aircraft placed
// uniformly at random without overlap, heads Red, bodies Blue, all other
// cells White.
type Generator struct {
	rows, cols  int
	numAircraft int
	rng         *rand.Rand
}

// NewGenerator validates the configuration and returns a generator drawing
// from rng. Pass a seeded rand.Rand for reproducible boards.
func NewGenerator(rows, cols, numAircraft int, rng *rand.Rand) (*Generator, error) {
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
	return &Generator{
		rows:        rows,
		cols:        cols,
		numAircraft: numAircraft,
		rng:         rng,
	}, nil
}

// Generate places the fleet by rejection sampling: draw a random anchor and
// rotation, retry until it lands. The constraint board stays all-Gray so the
// placer only enforces bounds and overlap.
func (g *Generator) Generate() *Board {
	truth := NewBoard(g.rows, g.cols, White)
	scratch := NewBoard(g.rows, g.cols, Gray)
	placer := NewPlacer(scratch)
	occupied := make([]bool, g.rows*g.cols)
	placed := make([]int, 0, AircraftSize)

	for i := 0; i < g.numAircraft; i++ {
		for {
			x := g.rng.Intn(g.rows)
			y := g.rng.Intn(g.cols)
			dir := g.rng.Intn(4)
			if placer.TryLand(x, y, dir, occupied, &placed) {
				head := x*g.cols + y
				for _, idx := range placed {
					if idx == head {
						truth.cells[idx] = Red
					} else {
						truth.cells[idx] = Blue
					}
				}
				placed = placed[:0]
				break
			}
			placer.Lift(occupied, &placed)
		}
	}
	return truth
}
