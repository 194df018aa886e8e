package hunt

import (
	"math/rand"
	"testing"
)

func TestGenerator_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := NewGenerator(0, 10, 1, rng); err == nil {
		t.Error("zero rows accepted")
	}
	if _, err := NewGenerator(10, 10, 0, rng); err == nil {
		t.Error("zero aircraft accepted")
	}
	if _, err := NewGenerator(3, 3, 1, rng); err == nil {
		t.Error("fleet larger than board accepted")
	}
}

func TestGenerator_BoardShape(t *testing.T) {
	gen, err := NewGenerator(10, 10, 2, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatal(err)
	}
	board := gen.Generate()

	heads, bodies, empty := 0, 0, 0
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			switch board.At(x, y) {
			case Red:
				heads++
			case Blue:
				bodies++
			case White:
				empty++
			default:
				t.Fatalf("cell (%d,%d) is %v; ground truth must be fully known", x, y, board.At(x, y))
			}
		}
	}
	if heads != 2 {
		t.Errorf("heads = %d, want 2", heads)
	}
	if bodies != 2*(AircraftSize-1) {
		t.Errorf("bodies = %d, want %d", bodies, 2*(AircraftSize-1))
	}
	if empty != 100-2*AircraftSize {
		t.Errorf("empty = %d, want %d", empty, 100-2*AircraftSize)
	}
}

func TestGenerator_HeadsAnchorRealPlacements(t *testing.T) {
	gen, err := NewGenerator(12, 15, 3, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	board := gen.Generate()

	// Every head must anchor some orientation whose full footprint lies on
	// painted cells.
	for x := 0; x < 12; x++ {
		for y := 0; y < 15; y++ {
			if board.At(x, y) != Red {
				continue
			}
			found := false
			for dir := 0; dir < 4 && !found; dir++ {
				ok := true
				for i, o := range aircraftBodies[dir] {
					x2, y2 := x+o.dx, y+o.dy
					if !board.InBounds(x2, y2) {
						ok = false
						break
					}
					want := Blue
					if i == 0 {
						want = Red
					}
					if board.At(x2, y2) != want {
						ok = false
						break
					}
				}
				found = ok
			}
			if !found {
				t.Errorf("head at (%d,%d) anchors no complete aircraft", x, y)
			}
		}
	}
}

func TestGenerator_SeedReproducible(t *testing.T) {
	make1 := func() *Board {
		gen, err := NewGenerator(10, 10, 2, rand.New(rand.NewSource(1234)))
		if err != nil {
			t.Fatal(err)
		}
		return gen.Generate()
	}
	a, b := make1(), make1()
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("boards diverge at (%d,%d)", x, y)
			}
		}
	}
}
