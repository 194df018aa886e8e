package hunt

import "testing"

// landCells returns the absolute cells the shape would paint at (x, y, dir),
// ignoring the board — a reference for bounds checks.
func landCells(x, y, dir int) [][2]int {
	cells := make([][2]int, 0, AircraftSize)
	for _, o := range aircraftBodies[dir] {
		cells = append(cells, [2]int{x + o.dx, y + o.dy})
	}
	return cells
}

func TestPlacer_LandAndLift(t *testing.T) {
	board := NewBoard(10, 10, Gray)
	placer := NewPlacer(board)
	occupied := make([]bool, 100)
	placed := make([]int, 0, AircraftSize)

	for dir := 0; dir < 4; dir++ {
		if !placer.TryLand(4, 4, dir, occupied, &placed) {
			t.Fatalf("dir %d: landing at (4,4) on an empty board failed", dir)
		}
		if len(placed) != AircraftSize {
			t.Fatalf("dir %d: painted %d cells, want %d", dir, len(placed), AircraftSize)
		}
		count := 0
		for _, occ := range occupied {
			if occ {
				count++
			}
		}
		if count != AircraftSize {
			t.Fatalf("dir %d: %d occupied cells, want %d", dir, count, AircraftSize)
		}

		placer.Lift(occupied, &placed)
		if len(placed) != 0 {
			t.Fatalf("dir %d: placed not emptied by Lift", dir)
		}
		for i, occ := range occupied {
			if occ {
				t.Fatalf("dir %d: cell %d still occupied after Lift", dir, i)
			}
		}
	}
}

func TestPlacer_FailedLandRestoresOnLift(t *testing.T) {
	board := NewBoard(10, 10, Gray)
	placer := NewPlacer(board)
	occupied := make([]bool, 100)
	placed := make([]int, 0, AircraftSize)

	// (0,0) is out of bounds in every direction; the partial paint (if any)
	// must be fully undone by Lift.
	for dir := 0; dir < 4; dir++ {
		if placer.TryLand(0, 0, dir, occupied, &placed) {
			t.Fatalf("dir %d: landing at (0,0) should run out of bounds", dir)
		}
		placer.Lift(occupied, &placed)
		if len(placed) != 0 {
			t.Fatalf("dir %d: placed not emptied after failed land", dir)
		}
		for i, occ := range occupied {
			if occ {
				t.Fatalf("dir %d: cell %d leaked from failed land", dir, i)
			}
		}
	}
}

func TestPlacer_OverlapRejected(t *testing.T) {
	board := NewBoard(10, 10, Gray)
	placer := NewPlacer(board)
	occupied := make([]bool, 100)
	outer := make([]int, 0, AircraftSize)
	inner := make([]int, 0, AircraftSize)

	if !placer.TryLand(4, 4, 0, occupied, &outer) {
		t.Fatal("first landing failed")
	}
	// Same anchor conflicts on the head cell at minimum.
	if placer.TryLand(4, 4, 2, occupied, &inner) {
		t.Fatal("overlapping landing should fail")
	}
	placer.Lift(occupied, &inner)

	// The first aircraft must be untouched.
	if len(outer) != AircraftSize {
		t.Fatalf("outer placement corrupted: %d cells", len(outer))
	}
	for _, idx := range outer {
		if !occupied[idx] {
			t.Fatalf("cell %d of the first aircraft was lifted", idx)
		}
	}
}

func TestPlacer_BoardConsistency(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		color Color
		want  bool
	}{
		{"red head allowed", 4, 4, Red, true},
		{"blue head rejected", 4, 4, Blue, false},
		{"white head rejected", 4, 4, White, false},
		{"blue body allowed", 5, 2, Blue, true},
		{"red body rejected", 5, 2, Red, false},
		{"white body rejected", 5, 2, White, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board := NewBoard(10, 10, Gray)
			board.Set(tc.x, tc.y, tc.color)
			placer := NewPlacer(board)
			occupied := make([]bool, 100)
			placed := make([]int, 0, AircraftSize)

			// Direction 0 anchored at (4,4) paints its head there and a wing
			// cell at (5,2).
			got := placer.TryLand(4, 4, 0, occupied, &placed)
			placer.Lift(occupied, &placed)
			if got != tc.want {
				t.Fatalf("TryLand with %v at (%d,%d) = %v, want %v",
					tc.color, tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestPlacer_DirectionCoverage(t *testing.T) {
	board := NewBoard(10, 10, Gray)
	placer := NewPlacer(board)
	occupied := make([]bool, 100)
	placed := make([]int, 0, AircraftSize)

	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			for dir := 0; dir < 4; dir++ {
				inBounds := true
				for _, cell := range landCells(x, y, dir) {
					if !board.InBounds(cell[0], cell[1]) {
						inBounds = false
						break
					}
				}
				got := placer.TryLand(x, y, dir, occupied, &placed)
				if got != inBounds {
					t.Errorf("(%d,%d,%d): TryLand = %v, want %v", x, y, dir, got, inBounds)
				}
				if got && len(placed) != AircraftSize {
					t.Errorf("(%d,%d,%d): painted %d cells", x, y, dir, len(placed))
				}
				placer.Lift(occupied, &placed)
			}
		}
	}
	for i, occ := range occupied {
		if occ {
			t.Fatalf("cell %d left occupied after sweep", i)
		}
	}
}
