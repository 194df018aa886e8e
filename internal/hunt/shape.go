package hunt

// AircraftSize is the number of cells an aircraft paints: one head plus nine
// body cells.
const AircraftSize = 10

// offset is a cell position relative to the aircraft's head.
type offset struct {
	dx, dy int
}

// aircraftBodies[dir] holds the ten offsets of the aircraft in each of the
// four 90° rotations. Index 0 is always the head at (0,0).
var aircraftBodies = buildAircraftBodies()

func buildAircraftBodies() [4][AircraftSize]offset {
	var bodies [4][AircraftSize]offset
	bodies[0] = [AircraftSize]offset{
		{0, 0},
		{1, -2}, {1, -1}, {1, 0}, {1, 1}, {1, 2},
		{2, 0},
		{3, -1}, {3, 0}, {3, 1},
	}
	// Each direction is the previous one rotated 90° clockwise:
	// (dx, dy) → (−dy, dx).
	for dir := 1; dir < 4; dir++ {
		for i, o := range bodies[dir-1] {
			bodies[dir][i] = offset{-o.dy, o.dx}
		}
	}
	return bodies
}
