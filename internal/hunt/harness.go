package hunt

import (
	"fmt"
	"math/rand"
	"time"
)

// Hunt is a headless game harness: it generates a ground-truth board, then
// plays the engine against it, feeding back the true color of every bombed
// cell until all heads are hit. It supports deterministic seeding and
// structured logging, and is used by the report command and by tests.
type Hunt struct {
	Rows     int
	Cols     int
	Aircraft int
	Engine   *Engine
	Truth    *Board
	Log      *HuntLog

	seed    int64
	verbose bool
}

// HuntOption is a builder function applied to a Hunt during construction.
type HuntOption func(*Hunt)

// WithSize sets the board dimensions.
func WithSize(rows, cols int) HuntOption {
	return func(h *Hunt) {
		h.Rows = rows
		h.Cols = cols
	}
}

// WithAircraft sets the number of hidden aircraft.
func WithAircraft(n int) HuntOption {
	return func(h *Hunt) {
		h.Aircraft = n
	}
}

// WithSeed sets the RNG seed for deterministic board generation.
func WithSeed(seed int64) HuntOption {
	return func(h *Hunt) {
		h.seed = seed
	}
}

// WithVerboseLog also records a timing entry for every move.
func WithVerboseLog() HuntOption {
	return func(h *Hunt) {
		h.verbose = true
	}
}

// NewHunt builds a harness with a 10×10, 2-aircraft, seed-42 default.
func NewHunt(opts ...HuntOption) (*Hunt, error) {
	h := &Hunt{
		Rows:     10,
		Cols:     10,
		Aircraft: 2,
		seed:     42,
	}
	for _, opt := range opts {
		opt(h)
	}

	gen, err := NewGenerator(h.Rows, h.Cols, h.Aircraft, rand.New(rand.NewSource(h.seed)))
	if err != nil {
		return nil, err
	}
	h.Truth = gen.Generate()

	if h.Engine, err = NewEngine(h.Rows, h.Cols, h.Aircraft); err != nil {
		return nil, err
	}
	h.Log = NewHuntLog(h.verbose)
	return h, nil
}

// HuntStats summarizes one completed hunt.
type HuntStats struct {
	Seed      int64
	Bombs     int
	HeadsHit  int
	Duration  time.Duration
	MoveTimes []time.Duration
}

// Run plays the hunt to completion and returns its stats. It errs if the
// engine fails to finish within Rows×Cols bombs — with truthful evidence
// every suggestion is a fresh unknown cell, so that bound cannot be hit.
func (h *Hunt) Run() (HuntStats, error) {
	stats := HuntStats{Seed: h.seed}
	remaining := h.Aircraft
	start := time.Now()

	for remaining > 0 {
		if stats.Bombs >= h.Rows*h.Cols {
			return stats, fmt.Errorf("no progress after %d bombs, %d heads still hidden",
				stats.Bombs, remaining)
		}
		stats.Bombs++

		moveStart := time.Now()
		x, y := h.Engine.GetCellToBomb()
		moveTime := time.Since(moveStart)
		stats.MoveTimes = append(stats.MoveTimes, moveTime)

		truth := h.Truth.At(x, y)
		h.Engine.SetColor(x, y, truth)

		h.Log.Add(stats.Bombs, x, y, "bomb", "suggest", truth.String(), 0)
		h.Log.AddVerbose(stats.Bombs, x, y, "timing", "move", moveTime.String(), moveTime.Seconds())
		if truth == Red {
			remaining--
			stats.HeadsHit++
			h.Log.Add(stats.Bombs, x, y, "game", "head_down",
				fmt.Sprintf("%d remaining", remaining), float64(remaining))
		}
	}

	stats.Duration = time.Since(start)
	h.Log.Add(stats.Bombs, 0, 0, "game", "finished",
		fmt.Sprintf("%d bombs", stats.Bombs), float64(stats.Bombs))
	return stats, nil
}
