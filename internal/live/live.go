// Package live serves a browser view of the engine's statistics. The page is
// a static SVG grid whose cells carry stable element ids; after every move
// the server pushes attribute updates over a websocket and a small script
// applies them in place, so the view tracks the hunt without reloads.
package live

import (
	"fmt"

	"github.com/wujingyue/aircraft-finder/internal/hunt"
)

// Op is one attribute mutation applied to an SVG element.
type Op struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EleUpdate addresses an element by id and carries the ops to apply to it.
type EleUpdate struct {
	EleId string `json:"eleId"`
	Ops   []Op   `json:"ops"`
}

// Cell fill colors, keyed by the cell's most likely content.
const (
	fillRed    = "#c23b32"
	fillBlue   = "#3a62c2"
	fillEmpty  = "#2e3138"
	fillKnown  = "#8a8f98"
	strokeTop  = "#f2d24c"
	strokeNone = "none"
)

// Convert flattens one analysis into the update list for the whole grid:
// every unknown cell gets a fill by its most likely color and every known cell
// the fixed known fill; every cell gets its entropy as text, and the suggested
// cell a highlight stroke.
func Convert(e *hunt.Engine, a *hunt.Analysis) []EleUpdate {
	updates := make([]EleUpdate, 0, e.Rows()*e.Cols()*2)
	for x := 0; x < e.Rows(); x++ {
		for y := 0; y < e.Cols(); y++ {
			p := a.Prob(x, y)

			fill := fillEmpty
			switch {
			case e.At(x, y) != hunt.Gray:
				fill = fillKnown
			case p.Red >= p.Blue && p.Red >= p.White:
				fill = fillRed
			case p.Blue >= p.White:
				fill = fillBlue
			}

			stroke := strokeNone
			if x == a.BombX && y == a.BombY {
				stroke = strokeTop
			}

			updates = append(updates,
				EleUpdate{
					EleId: fmt.Sprintf("cell-%d-%d", x, y),
					Ops: []Op{
						{Key: "fill", Value: fill},
						{Key: "stroke", Value: stroke},
					},
				},
				EleUpdate{
					EleId: fmt.Sprintf("txt-%d-%d", x, y),
					Ops: []Op{
						{Key: "text", Value: fmt.Sprintf("%.1f", p.Entropy()*100)},
					},
				})
		}
	}
	return updates
}
