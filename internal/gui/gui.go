// Package gui is the graphical front end for the hunt engine: it renders the
// observed board, lets the operator enter the adversary's answers with the
// mouse and keyboard, and overlays the engine's per-cell statistics.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/wujingyue/aircraft-finder/internal/hunt"
)

const (
	cellSize  = 48
	margin    = 28 // border around the grid, also holds the axis labels
	hudHeight = 84 // key help and status lines under the grid
)

// ErrQuit cleanly exits the program when returned from Game.Update.
var ErrQuit = errors.New("quit hunt")

// Cell fill colors by observed state.
var cellColors = map[hunt.Color]color.RGBA{
	hunt.Gray:  {R: 52, G: 56, B: 64, A: 255},
	hunt.White: {R: 196, G: 200, B: 205, A: 255},
	hunt.Blue:  {R: 48, G: 96, B: 210, A: 255},
	hunt.Red:   {R: 205, G: 56, B: 46, A: 255},
}

// Overlay modes cycled with the O key.
const (
	overlayEntropy = iota
	overlayRed
	overlayOff
	overlayCount
)

type Game struct {
	engine *hunt.Engine
	rows   int
	cols   int

	// Latest completed analysis, nil until the first one lands.
	analysis *hunt.Analysis
	// Receives the result of the in-flight background analysis.
	analysisCh chan *hunt.Analysis
	analyzing  bool

	selX, selY int
	overlay    int
	showHUD    bool
	status     string

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// New builds a game for a rows×cols board hiding aircraft planes, and starts
// the first analysis immediately.
func New(rows, cols, aircraft int) (*Game, error) {
	engine, err := hunt.NewEngine(rows, cols, aircraft)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine:     engine,
		rows:       rows,
		cols:       cols,
		analysisCh: make(chan *hunt.Analysis, 1),
		showHUD:    true,
		prevKeys:   make(map[ebiten.Key]bool),
	}
	g.startAnalysis()
	return g, nil
}

// startAnalysis kicks off a background enumeration. The board must not be
// written while one is in flight; Update enforces that by discarding
// evidence keys until the result arrives.
func (g *Game) startAnalysis() {
	g.analyzing = true
	g.status = "thinking..."
	go func() {
		g.analysisCh <- g.engine.Analyze()
	}()
}

func (g *Game) Update() error {
	select {
	case a := <-g.analysisCh:
		g.analysis = a
		g.analyzing = false
		g.status = fmt.Sprintf("bomb (%d, %c) — %d combinations",
			a.BombX+1, 'A'+byte(a.BombY), a.Combinations)
	default:
	}

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	if pressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if pressed(ebiten.KeyO) {
		g.overlay = (g.overlay + 1) % overlayCount
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyC) {
		g.copyReport()
	}

	// Selection: arrow keys or mouse.
	if pressed(ebiten.KeyArrowUp) && g.selX > 0 {
		g.selX--
	}
	if pressed(ebiten.KeyArrowDown) && g.selX < g.rows-1 {
		g.selX++
	}
	if pressed(ebiten.KeyArrowLeft) && g.selY > 0 {
		g.selY--
	}
	if pressed(ebiten.KeyArrowRight) && g.selY < g.cols-1 {
		g.selY++
	}
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft {
		if x, y, ok := g.cellAt(ebiten.CursorPosition()); ok {
			g.selX, g.selY = x, y
		}
	}
	g.prevMouseLeft = mouseLeft

	// Evidence entry. The engine's board is read by the analysis goroutine,
	// so answers are only accepted between analyses.
	for key, c := range map[ebiten.Key]hunt.Color{
		ebiten.KeyW: hunt.White,
		ebiten.KeyB: hunt.Blue,
		ebiten.KeyR: hunt.Red,
	} {
		if pressed(key) {
			if g.analyzing {
				g.status = "still thinking — answer ignored"
				continue
			}
			g.engine.SetColor(g.selX, g.selY, c)
			g.startAnalysis()
		}
	}
	if pressed(ebiten.KeyEnter) && !g.analyzing && g.analysis != nil {
		// Jump the selection to the engine's suggestion.
		g.selX, g.selY = g.analysis.BombX, g.analysis.BombY
	}

	g.prevKeys = currentKeys
	return nil
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(px, py int) (int, int, bool) {
	x := (py - margin) / cellSize
	y := (px - margin) / cellSize
	if px < margin || py < margin || x < 0 || x >= g.rows || y < 0 || y >= g.cols {
		return 0, 0, false
	}
	return x, y, true
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 30, A: 255})
	face := basicfont.Face7x13

	// Axis labels.
	for y := 0; y < g.cols; y++ {
		text.Draw(screen, string(rune('A'+y)),
			face, margin+y*cellSize+cellSize/2-3, margin-8, color.White)
	}
	for x := 0; x < g.rows; x++ {
		text.Draw(screen, fmt.Sprintf("%d", x+1),
			face, 6, margin+x*cellSize+cellSize/2+4, color.White)
	}

	for x := 0; x < g.rows; x++ {
		for y := 0; y < g.cols; y++ {
			px := float32(margin + y*cellSize)
			py := float32(margin + x*cellSize)
			vector.FillRect(screen, px, py, cellSize-1, cellSize-1,
				cellColors[g.engine.At(x, y)], false)
			g.drawOverlay(screen, x, y, px, py)
		}
	}

	// Suggestion and selection outlines.
	if g.analysis != nil && !g.analyzing {
		px := float32(margin + g.analysis.BombY*cellSize)
		py := float32(margin + g.analysis.BombX*cellSize)
		vector.StrokeRect(screen, px, py, cellSize-1, cellSize-1, 3,
			color.RGBA{R: 255, G: 220, B: 60, A: 255}, false)
	}
	px := float32(margin + g.selY*cellSize)
	py := float32(margin + g.selX*cellSize)
	vector.StrokeRect(screen, px, py, cellSize-1, cellSize-1, 1.5,
		color.RGBA{R: 240, G: 240, B: 240, A: 255}, false)

	if g.showHUD {
		hudY := margin + g.rows*cellSize + 8
		ebitenutil.DebugPrintAt(screen, g.status, margin, hudY)
		ebitenutil.DebugPrintAt(screen,
			"click/arrows: select  W/B/R: answer  Enter: goto suggestion", margin, hudY+18)
		ebitenutil.DebugPrintAt(screen,
			"O: overlay  C: copy report  H: hide help  ESC: quit", margin, hudY+34)
	}
}

// drawOverlay shades an unknown cell by the active statistic and prints its
// value in the cell corner.
func (g *Game) drawOverlay(screen *ebiten.Image, x, y int, px, py float32) {
	if g.overlay == overlayOff || g.analysis == nil || g.analyzing {
		return
	}
	if g.engine.At(x, y) != hunt.Gray {
		return
	}
	p := g.analysis.Prob(x, y)

	var v float64
	var tint color.RGBA
	switch g.overlay {
	case overlayEntropy:
		// ln(3) is the maximum three-way entropy; scale against it.
		v = p.Entropy() / 1.0986
		tint = color.RGBA{R: 80, G: 200, B: 120}
	case overlayRed:
		v = p.Red
		tint = color.RGBA{R: 235, G: 80, B: 60}
	}
	if v > 1 {
		v = 1
	}
	tint.A = uint8(v * 180)
	vector.FillRect(screen, px, py, cellSize-1, cellSize-1, tint, false)
	text.Draw(screen, fmt.Sprintf("%.2f", v), basicfont.Face7x13,
		int(px)+4, int(py)+cellSize-6, color.RGBA{R: 230, G: 230, B: 230, A: 255})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width(), g.Height()
}

// Width and Height are the fixed pixel dimensions of the window.
func (g *Game) Width() int  { return margin*2 + g.cols*cellSize }
func (g *Game) Height() int { return margin*2 + g.rows*cellSize + hudHeight }
