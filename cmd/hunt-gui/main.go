// Command hunt-gui is the graphical solver client.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wujingyue/aircraft-finder/internal/gui"
)

func main() {
	var rows, cols, aircraft int
	flag.IntVar(&rows, "r", 10, "board rows")
	flag.IntVar(&cols, "c", 10, "board columns")
	flag.IntVar(&aircraft, "n", 2, "number of hidden aircraft")
	flag.Parse()

	if rows <= 0 || cols <= 0 || aircraft <= 0 {
		fmt.Fprintf(os.Stderr, "usage: %s -r rows -c cols -n aircraft\n", os.Args[0])
		os.Exit(1)
	}

	game, err := gui.New(rows, cols, aircraft)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("Aircraft Hunt")
	ebiten.SetWindowSize(game.Width(), game.Height())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, gui.ErrQuit) {
		log.Fatal(err)
	}
}
