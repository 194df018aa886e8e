// Command hunt is the interactive solver. Each round it prints the entropy
// matrix, suggests the cell to bomb, and reads the adversary's answer: either
// a single color character for the suggested cell, or "row letter color" to
// report a different cell.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/wujingyue/aircraft-finder/internal/hunt"
	"github.com/wujingyue/aircraft-finder/internal/live"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s -r rows -c cols -n aircraft [-serve addr]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	var rows, cols, aircraft int
	var serveAddr string
	flag.IntVar(&rows, "r", 0, "board rows")
	flag.IntVar(&cols, "c", 0, "board columns")
	flag.IntVar(&aircraft, "n", 0, "number of hidden aircraft")
	flag.StringVar(&serveAddr, "serve", "", "serve the live heatmap view on this address (e.g. :8080)")
	flag.Parse()

	if rows <= 0 || cols <= 0 || aircraft <= 0 {
		usage()
	}
	engine, err := hunt.NewEngine(rows, cols, aircraft)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	var updates chan []live.EleUpdate
	if serveAddr != "" {
		updates = make(chan []live.EleUpdate, 1)
		server := live.NewServer(serveAddr, rows, cols, updates)
		go func() {
			if err := server.ListenAndServe(context.Background()); err != nil {
				log.Printf("live view: %v", err)
			}
		}()
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		analysis := engine.Analyze()
		hunt.FprintEntropyMatrix(os.Stdout, engine, analysis)
		if updates != nil {
			// Drop the frame rather than stall the prompt on a slow viewer.
			select {
			case updates <- live.Convert(engine, analysis):
			default:
			}
		}

		fmt.Printf("(%d, %c) > ", analysis.BombX+1, 'A'+byte(analysis.BombY))
		if !scanner.Scan() {
			break
		}

		x, y, c, err := parseAnswer(scanner.Text(), analysis.BombX, analysis.BombY)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		if x < 0 || x >= rows || y < 0 || y >= cols {
			fmt.Fprintf(os.Stderr, "error: (%d, %c) is off the board\n", x+1, 'A'+byte(y))
			continue
		}
		engine.SetColor(x, y, c)
	}
}

// parseAnswer interprets one input line. A single color character applies to
// the suggested cell (sx, sy); "row letter color" names the cell explicitly,
// with a 1-based row and a case-insensitive column letter.
func parseAnswer(line string, sx, sy int) (int, int, hunt.Color, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		if len(fields[0]) == 1 {
			if c, ok := hunt.ParseColor(fields[0][0]); ok {
				return sx, sy, c, nil
			}
		}
	case 3:
		row, err := strconv.Atoi(fields[0])
		if err != nil {
			break
		}
		if len(fields[1]) != 1 || len(fields[2]) != 1 {
			break
		}
		letter := fields[1][0]
		var col int
		switch {
		case letter >= 'A' && letter <= 'Z':
			col = int(letter - 'A')
		case letter >= 'a' && letter <= 'z':
			col = int(letter - 'a')
		default:
			return 0, 0, hunt.Gray, fmt.Errorf("bad column %q", fields[1])
		}
		c, ok := hunt.ParseColor(fields[2][0])
		if !ok {
			break
		}
		return row - 1, col, c, nil
	}
	return 0, 0, hunt.Gray, fmt.Errorf("cannot parse %q (want \"r\" or \"3 D b\")", line)
}
