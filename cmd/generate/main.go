// Command generate prints a random ground-truth board for playing against
// the solver by hand, or for scripting a benchmark.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/wujingyue/aircraft-finder/internal/hunt"
)

func main() {
	var rows, cols, aircraft int
	var seed int64
	flag.IntVar(&rows, "r", 0, "board rows")
	flag.IntVar(&cols, "c", 0, "board columns")
	flag.IntVar(&aircraft, "n", 0, "number of hidden aircraft")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	if rows <= 0 || cols <= 0 || aircraft <= 0 {
		fmt.Fprintf(os.Stderr, "usage: %s -r rows -c cols -n aircraft [-seed n]\n", os.Args[0])
		os.Exit(1)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen, err := hunt.NewGenerator(rows, cols, aircraft, rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	hunt.FprintBoard(os.Stdout, gen.Generate())
}
