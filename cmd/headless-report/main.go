// Command headless-report plays seeded solver-vs-generator games without any
// UI and prints accuracy and timing statistics: per-run lines, a bomb-count
// histogram, and an aggregate block. Seeds advance deterministically so a
// report can be reproduced exactly.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/wujingyue/aircraft-finder/internal/hunt"
)

type runReport struct {
	runIndex int
	stats    hunt.HuntStats
}

func main() {
	var runs int
	var rows, cols, aircraft int
	var seedBase, seedStep int64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless games")
	flag.IntVar(&rows, "r", 10, "board rows")
	flag.IntVar(&cols, "c", 10, "board columns")
	flag.IntVar(&aircraft, "n", 2, "number of hidden aircraft")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&verbose, "verbose", false, "print every move of every game")
	flag.Parse()

	if runs <= 0 || rows <= 0 || cols <= 0 || aircraft <= 0 {
		fmt.Fprintf(os.Stderr,
			"usage: %s -runs n -r rows -c cols -n aircraft [-seed-base n] [-seed-step n]\n",
			os.Args[0])
		os.Exit(1)
	}

	fmt.Printf("=== Aircraft Hunt Report ===\n")
	fmt.Printf("board=%dx%d aircraft=%d runs=%d seed_base=%d seed_step=%d\n\n",
		rows, cols, aircraft, runs, seedBase, seedStep)

	all := make([]runReport, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		opts := []hunt.HuntOption{
			hunt.WithSize(rows, cols),
			hunt.WithAircraft(aircraft),
			hunt.WithSeed(seed),
		}
		if verbose {
			opts = append(opts, hunt.WithVerboseLog())
		}
		h, err := hunt.NewHunt(opts...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		stats, err := h.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: run %d (seed %d): %v\n", i+1, seed, err)
			os.Exit(1)
		}
		if verbose {
			for _, e := range h.Log.Entries() {
				fmt.Println(e)
			}
		}
		report := runReport{runIndex: i + 1, stats: stats}
		all = append(all, report)
		printRun(report)
	}

	printAggregate(all)
}

func printRun(r runReport) {
	s := r.stats
	fmt.Printf("run %2d  seed=%-6d bombs=%-3d heads=%d  total=%-12v slowest_move=%v\n",
		r.runIndex, s.Seed, s.Bombs, s.HeadsHit, s.Duration.Round(time.Microsecond),
		slowest(s.MoveTimes).Round(time.Microsecond))
}

func printAggregate(all []runReport) {
	bombs := make([]int, 0, len(all))
	var totalBombs int
	var totalTime time.Duration
	var moveCount int
	var moveTotal time.Duration
	for _, r := range all {
		bombs = append(bombs, r.stats.Bombs)
		totalBombs += r.stats.Bombs
		totalTime += r.stats.Duration
		for _, mt := range r.stats.MoveTimes {
			moveCount++
			moveTotal += mt
		}
	}
	sort.Ints(bombs)

	fmt.Printf("\n--- aggregate ---\n")
	fmt.Printf("bombs: min=%d median=%d max=%d avg=%.1f\n",
		bombs[0], bombs[len(bombs)/2], bombs[len(bombs)-1],
		float64(totalBombs)/float64(len(all)))
	fmt.Printf("time:  total=%v avg_move=%v moves=%d\n",
		totalTime.Round(time.Millisecond),
		(moveTotal / time.Duration(moveCount)).Round(time.Microsecond),
		moveCount)

	fmt.Printf("\nbombs histogram:\n")
	for _, line := range histogram(bombs, 5) {
		fmt.Println(line)
	}
}

func slowest(times []time.Duration) time.Duration {
	var max time.Duration
	for _, t := range times {
		if t > max {
			max = t
		}
	}
	return max
}

// histogram renders sorted values as fixed-width buckets with a bar per
// bucket padded to 20 columns, e.g. " 15-19  | ####                 (4)".
func histogram(sorted []int, bucketWidth int) []string {
	if len(sorted) == 0 {
		return nil
	}
	lo := sorted[0] / bucketWidth
	hi := sorted[len(sorted)-1] / bucketWidth

	counts := make([]int, hi-lo+1)
	for _, v := range sorted {
		counts[v/bucketWidth-lo]++
	}

	var out []string
	for i, n := range counts {
		bucket := (lo + i) * bucketWidth
		out = append(out, fmt.Sprintf("%3d-%-3d | %-20s (%d)",
			bucket, bucket+bucketWidth-1, strings.Repeat("#", n), n))
	}
	return out
}
