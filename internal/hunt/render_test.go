package hunt

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestFprintBoard(t *testing.T) {
	gen, err := NewGenerator(10, 10, 1, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	FprintBoard(&buf, gen.Generate())
	out := buf.String()

	if !strings.Contains(out, " A") || !strings.Contains(out, " J") {
		t.Errorf("missing column letters:\n%s", out)
	}
	if !strings.Contains(out, " 1: ") || !strings.Contains(out, "10: ") {
		t.Errorf("missing 1-based row labels:\n%s", out)
	}
	if got := strings.Count(out, "AA"); got != AircraftSize {
		t.Errorf("aircraft glyphs = %d, want %d", got, AircraftSize)
	}
}

func TestFprintEntropyMatrix(t *testing.T) {
	e, err := NewEngine(10, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	a := e.Analyze()

	var buf bytes.Buffer
	FprintEntropyMatrix(&buf, e, a)
	out := buf.String()

	if lines := strings.Count(out, "\n"); lines != 11 {
		t.Errorf("matrix lines = %d, want header plus 10 rows", lines)
	}
	// Exactly one cell — the suggestion — renders bold.
	if got := strings.Count(out, "\033[1;"); got != 1 {
		t.Errorf("bold cells = %d, want 1", got)
	}
}
