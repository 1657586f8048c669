package render

import (
	"strings"
	"testing"
)

func TestASCIIShading(t *testing.T) {
	cells := []uint8{
		0, 255,
		0, 255,
	}
	got := ASCII(cells, 2, 2, 0)
	if got != " @\n" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestASCIIDownsamples(t *testing.T) {
	w, h := 65, 65
	cells := make([]uint8, w*h)
	for i := range cells {
		cells[i] = uint8(i % w * 255 / (w - 1))
	}
	lines := strings.Split(strings.TrimSuffix(ASCII(cells, w, h, 32), "\n"), "\n")
	if len(lines) != 32*65/65/2 {
		t.Fatalf("expected 16 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len(line) != 32 {
			t.Fatalf("row width %d, expected 32", len(line))
		}
		if line[0] != ' ' {
			t.Fatalf("left edge should be the lowest shade: %q", line)
		}
	}
}

func TestASCIIRejectsMismatch(t *testing.T) {
	if ASCII([]uint8{1, 2, 3}, 2, 2, 10) != "" {
		t.Fatal("mismatched sizes should render nothing")
	}
}
