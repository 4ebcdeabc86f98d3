package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)

	if c.Grid[0][0] == 0x2800 {
		t.Error("expected lit sub-pixel in first cell")
	}

	// Out-of-range sets must be ignored, not panic.
	c.Set(-1, 0)
	c.Set(0, -5)
	c.Set(1000, 1000)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(2, 2)
	c.Clear()

	for i, row := range c.Grid {
		for j, r := range row {
			if r != 0x2800 {
				t.Errorf("cell (%d,%d) not cleared", i, j)
			}
		}
	}
}

func TestCanvasRenderShape(t *testing.T) {
	c := NewCanvas(5, 3)
	out := c.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 5 {
			t.Errorf("expected 5 runes per line, got %d", len([]rune(l)))
		}
	}
}

func TestCanvasSetCell(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetCell(1, 1, '*')

	if c.Grid[1][1] != '*' {
		t.Error("expected glyph in cell")
	}
	c.SetCell(99, 0, '*') // ignored
}
