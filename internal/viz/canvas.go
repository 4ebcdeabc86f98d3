package viz

import (
	"strings"
)

// Braille patterns give a 2x4 sub-pixel grid per cell, unicode offset
// 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Set lights the sub-pixel at (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetCell overwrites a whole cell with a glyph, e.g. a star marker.
func (c *Canvas) SetCell(col, row int, r rune) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
}

func (c *Canvas) Render() string {
	var sb strings.Builder
	for _, row := range c.Grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
