package core

import "fmt"

// Color is a palette slot, resolved to a concrete style by the render sink
type Color uint8

const (
	ColorDefault Color = iota
	ColorEnemy
	ColorPlayer
	ColorShot
	ColorExplosion
	ColorHUD
	ColorBanner
)

// Cell is one drawable grid position
type Cell struct {
	Rune  rune
	Color Color
}

// BlankCell is the empty background cell
var BlankCell = Cell{Rune: ' ', Color: ColorDefault}

// Frame is a row-major grid of cells produced once per tick
// A frame handed to the renderer is owned by it; producers allocate a fresh one each tick
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame allocates a blank frame sized to the grid
func NewFrame(g Grid) Frame {
	cells := make([]Cell, g.Width*g.Height)
	if len(cells) > 0 {
		cells[0] = BlankCell
		for filled := 1; filled < len(cells); filled *= 2 {
			copy(cells[filled:], cells[:filled])
		}
	}
	return Frame{width: g.Width, height: g.Height, cells: cells}
}

// Width returns the frame width in cells
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in cells
func (f *Frame) Height() int { return f.height }

// Set writes a cell; out-of-bounds writes are programming errors
func (f *Frame) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("frame: write out of bounds at (%d,%d) in %dx%d", x, y, f.width, f.height))
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Color: c}
}

// At returns the cell at a position
func (f *Frame) At(x, y int) Cell {
	return f.cells[y*f.width+x]
}

// Text writes a string horizontally starting at (x, y)
func (f *Frame) Text(x, y int, s string, c Color) {
	for i, r := range []rune(s) {
		f.Set(x+i, y, r, c)
	}
}

// Sprite writes a multi-line string with its top-left at (x, y)
func (f *Frame) Sprite(x, y int, s string, c Color) {
	col, row := 0, 0
	for _, r := range s {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		f.Set(x+col, y+row, r, c)
		col++
	}
}

// Clone returns an independent copy
func (f *Frame) Clone() Frame {
	cells := make([]Cell, len(f.cells))
	copy(cells, f.cells)
	return Frame{width: f.width, height: f.height, cells: cells}
}

// SameSize reports whether two frames share dimensions
func (f *Frame) SameSize(o *Frame) bool {
	return f.width == o.width && f.height == o.height
}
