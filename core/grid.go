package core

import "github.com/lixenwraith/vi-invaders/constants"

// Grid is the fixed playfield size in cells
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the 80x24 reference playfield
var DefaultGrid = Grid{Width: constants.GridWidth, Height: constants.GridHeight}

// Contains returns true if the cell lies inside the grid
func (g Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// LastRow is the index of the bottom row
func (g Grid) LastRow() int {
	return g.Height - 1
}

// LastColumn is the index of the rightmost column
func (g Grid) LastColumn() int {
	return g.Width - 1
}
