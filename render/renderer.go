package render

import (
	"github.com/lixenwraith/vi-invaders/core"
)

// Renderer diffs each frame against the previous one and emits only changed cells
// It knows nothing about entities, only about two equally sized cell grids
type Renderer struct {
	sink Sink
	prev core.Frame
}

// NewRenderer starts from a blank previous frame of the grid size
func NewRenderer(grid core.Grid, sink Sink) *Renderer {
	return &Renderer{
		sink: sink,
		prev: core.NewFrame(grid),
	}
}

// Render emits the delta between the previous frame and cur, or every cell when forced
// Returns the number of cell writes issued; cur becomes the previous frame
func (r *Renderer) Render(cur core.Frame, force bool) (int, error) {
	if !cur.SameSize(&r.prev) {
		force = true
	}

	if force {
		r.sink.Clear()
	}

	writes := 0
	for y := 0; y < cur.Height(); y++ {
		for x := 0; x < cur.Width(); x++ {
			c := cur.At(x, y)
			if !force && c == r.prev.At(x, y) {
				continue
			}
			r.sink.SetCell(x, y, c)
			writes++
		}
	}

	r.prev = cur
	return writes, r.sink.Flush()
}

// Previous returns the last rendered frame
func (r *Renderer) Previous() core.Frame {
	return r.prev
}
