package render

import "github.com/lixenwraith/vi-invaders/core"

// Sink receives cell writes from the renderer
// Writes between two Flush calls form one frame
type Sink interface {
	// Clear resets the whole screen to the background before a forced redraw
	Clear()
	// SetCell queues a cursor move and character write
	SetCell(x, y int, c core.Cell)
	// Flush pushes queued writes to the terminal
	Flush() error
}
