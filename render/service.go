package render

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/status"
)

// Service drains frames from the simulation and displays them
type Service struct {
	renderer *Renderer
	grid     core.Grid

	invalid atomic.Bool

	statFrames *atomic.Int64
	statWrites *atomic.Int64
}

// NewService creates a render consumer, counters land in reg when non-nil
func NewService(grid core.Grid, sink Sink, reg *status.Registry) *Service {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Service{
		renderer:   NewRenderer(grid, sink),
		grid:       grid,
		statFrames: reg.Counter("render.frames"),
		statWrites: reg.Counter("render.writes"),
	}
}

// Invalidate forces a full redraw of the next frame, safe from any goroutine
func (s *Service) Invalidate() {
	s.invalid.Store(true)
}

// Run paints a blank screen, then renders every received frame until the channel closes
// A sink error ends the loop; the producer must select on its context to avoid blocking
func (s *Service) Run(frames <-chan core.Frame) error {
	if _, err := s.renderer.Render(core.NewFrame(s.grid), true); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}

	for frame := range frames {
		n, err := s.renderer.Render(frame, s.invalid.Swap(false))
		if err != nil {
			slog.Error("render failed", "err", err)
			return fmt.Errorf("render frame: %w", err)
		}
		s.statFrames.Add(1)
		s.statWrites.Add(int64(n))
	}
	slog.Debug("render service stopped", "frames", s.statFrames.Load())
	return nil
}
