package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
)

// TcellSink writes cells to a tcell screen
type TcellSink struct {
	screen tcell.Screen
	synced bool
}

// NewTcellSink wraps an initialized screen
func NewTcellSink(screen tcell.Screen) *TcellSink {
	return &TcellSink{screen: screen}
}

// Clear fills the screen with the clear background
func (s *TcellSink) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(ClearBackground))
	s.synced = true
}

// SetCell stages one styled rune
func (s *TcellSink) SetCell(x, y int, c core.Cell) {
	s.screen.SetContent(x, y, c.Rune, nil, StyleFor(c.Color))
}

// Flush shows pending changes, a cleared screen is fully repainted
func (s *TcellSink) Flush() error {
	if s.synced {
		s.screen.Sync()
		s.synced = false
		return nil
	}
	s.screen.Show()
	return nil
}
