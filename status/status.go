package status

import (
	"fmt"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Status is the run scoreboard drawn on the top row
type Status struct {
	Score    int
	Lives    int
	Level    int
	Paused   bool
	GameOver bool
	GameWon  bool
}

// New starts a run at level 1 with full lives
func New() *Status {
	return &Status{
		Lives: constants.MaxLives,
		Level: 1,
	}
}

// AddScore credits points for a destroyed member
func (s *Status) AddScore(points int) { s.Score += points }

// SetLives mirrors the player life count
func (s *Status) SetLives(lives int) { s.Lives = lives }

// LevelUp moves to the next level
func (s *Status) LevelUp() { s.Level++ }

// Line renders the HUD text
func (s *Status) Line() string {
	return fmt.Sprintf("Score: %06d  Lives: %02d  Level: %02d", s.Score, s.Lives, s.Level)
}

// Draw writes the HUD on row 0 and any end or pause banner
func (s *Status) Draw(f *core.Frame) {
	f.Text(0, 0, s.Line(), core.ColorHUD)

	switch {
	case s.GameWon:
		s.banner(f, "YOU WIN", fmt.Sprintf("Final score %d", s.Score))
	case s.GameOver:
		s.banner(f, "GAME OVER", fmt.Sprintf("Final score %d", s.Score))
	case s.Paused:
		s.banner(f, "PAUSED", "press p to resume")
	}
}

// banner centers two lines in the middle of the frame
func (s *Status) banner(f *core.Frame, title, sub string) {
	mid := f.Height() / 2
	for i, line := range []string{title, sub} {
		x := (f.Width() - len([]rune(line))) / 2
		if x < 0 {
			continue
		}
		f.Text(x, mid-1+i, line, core.ColorBanner)
	}
}
