package status

import (
	"strings"
	"testing"

	"github.com/lixenwraith/vi-invaders/core"
)

func rowText(f *core.Frame, y int) string {
	var sb strings.Builder
	for x := 0; x < f.Width(); x++ {
		sb.WriteRune(f.At(x, y).Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestNewStatus(t *testing.T) {
	s := New()
	if s.Score != 0 || s.Lives != 3 || s.Level != 1 {
		t.Errorf("New() = %+v", s)
	}
	if s.Paused || s.GameOver || s.GameWon {
		t.Error("flags set at start")
	}
}

func TestStatusCounters(t *testing.T) {
	s := New()
	s.AddScore(40)
	s.AddScore(5)
	s.SetLives(2)
	s.LevelUp()

	if s.Score != 45 || s.Lives != 2 || s.Level != 2 {
		t.Errorf("counters = %+v", s)
	}
}

func TestStatusDrawHUD(t *testing.T) {
	s := New()
	s.AddScore(1230)

	f := core.NewFrame(core.DefaultGrid)
	s.Draw(&f)

	want := "Score: 001230  Lives: 03  Level: 01"
	if got := rowText(&f, 0); got != want {
		t.Errorf("HUD = %q, want %q", got, want)
	}
	if f.At(0, 0).Color != core.ColorHUD {
		t.Error("HUD color not applied")
	}
}

func TestStatusBanners(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Status)
		want  string
	}{
		{"paused", func(s *Status) { s.Paused = true }, "PAUSED"},
		{"game over", func(s *Status) { s.GameOver = true }, "GAME OVER"},
		{"won beats over", func(s *Status) { s.GameOver = true; s.GameWon = true }, "YOU WIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.setup(s)
			f := core.NewFrame(core.DefaultGrid)
			s.Draw(&f)

			if got := strings.TrimSpace(rowText(&f, 11)); got != tt.want {
				t.Errorf("banner = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusNoBannerWhilePlaying(t *testing.T) {
	s := New()
	f := core.NewFrame(core.DefaultGrid)
	s.Draw(&f)
	if got := rowText(&f, 11); got != "" {
		t.Errorf("unexpected banner %q", got)
	}
}
