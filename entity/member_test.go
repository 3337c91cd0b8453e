package entity

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/core"
)

func TestNewMemberBands(t *testing.T) {
	tests := []struct {
		row   int
		score int
	}{
		{2, 40},
		{5, 30},
		{8, 20},
		{11, 10},
		{14, 5},
	}

	for _, tt := range tests {
		m := NewMember(9, tt.row)
		if m.Score() != tt.score {
			t.Errorf("row %d score = %d, want %d", tt.row, m.Score(), tt.score)
		}
		if !m.Alive() || m.State() != MemberAlive {
			t.Errorf("row %d member not alive at creation", tt.row)
		}
		b := m.Bounds()
		if b.W != 5 || b.H != 2 {
			t.Errorf("row %d bounds = %+v, want 5x2", tt.row, b)
		}
	}
}

func TestNewMemberInvalidRowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unsupported row band")
		}
	}()
	NewMember(9, 3)
}

func TestMemberDeathLifecycle(t *testing.T) {
	m := NewMember(9, 2)

	// Let the animation timer run partway before the hit
	m.Update(400 * time.Millisecond)
	m.Kill()
	if m.State() != MemberExploding {
		t.Fatalf("state after Kill = %v, want exploding", m.State())
	}

	// Kill restarted the timer, 400ms more is still inside the window
	m.Update(400 * time.Millisecond)
	if m.State() != MemberExploding {
		t.Fatalf("state = %v before explosion window elapsed", m.State())
	}

	m.Update(100 * time.Millisecond)
	if !m.Removable() {
		t.Errorf("state = %v after explosion window, want removed", m.State())
	}

	// Second kill is a no-op
	m.Kill()
	if m.State() != MemberRemoved {
		t.Error("Kill resurrected a removed member")
	}
}

func TestMemberDraw(t *testing.T) {
	f := core.NewFrame(core.DefaultGrid)
	m := NewMember(9, 2)
	m.Draw(&f)
	if f.At(10, 2).Rune != '/' || f.At(9, 3).Rune != '|' {
		t.Errorf("sprite not drawn: %q %q", f.At(10, 2).Rune, f.At(9, 3).Rune)
	}

	f = core.NewFrame(core.DefaultGrid)
	m.Kill()
	m.Draw(&f)
	want := map[[2]int]rune{{10, 2}: '\\', {12, 2}: '/', {10, 3}: '/', {12, 3}: '\\'}
	for pos, r := range want {
		if c := f.At(pos[0], pos[1]); c.Rune != r || c.Color != core.ColorExplosion {
			t.Errorf("explosion cell %v = %+v, want %q", pos, c, r)
		}
	}
	if f.At(9, 2) != core.BlankCell {
		t.Error("exploding member still drew its sprite")
	}

	// The frame on which the member becomes removable still shows the explosion
	f = core.NewFrame(core.DefaultGrid)
	m.Update(500 * time.Millisecond)
	if !m.Removable() {
		t.Fatalf("state = %v, want removed", m.State())
	}
	m.Draw(&f)
	if c := f.At(10, 2); c.Rune != '\\' || c.Color != core.ColorExplosion {
		t.Errorf("removal frame cell = %+v, want explosion glyph", c)
	}
}

func TestMemberAnimationAlternates(t *testing.T) {
	m := NewMember(9, 2)
	first := m.frames[m.frameIdx]
	m.Update(500 * time.Millisecond)
	if m.frames[m.frameIdx] == first {
		t.Error("animation frame did not advance")
	}
	m.Update(500 * time.Millisecond)
	if m.frames[m.frameIdx] != first {
		t.Error("animation did not wrap")
	}
}
