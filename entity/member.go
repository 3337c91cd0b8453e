package entity

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// MemberState is the soft-delete lifecycle of a formation member
type MemberState uint8

const (
	// MemberAlive members move, animate, fire and can be hit
	MemberAlive MemberState = iota
	// MemberExploding members display the explosion until the animation timer fires
	MemberExploding
	// MemberRemoved members are purged at the start of the next formation update
	MemberRemoved
)

func (s MemberState) String() string {
	switch s {
	case MemberAlive:
		return "alive"
	case MemberExploding:
		return "exploding"
	case MemberRemoved:
		return "removed"
	default:
		return fmt.Sprintf("MemberState(%d)", uint8(s))
	}
}

// Member is one enemy of the formation
type Member struct {
	x, y      int
	state     MemberState
	frames    [2]string
	frameIdx  int
	animTimer core.Timer
	score     int
}

// NewMember creates a member at a row band start; any other row is a programming error
func NewMember(x, y int) *Member {
	band, ok := constants.MemberBands[y]
	if !ok {
		panic(fmt.Sprintf("entity: invalid member starting row %d", y))
	}
	return &Member{
		x:         x,
		y:         y,
		state:     MemberAlive,
		frames:    band.Frames,
		animTimer: core.NewTimer(constants.MemberAnimation),
		score:     band.Score,
	}
}

// Kill starts the explosion window, the animation timer doubles as its clock
func (m *Member) Kill() {
	if m.state != MemberAlive {
		return
	}
	m.state = MemberExploding
	m.animTimer.Reset()
}

// Alive reports whether the member can still move, fire and be hit
func (m *Member) Alive() bool { return m.state == MemberAlive }

// Removable reports whether the explosion window has ended
func (m *Member) Removable() bool { return m.state == MemberRemoved }

// State returns the lifecycle state
func (m *Member) State() MemberState { return m.state }

// Score is the value credited when the member is hit
func (m *Member) Score() int { return m.score }

// Position returns the top-left cell
func (m *Member) Position() (int, int) { return m.x, m.y }

func (m *Member) moveDown() { m.y++ }

func (m *Member) moveX(direction int) { m.x += direction }

// Bounds is the 5x2 sprite rectangle
func (m *Member) Bounds() core.Rect {
	return core.Rect{X: m.x, Y: m.y, W: constants.MemberWidth, H: constants.MemberHeight}
}

// Update alternates the sprite and ends the explosion window when the animation timer fires
func (m *Member) Update(delta time.Duration) {
	if !m.animTimer.Update(delta) {
		return
	}
	if m.state == MemberExploding {
		m.state = MemberRemoved
	}
	m.frameIdx = (m.frameIdx + 1) % len(m.frames)
	m.animTimer.Reset()
}

// Draw renders the band sprite while alive, explosion glyphs afterwards
func (m *Member) Draw(f *core.Frame) {
	switch m.state {
	case MemberAlive:
		f.Sprite(m.x, m.y, m.frames[m.frameIdx], core.ColorEnemy)
	case MemberExploding, MemberRemoved:
		// The removal frame still shows the explosion; the member is purged on the next update
		f.Set(m.x+1, m.y, '\\', core.ColorExplosion)
		f.Set(m.x+3, m.y, '/', core.ColorExplosion)
		f.Set(m.x+1, m.y+1, '/', core.ColorExplosion)
		f.Set(m.x+3, m.y+1, '\\', core.ColorExplosion)
	}
}
