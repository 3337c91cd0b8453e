package entity

import (
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Direction is the vertical travel direction of a projectile
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
)

// Projectile is a single shot moving one cell per step
type Projectile struct {
	x, y      int
	direction Direction
	timer     core.Timer
	exploding bool
	grid      core.Grid
}

// NewProjectile creates a projectile at (x, y)
func NewProjectile(x, y int, direction Direction, grid core.Grid) *Projectile {
	return &Projectile{
		x:         x,
		y:         y,
		direction: direction,
		timer:     core.NewTimer(constants.ProjectileStep),
		grid:      grid,
	}
}

// Explode marks the projectile as spent by a hit
func (p *Projectile) Explode() {
	p.exploding = true
}

// Exploding reports whether a collision consumed the projectile
func (p *Projectile) Exploding() bool {
	return p.exploding
}

// Dead is true once the projectile reached its edge row or exploded
func (p *Projectile) Dead() bool {
	if p.exploding {
		return true
	}
	if p.direction == DirectionUp {
		return p.y == 0
	}
	return p.y == p.grid.LastRow()
}

// Direction returns the travel direction
func (p *Projectile) Direction() Direction {
	return p.direction
}

// Position returns the current cell
func (p *Projectile) Position() (int, int) {
	return p.x, p.y
}

// Bounds is the single cell the shot occupies
func (p *Projectile) Bounds() core.Rect {
	return core.Rect{X: p.x, Y: p.y, W: 1, H: 1}
}

// Update moves one cell per ProjectileStep in the travel direction
func (p *Projectile) Update(delta time.Duration) {
	if !p.timer.Update(delta) {
		return
	}
	switch p.direction {
	case DirectionUp:
		if p.y > 0 {
			p.y--
		}
	case DirectionDown:
		if p.y < p.grid.LastRow() {
			p.y++
		}
	}
	p.timer.Reset()
}

// Draw renders an arrow pointing the way the shot travels
func (p *Projectile) Draw(f *core.Frame) {
	glyph := constants.GlyphShotUp
	if p.direction == DirectionDown {
		glyph = constants.GlyphShotDown
	}
	f.Set(p.x, p.y, glyph, core.ColorShot)
}

// updateProjectiles drops dead projectiles, then advances the survivors
func updateProjectiles(shots []*Projectile, delta time.Duration) []*Projectile {
	live := shots[:0]
	for _, s := range shots {
		if !s.Dead() {
			live = append(live, s)
		}
	}
	// Release references held past the new length
	for i := len(live); i < len(shots); i++ {
		shots[i] = nil
	}
	for _, s := range live {
		s.Update(delta)
	}
	return live
}
