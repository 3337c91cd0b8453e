package entity

import (
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Player is the user-controlled ship
type Player struct {
	x, y  int
	grid  core.Grid
	lives int
	alive bool

	shots []*Projectile

	sprites   []string
	spriteIdx int
	animTimer core.Timer

	respawnTimer core.Timer
}

// NewPlayer places the ship centered on the third-from-last row
func NewPlayer(grid core.Grid) *Player {
	return &Player{
		x:            grid.Width/2 - 4,
		y:            grid.Height - 3,
		grid:         grid,
		lives:        constants.MaxLives,
		alive:        true,
		shots:        make([]*Projectile, 0, constants.MaxPlayerShots),
		sprites:      []string{constants.PlayerSprite},
		animTimer:    core.NewTimer(constants.PlayerAnimation),
		respawnTimer: core.NewTimer(constants.RespawnDelay),
	}
}

// MoveLeft shifts the ship one column left, stopping at the edge
func (p *Player) MoveLeft() {
	if p.x > 0 {
		p.x--
	}
}

// MoveRight shifts the ship one column right while it still fits
func (p *Player) MoveRight() {
	if p.x+constants.PlayerWidth < p.grid.Width {
		p.x++
	}
}

// Shoot fires from the nose of the ship, false when the in-flight cap is reached
func (p *Player) Shoot() bool {
	if len(p.shots) >= constants.MaxPlayerShots {
		return false
	}
	p.shots = append(p.shots, NewProjectile(p.x+3, p.y-1, DirectionUp, p.grid))
	return true
}

// Die takes a life; defeated is true when none remain and no respawn will follow
func (p *Player) Die() (lives int, defeated bool) {
	if !p.alive {
		return p.lives, p.lives == 0
	}
	p.alive = false
	p.lives--
	if p.lives > 0 {
		p.respawnTimer.Reset()
	}
	return p.lives, p.lives == 0
}

// Resurrect restores the ship immediately
func (p *Player) Resurrect() {
	p.alive = true
	p.respawnTimer.Reset()
}

// Alive reports whether the ship is on screen and can act
func (p *Player) Alive() bool { return p.alive }

// Respawning is true while a hit player with lives left waits for the respawn delay
func (p *Player) Respawning() bool {
	return !p.alive && p.lives > 0
}

// Lives returns the remaining lives
func (p *Player) Lives() int { return p.lives }

// ResetLives refills lives at a level transition
func (p *Player) ResetLives() {
	p.lives = constants.MaxLives
}

// Projectiles returns the shots in flight, callers may mark them exploded
func (p *Player) Projectiles() []*Projectile {
	return p.shots
}

// ClearProjectiles drops every player shot in flight
func (p *Player) ClearProjectiles() {
	p.shots = p.shots[:0]
}

// Position returns the top-left cell
func (p *Player) Position() (int, int) { return p.x, p.y }

// Bounds is the ship sprite rectangle
func (p *Player) Bounds() core.Rect {
	return core.Rect{X: p.x, Y: p.y, W: constants.PlayerWidth, H: constants.PlayerHeight}
}

// Update advances shots, sprite animation and the respawn timer
func (p *Player) Update(delta time.Duration) {
	p.shots = updateProjectiles(p.shots, delta)

	if p.animTimer.Update(delta) {
		p.spriteIdx = (p.spriteIdx + 1) % len(p.sprites)
		p.animTimer.Reset()
	}

	if p.Respawning() && p.respawnTimer.Update(delta) {
		p.Resurrect()
	}
}

// Draw renders the ship while alive and its shots always
func (p *Player) Draw(f *core.Frame) {
	if p.alive {
		f.Sprite(p.x, p.y, p.sprites[p.spriteIdx], core.ColorPlayer)
	}
	for _, s := range p.shots {
		s.Draw(f)
	}
}
