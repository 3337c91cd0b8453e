package entity

import (
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Formation owns the enemy members and their projectiles, and drives collective
// movement, row descent with speed ramp-up, and randomized firing
type Formation struct {
	grid core.Grid
	rng  core.Rand

	members []*Member
	shots   []*Projectile

	direction int
	moveTimer core.Timer
	fireTimer core.Timer
}

// MoveIntervalForLevel is the starting move interval of a level, floored
func MoveIntervalForLevel(level int) time.Duration {
	d := constants.MoveIntervalBase - time.Duration(level)*constants.MoveIntervalStep
	return max(d, constants.MoveIntervalFloor)
}

// NewFormation lays out the 9x5 block for the given level
func NewFormation(level int, grid core.Grid, rng core.Rand) *Formation {
	members := make([]*Member, 0, constants.FormationColumns*constants.FormationRows)
	for i := 0; i < constants.FormationColumns; i++ {
		for j := 0; j < constants.FormationRows; j++ {
			members = append(members, NewMember(
				constants.FormationOriginX+i*constants.FormationSpacingX,
				constants.FormationOriginY+j*constants.FormationSpacingY,
			))
		}
	}
	return newFormation(members, MoveIntervalForLevel(level), grid, rng)
}

func newFormation(members []*Member, moveInterval time.Duration, grid core.Grid, rng core.Rand) *Formation {
	return &Formation{
		grid:      grid,
		rng:       rng,
		members:   members,
		shots:     make([]*Projectile, 0, 8),
		direction: 1,
		moveTimer: core.NewTimer(moveInterval),
		fireTimer: core.NewTimer(constants.FireIntervalInitial),
	}
}

// Members returns the current membership, including exploding members not yet purged
func (fm *Formation) Members() []*Member { return fm.members }

// Projectiles returns formation shots in flight
func (fm *Formation) Projectiles() []*Projectile { return fm.shots }

// ClearProjectiles drops every formation shot in flight
func (fm *Formation) ClearProjectiles() { fm.shots = fm.shots[:0] }

// Direction is -1 moving left, +1 moving right
func (fm *Formation) Direction() int { return fm.direction }

// MoveInterval is the current delay between movement steps
func (fm *Formation) MoveInterval() time.Duration { return fm.moveTimer.Duration() }

// FireInterval is the delay until the next firing attempt
func (fm *Formation) FireInterval() time.Duration { return fm.fireTimer.Duration() }

// AllDead is the level-clear signal: no members remain at all
func (fm *Formation) AllDead() bool {
	return len(fm.members) == 0
}

// Invaded reports any alive member reaching the second-to-last row
func (fm *Formation) Invaded() bool {
	limit := fm.grid.LastRow()
	for _, m := range fm.members {
		if m.Alive() && m.Bounds().Bottom() >= limit {
			return true
		}
	}
	return false
}

// CheckHit kills the first alive member, in membership order, overlapping t
func (fm *Formation) CheckHit(t core.Transform) (score int, hit bool) {
	for _, m := range fm.members {
		if m.Alive() && core.Collides(m, t) {
			m.Kill()
			return m.Score(), true
		}
	}
	return 0, false
}

// Update runs one tick: timers, purge, member animation, movement step, firing, shots
func (fm *Formation) Update(delta time.Duration) {
	fm.moveTimer.Update(delta)
	fm.fireTimer.Update(delta)

	fm.purgeRemoved()
	for _, m := range fm.members {
		m.Update(delta)
	}

	if fm.moveTimer.Ready() {
		fm.step()
		fm.moveTimer.Reset()
	}

	if fm.fireTimer.Ready() {
		fm.fire()
		fm.fireTimer.SetDuration(fm.rollFireInterval())
	}

	fm.shots = updateProjectiles(fm.shots, delta)
}

func (fm *Formation) purgeRemoved() {
	kept := fm.members[:0]
	for _, m := range fm.members {
		if !m.Removable() {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(fm.members); i++ {
		fm.members[i] = nil
	}
	fm.members = kept
}

// step moves the formation one cell sideways, or one row down on the tick the leading edge
// reaches a boundary, flipping direction and shortening the move interval
func (fm *Formation) step() {
	minX, maxX, ok := fm.extent()
	if !ok {
		return
	}

	descend := false
	if fm.direction < 0 {
		if minX <= 0 {
			fm.direction = 1
			descend = true
		}
	} else if maxX >= fm.grid.LastColumn() {
		fm.direction = -1
		descend = true
	}

	if descend {
		next := max(fm.moveTimer.Duration()-constants.MoveIntervalStep, constants.MoveIntervalFloor)
		fm.moveTimer.SetDuration(next)
	}

	// Exploding members travel with the block until purged
	for _, m := range fm.members {
		if m.Removable() {
			continue
		}
		if descend {
			m.moveDown()
		} else {
			m.moveX(fm.direction)
		}
	}
}

// extent returns min x and max right edge over alive members
func (fm *Formation) extent() (minX, maxX int, ok bool) {
	for _, m := range fm.members {
		if !m.Alive() {
			continue
		}
		r := m.Bounds()
		if !ok {
			minX, maxX, ok = r.X, r.Right(), true
			continue
		}
		minX = min(minX, r.X)
		maxX = max(maxX, r.Right())
	}
	return minX, maxX, ok
}

// fire picks a slot uniformly over the whole membership; a dead slot means no shot
func (fm *Formation) fire() {
	if len(fm.members) == 0 {
		return
	}
	m := fm.members[fm.rng.Intn(len(fm.members))]
	if !m.Alive() {
		return
	}
	fm.shots = append(fm.shots, NewProjectile(m.x+2, m.y+2, DirectionDown, fm.grid))
}

// rollFireInterval draws uniformly from [FireIntervalMin, FireIntervalMax)
func (fm *Formation) rollFireInterval() time.Duration {
	span := int((constants.FireIntervalMax - constants.FireIntervalMin) / time.Millisecond)
	return constants.FireIntervalMin + time.Duration(fm.rng.Intn(span))*time.Millisecond
}

// Draw paints members, then formation shots
func (fm *Formation) Draw(f *core.Frame) {
	for _, m := range fm.members {
		m.Draw(f)
	}
	for _, s := range fm.shots {
		s.Draw(f)
	}
}
