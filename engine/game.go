package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-invaders/audio/cue"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/entity"
	"github.com/lixenwraith/vi-invaders/input"
	"github.com/lixenwraith/vi-invaders/status"
)

// Outcome is the result of one tick
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeQuit
	OutcomeDefeat
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeQuit:
		return "quit"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run ends with this outcome
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}

// Game owns the simulation state and advances it one tick at a time
// All methods run on the simulation goroutine
type Game struct {
	cfg  Config
	grid core.Grid
	rng  core.Rand

	status    *status.Status
	player    *entity.Player
	formation *entity.Formation

	input input.Source
	audio cue.Player

	paused bool
	// slept is set when the tick blocked in sleep; the loop must not count that time
	slept bool

	sleep    func(time.Duration)
	onResize func()

	statTicks  *atomic.Int64
	statShots  *atomic.Int64
	statKills  *atomic.Int64
	statDeaths *atomic.Int64
	statLevels *atomic.Int64
}

// NewGame builds a run at cfg.Level; nil src or snd are replaced by no-ops
func NewGame(cfg Config, rng core.Rand, src input.Source, snd cue.Player, reg *status.Registry) *Game {
	if src == nil {
		src = noInput{}
	}
	if snd == nil {
		snd = cue.Nop{}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	st := status.New()
	st.Level = cfg.Level
	grid := cfg.Grid()

	return &Game{
		cfg:        cfg,
		grid:       grid,
		rng:        rng,
		status:     st,
		player:     entity.NewPlayer(grid),
		formation:  entity.NewFormation(cfg.Level, grid, rng),
		input:      src,
		audio:      snd,
		sleep:      time.Sleep,
		onResize:   func() {},
		statTicks:  reg.Counter("engine.ticks"),
		statShots:  reg.Counter("engine.shots"),
		statKills:  reg.Counter("engine.kills"),
		statDeaths: reg.Counter("engine.deaths"),
		statLevels: reg.Counter("engine.levels"),
	}
}

// OnResize registers the callback run when the display size changes
func (g *Game) OnResize(fn func()) {
	g.onResize = fn
}

// Status returns the scoreboard
func (g *Game) Status() *status.Status { return g.status }

// Player returns the ship
func (g *Game) Player() *entity.Player { return g.player }

// Formation returns the current level's formation
func (g *Game) Formation() *entity.Formation { return g.formation }

// Paused reports whether updates are frozen
func (g *Game) Paused() bool { return g.paused }

// Start announces the run
func (g *Game) Start() {
	g.audio.Play(constants.SoundStartup)
	slog.Info("game started", "level", g.status.Level, "max_level", g.cfg.MaxLevel)
}

// Tick advances the simulation by delta:
// input, player and formation update, collision, loss and level checks
func (g *Game) Tick(delta time.Duration) Outcome {
	g.statTicks.Add(1)

	if g.handleInput() {
		return OutcomeQuit
	}
	if g.paused {
		return OutcomeContinue
	}

	alive := g.player.Alive()

	g.player.Update(delta)
	g.formation.Update(delta)

	if alive {
		g.collidePlayerShots(g.player.Projectiles())
		if g.collideFormationShots(g.formation.Projectiles()) {
			g.status.GameOver = true
			slog.Info("defeat", "reason", "lives exhausted", "score", g.status.Score)
			return OutcomeDefeat
		}
	}

	if g.formation.Invaded() {
		g.status.GameOver = true
		slog.Info("defeat", "reason", "invaded", "score", g.status.Score)
		return OutcomeDefeat
	}

	if g.formation.AllDead() {
		return g.advanceLevel()
	}
	return OutcomeContinue
}

// handleInput drains the source, returns true on quit
// Movement and fire are ignored while paused or while the player is down
func (g *Game) handleInput() bool {
	for _, intent := range g.input.Poll() {
		switch intent {
		case input.IntentQuit:
			return true
		case input.IntentPause:
			g.paused = !g.paused
			g.status.Paused = g.paused
		case input.IntentResize:
			g.onResize()
		}

		if g.paused || !g.player.Alive() {
			continue
		}

		switch intent {
		case input.IntentMoveLeft:
			g.player.MoveLeft()
		case input.IntentMoveRight:
			g.player.MoveRight()
		case input.IntentFire:
			if g.player.Shoot() {
				g.statShots.Add(1)
				g.audio.Play(constants.SoundPew)
			}
		}
	}
	return false
}

// collidePlayerShots tests each shot against the formation; first member hit wins
func (g *Game) collidePlayerShots(shots []*entity.Projectile) {
	for _, shot := range shots {
		if shot.Exploding() {
			continue
		}
		score, hit := g.formation.CheckHit(shot)
		if !hit {
			continue
		}
		shot.Explode()
		g.status.AddScore(score)
		g.statKills.Add(1)
		g.audio.Play(constants.SoundBoom)
	}
}

// collideFormationShots tests enemy shots against the player, returns true on defeat
func (g *Game) collideFormationShots(shots []*entity.Projectile) bool {
	for _, shot := range shots {
		if shot.Exploding() || !g.player.Alive() {
			continue
		}
		if !core.Collides(shot, g.player) {
			continue
		}
		shot.Explode()
		g.audio.Play(constants.SoundBoom)
		g.statDeaths.Add(1)

		lives, defeated := g.player.Die()
		g.status.SetLives(lives)
		slog.Debug("player hit", "lives", lives)
		if defeated {
			return true
		}
	}
	return false
}

// advanceLevel handles a cleared formation: win at MaxLevel, otherwise pause and rebuild
func (g *Game) advanceLevel() Outcome {
	g.statLevels.Add(1)

	if g.cfg.MaxLevel > 0 && g.status.Level >= g.cfg.MaxLevel {
		g.status.GameWon = true
		slog.Info("game won", "level", g.status.Level, "score", g.status.Score)
		return OutcomeWon
	}

	g.sleep(g.cfg.LevelPause)
	g.slept = true

	g.status.LevelUp()
	g.formation = entity.NewFormation(g.status.Level, g.grid, g.rng)
	g.player.ResetLives()
	g.status.SetLives(g.player.Lives())
	g.player.ClearProjectiles()
	g.formation.ClearProjectiles()

	slog.Info("level cleared", "level", g.status.Level, "score", g.status.Score,
		"move_interval", g.formation.MoveInterval())
	return OutcomeContinue
}

// takeSlept reports and clears whether the last tick slept
func (g *Game) takeSlept() bool {
	s := g.slept
	g.slept = false
	return s
}

// Frame draws the current state into a fresh frame value
func (g *Game) Frame() core.Frame {
	f := core.NewFrame(g.grid)
	g.formation.Draw(&f)
	g.player.Draw(&f)
	g.status.Draw(&f)
	return f
}

type noInput struct{}

func (noInput) Poll() []input.Intent { return nil }
