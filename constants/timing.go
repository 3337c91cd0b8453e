package constants

import "time"

// Projectile Timing
const (
	// ProjectileStep is the time a projectile takes to advance one cell
	ProjectileStep = 75 * time.Millisecond
)

// Formation Timing
const (
	// MoveIntervalBase is the level-0 move interval, reduced by MoveIntervalStep per level
	MoveIntervalBase = 1100 * time.Millisecond

	// MoveIntervalStep is subtracted per level and on every row descent
	MoveIntervalStep = 100 * time.Millisecond

	// MoveIntervalFloor is the fastest the formation ever moves
	MoveIntervalFloor = 250 * time.Millisecond

	// FireIntervalInitial is the delay before the first formation shot of a level
	FireIntervalInitial = 4000 * time.Millisecond

	// FireIntervalMin and FireIntervalMax bound the re-rolled fire interval, max exclusive
	FireIntervalMin = 500 * time.Millisecond
	FireIntervalMax = 8000 * time.Millisecond

	// MemberAnimation drives sprite alternation and the explosion display window
	MemberAnimation = 500 * time.Millisecond
)

// Player Timing
const (
	PlayerAnimation = 1000 * time.Millisecond

	// RespawnDelay is how long a hit player stays down before resurrection
	RespawnDelay = 1000 * time.Millisecond
)

// Loop Timing
const (
	// LevelPause is the freeze inserted between a cleared level and the next
	LevelPause = 1000 * time.Millisecond

	// FrameDelay is the sleep at the end of every loop iteration
	FrameDelay = 1 * time.Millisecond

	// AudioDrainTimeout bounds the wait for queued sounds at shutdown
	AudioDrainTimeout = 2 * time.Second
)

// Sound effect shaping
const (
	PewDuration = 120 * time.Millisecond
	PewAttack   = 2 * time.Millisecond
	PewRelease  = 60 * time.Millisecond

	BoomDuration = 350 * time.Millisecond

	StartupNoteDuration = 110 * time.Millisecond
	StartupNoteAttack   = 5 * time.Millisecond
	StartupNoteRelease  = 50 * time.Millisecond
)

// EndBannerHold keeps the defeat or win banner on screen before the terminal is restored
const EndBannerHold = 2 * time.Second
