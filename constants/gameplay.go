package constants

// Grid
const (
	GridWidth  = 80
	GridHeight = 24
)

// Formation Layout
const (
	FormationColumns = 9
	FormationRows    = 5

	// FormationOriginX is the x of the leftmost column, FormationSpacingX the column pitch
	FormationOriginX  = 9
	FormationSpacingX = 7

	// FormationOriginY is the first row band, FormationSpacingY the band pitch
	FormationOriginY  = 2
	FormationSpacingY = 3

	MemberWidth  = 5
	MemberHeight = 2
)

// Player
const (
	PlayerWidth  = 7
	PlayerHeight = 2

	MaxLives       = 3
	MaxPlayerShots = 3
)

// Audio cue names
const (
	SoundPew     = "pew"
	SoundBoom    = "boom"
	SoundStartup = "startup"
)
