package constants

// MemberBands maps a starting row to its sprite pair and score value
// Rearmost band scores highest
var MemberBands = map[int]MemberBand{
	2:  {Frames: [2]string{" /^\\ \n|^|^|", " /^\\ \n ||| "}, Score: 40},
	5:  {Frames: [2]string{"|_o_ \n | ||", " _o_|\n|| | "}, Score: 30},
	8:  {Frames: [2]string{"~T~T~\n /~\\ ", "/P^P\\\n |~| "}, Score: 20},
	11: {Frames: [2]string{"/~~~\\\n\\-V-/", "/~~~\\\n /V\\ "}, Score: 10},
	14: {Frames: [2]string{"/___\\\n / \\ ", "\\___/\n \\V/ "}, Score: 5},
}

// MemberBand describes one row band of the formation
type MemberBand struct {
	Frames [2]string
	Score  int
}

// PlayerSprite is the single player animation frame
const PlayerSprite = " _/^\\_ \n|#####|"

// Projectile glyphs
const (
	GlyphShotUp   = '↑'
	GlyphShotDown = '↓'
)
