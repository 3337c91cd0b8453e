package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
)

// Background colors, the forced clear paints blue before the black playfield goes down
var (
	ClearBackground = tcell.ColorNavy
	FieldBackground = tcell.ColorBlack
)

// paletteTcell maps palette slots to tcell foregrounds
var paletteTcell = map[core.Color]tcell.Color{
	core.ColorDefault:   tcell.ColorWhite,
	core.ColorEnemy:     tcell.ColorLime,
	core.ColorPlayer:    tcell.ColorAqua,
	core.ColorShot:      tcell.ColorYellow,
	core.ColorExplosion: tcell.ColorOrangeRed,
	core.ColorHUD:       tcell.ColorSilver,
	core.ColorBanner:    tcell.ColorFuchsia,
}

// palette256 maps palette slots to xterm-256 indices for the raw ANSI sink
var palette256 = map[core.Color]int{
	core.ColorDefault:   15,
	core.ColorEnemy:     10,
	core.ColorPlayer:    14,
	core.ColorShot:      11,
	core.ColorExplosion: 202,
	core.ColorHUD:       7,
	core.ColorBanner:    13,
}

// StyleFor returns the tcell style of a palette slot on the playfield background
func StyleFor(c core.Color) tcell.Style {
	fg, ok := paletteTcell[c]
	if !ok {
		fg = tcell.ColorWhite
	}
	style := tcell.StyleDefault.Background(FieldBackground).Foreground(fg)
	if c == core.ColorBanner {
		style = style.Bold(true)
	}
	return style
}

func index256(c core.Color) int {
	if n, ok := palette256[c]; ok {
		return n
	}
	return 15
}
