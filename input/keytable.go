package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable binds arrows and a/d to movement, space/enter to fire, q/Esc/Ctrl-C to quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyEnter:  IntentFire,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
			' ': IntentFire,
			'q': IntentQuit,
			'p': IntentPause,
		},
	}
}

// Lookup decodes a key event into an intent, IntentNone when unbound
func (kt *KeyTable) Lookup(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		if intent, ok := kt.Runes[r]; ok {
			return intent
		}
		return IntentNone
	}
	if intent, ok := kt.SpecialKeys[key]; ok {
		return intent
	}
	return IntentNone
}
