package input

// Intent is a discrete player action decoded from a key press
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentFire
	IntentQuit
	IntentPause
	IntentResize
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentMoveLeft:  "move-left",
	IntentMoveRight: "move-right",
	IntentFire:      "fire",
	IntentQuit:      "quit",
	IntentPause:     "pause",
	IntentResize:    "resize",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Source supplies intents without blocking; an empty result means no input this tick
//
//go:generate go tool mockgen -destination=./mocks/source_mock.go -package=mocks . Source
type Source interface {
	Poll() []Intent
}
