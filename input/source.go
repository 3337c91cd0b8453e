package input

import (
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/core"
)

// eventBuffer bounds pending intents between polls; excess key presses are dropped
const eventBuffer = 64

// TcellSource pumps screen events on a goroutine and hands them out on Poll
type TcellSource struct {
	screen tcell.Screen
	keys   *KeyTable
	events chan Intent

	stopOnce sync.Once
	done     chan struct{}
}

// NewTcellSource starts the event pump on an initialized screen
func NewTcellSource(screen tcell.Screen, keys *KeyTable) *TcellSource {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	s := &TcellSource{
		screen: screen,
		keys:   keys,
		events: make(chan Intent, eventBuffer),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s
}

func (s *TcellSource) pump() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		intent := s.decode(ev)
		if intent == IntentNone {
			continue
		}
		select {
		case s.events <- intent:
		case <-s.done:
			return
		default:
			slog.Debug("input buffer full, dropping intent", "intent", intent)
		}
	}
}

func (s *TcellSource) decode(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.keys.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return IntentResize
	default:
		return IntentNone
	}
}

// Poll drains pending intents without blocking
func (s *TcellSource) Poll() []Intent {
	var out []Intent
	for {
		select {
		case intent := <-s.events:
			out = append(out, intent)
		default:
			return out
		}
	}
}

// Close stops delivering intents; the pump exits once the screen is finalized
func (s *TcellSource) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}
