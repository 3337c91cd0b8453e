// Package cue is the fire-and-forget sound collaborator seen by the simulation
// It carries no audio device dependency; audio.SoundManager implements Player
package cue

// Player triggers named sound cues; playback failures never reach the caller
//
//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player
type Player interface {
	Play(name string)
}

// Nop discards every cue
type Nop struct{}

// Play discards the cue
func (Nop) Play(string) {}
