package audio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/vi-invaders/audio/cue"
)

const (
	sampleRate = beep.SampleRate(44100)

	// resampleQuality is the beep interpolation quality for loaded files
	resampleQuality = 4
)

var _ cue.Player = (*SoundManager)(nil)

// SoundManager plays cues through a single speaker mixer
// Cues with a loaded file use it; the rest are synthesized
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	buffers     map[string]*beep.Buffer
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized manager; Play is a no-op until Initialize succeeds
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
	}
}

// Initialize opens the speaker device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// LoadDir decodes every .wav file in dir into memory, keyed by file stem
// A missing directory is not an error
func (sm *SoundManager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read sound dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := sm.LoadFile(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile decodes one wav file and registers it under its file stem
func (sm *SoundManager) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer)
	}

	format.SampleRate = sampleRate
	buf := beep.NewBuffer(format)
	buf.Append(src)

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	sm.mu.Lock()
	sm.buffers[name] = buf
	sm.mu.Unlock()

	slog.Debug("sound loaded", "name", name, "samples", buf.Len())
	return nil
}

// Loaded reports whether a cue has a file-backed buffer
func (sm *SoundManager) Loaded(name string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.buffers[name]
	return ok
}

// SetMuted silences future cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Play queues a cue; unknown names and an absent device are ignored
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := sm.streamerFor(name)
	if s == nil {
		slog.Debug("unknown sound cue", "name", name)
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// streamerFor resolves a cue, caller holds mu
func (sm *SoundManager) streamerFor(name string) beep.Streamer {
	if buf, ok := sm.buffers[name]; ok {
		return buf.Streamer(0, buf.Len())
	}
	return synthesize(name, sampleRate)
}

// Wait blocks until queued sounds finish or timeout elapses
func (sm *SoundManager) Wait(timeout time.Duration) {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()
	if !initialized {
		return
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		speaker.Lock()
		pending := sm.mixer.Len()
		speaker.Unlock()
		if pending == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}
