package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/vi-invaders/constants"
)

// TestSoundManagerGracefulDegradation verifies cues are safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(constants.SoundPew)
	sm.Play(constants.SoundBoom)
	sm.Play(constants.SoundStartup)
	sm.Play("does-not-exist")
	sm.SetMuted(true)
	sm.Wait(10 * time.Millisecond)
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies the manager can be opened and closed
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	sm.Play(constants.SoundPew)
	sm.Wait(time.Second)
}

func TestLoadDirMissingIsNotAnError(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.LoadDir(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("LoadDir on missing dir: %v", err)
	}
}

func TestLoadDirDecodesWav(t *testing.T) {
	dir := t.TempDir()
	writeTestWav(t, filepath.Join(dir, "boom.wav"), beep.SampleRate(22050))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	sm := NewSoundManager()
	if err := sm.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if !sm.Loaded("boom") {
		t.Error("boom.wav not registered")
	}
	if sm.Loaded("notes") {
		t.Error("non-wav file registered")
	}

	// Resampled to the speaker rate
	buf := sm.buffers["boom"]
	if buf.Format().SampleRate != sampleRate {
		t.Errorf("buffer rate = %v, want %v", buf.Format().SampleRate, sampleRate)
	}
	if buf.Len() == 0 {
		t.Error("decoded buffer is empty")
	}
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewSoundManager().LoadFile(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestSynthesizedCuesTerminate(t *testing.T) {
	for _, name := range []string{constants.SoundPew, constants.SoundBoom, constants.SoundStartup} {
		s := synthesize(name, sampleRate)
		if s == nil {
			t.Fatalf("no synth for %q", name)
		}
		total := drain(s, sampleRate.N(5*time.Second))
		if total == 0 {
			t.Errorf("%q produced no samples", name)
		}
		if total >= sampleRate.N(5*time.Second) {
			t.Errorf("%q did not terminate", name)
		}
	}
	if synthesize("unknown", sampleRate) != nil {
		t.Error("unknown cue synthesized")
	}
}

func TestEnvelopeShapesAmplitude(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // phase stays 0, constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("attack start = %v, want 0", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain = %v, want 1", samples[50][0])
	}
	if samples[99][0] <= 0 || samples[99][0] > 0.2 {
		t.Errorf("release tail = %v, want small positive", samples[99][0])
	}
}

func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			break
		}
	}
	return total
}

func writeTestWav(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	tone := NewOscillator(440, 50*time.Millisecond, WaveSine, rate)
	if err := wav.Encode(f, tone, format); err != nil {
		t.Fatalf("encode wav: %v", err)
	}
}
