package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/audio/cue"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/input"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/status"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := parseConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	tagRun(uuid.NewString())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	core.SetCrashReset(fini)
	// Normal exit terminal cleanup
	defer fini()

	w, h := screen.Size()
	if err := cfg.CheckTerminal(w, h); err != nil {
		fini()
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		return 1
	}
	screen.HideCursor()

	var sink render.Sink = render.NewTcellSink(screen)
	if cfg.ANSI {
		sink = render.NewANSISink(os.Stdout)
	}

	var snd cue.Player = cue.Nop{}
	if !cfg.Muted {
		if sm := newSoundManager(cfg.SoundDir); sm != nil {
			defer sm.Cleanup()
			snd = sm
		}
	}

	src := input.NewTcellSource(screen, input.DefaultKeyTable())
	defer src.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	slog.Info("starting", "seed", seed, "level", cfg.Level, "max_level", cfg.MaxLevel, "ansi", cfg.ANSI)

	reg := status.NewRegistry()
	game := engine.NewGame(cfg, core.NewFastRand(seed), src, snd, reg)
	svc := render.NewService(cfg.Grid(), sink, reg)
	game.OnResize(svc.Invalidate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := game.Run(ctx, svc, engine.NewMonotonicTimeProvider())
	if outcome == engine.OutcomeDefeat || outcome == engine.OutcomeWon {
		time.Sleep(constants.EndBannerHold)
	}
	if sm, ok := snd.(*audio.SoundManager); ok {
		sm.Wait(constants.AudioDrainTimeout)
	}

	st := game.Status()
	slog.Info("run finished", append([]any{"outcome", outcome.String(), "score", st.Score, "level", st.Level},
		reg.LogAttrs()...)...)

	fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		return 1
	}
	fmt.Printf("%s - score %d, level %d\n", outcome, st.Score, st.Level)
	return 0
}

// newSoundManager opens the audio device, nil when unavailable
func newSoundManager(dir string) *audio.SoundManager {
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "err", err)
		return nil
	}
	if err := sm.LoadDir(dir); err != nil {
		slog.Warn("sound files not loaded, using built-in effects", "dir", dir, "err", err)
	}
	return sm
}
