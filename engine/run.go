package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/render"
)

// Run drives the game at a fixed rate with svc rendering on its own goroutine
// Frames pass through a single-slot channel; the send is the only place the
// simulation can block. The channel is closed on exit so svc returns
func (g *Game) Run(ctx context.Context, svc *render.Service, clock TimeProvider) (Outcome, error) {
	eg, ctx := errgroup.WithContext(ctx)
	frames := make(chan core.Frame, 1)

	eg.Go(core.Guard(func() error {
		return svc.Run(frames)
	}))

	outcome := OutcomeQuit
	eg.Go(core.Guard(func() error {
		defer close(frames)
		outcome = g.loop(ctx, frames, clock)
		return nil
	}))

	if err := eg.Wait(); err != nil {
		return outcome, fmt.Errorf("game loop: %w", err)
	}
	return outcome, nil
}

func (g *Game) loop(ctx context.Context, frames chan<- core.Frame, clock TimeProvider) Outcome {
	g.Start()

	delay := time.NewTimer(g.cfg.FrameDelay)
	defer delay.Stop()

	last := clock.Now()
	for {
		now := clock.Now()
		out := g.Tick(now.Sub(last))
		last = now
		if g.takeSlept() {
			// Time spent in the level pause is not accounted to any timer
			last = clock.Now()
		}

		select {
		case frames <- g.Frame():
		case <-ctx.Done():
			slog.Debug("loop cancelled", "err", ctx.Err())
			return OutcomeQuit
		}

		if out.Terminal() {
			slog.Info("loop finished", "outcome", out.String(), "score", g.status.Score, "level", g.status.Level)
			return out
		}

		delay.Reset(g.cfg.FrameDelay)
		select {
		case <-delay.C:
		case <-ctx.Done():
			return OutcomeQuit
		}
	}
}
