package main

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/vi-invaders/engine"
)

// options holds raw flag values; only flags set on the command line override the config
type options struct {
	configPath string
	level      int
	maxLevel   int
	seed       uint64
	mute       bool
	sfx        string
	debug      bool
	ansi       bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("vi-invaders", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.IntVar(&opts.level, "level", 1, "Starting level")
	fs.IntVar(&opts.maxLevel, "max-level", 0, "Last level; clearing it wins the game, 0 plays forever")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 derives one from the clock")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound")
	fs.StringVar(&opts.sfx, "sfx", "sfx", "Directory of <cue>.wav files overriding built-in sounds")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.ansi, "ansi", false, "Render with raw ANSI escapes instead of tcell")
	return fs
}

// parseConfig builds the run config: defaults, then the TOML file, then explicit flags
func parseConfig(args []string) (engine.Config, error) {
	var opts options
	fs := newFlagSet(&opts)
	if err := fs.Parse(args); err != nil {
		return engine.Config{}, err
	}

	cfg := engine.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = engine.LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = opts.level
		case "max-level":
			cfg.MaxLevel = opts.maxLevel
		case "seed":
			cfg.Seed = opts.seed
		case "mute":
			cfg.Muted = opts.mute
		case "sfx":
			cfg.SoundDir = opts.sfx
		case "debug":
			cfg.Debug = opts.debug
		case "ansi":
			cfg.ANSI = opts.ansi
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
