package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

var (
	// ErrInvalidConfig is wrapped by every configuration rejection
	ErrInvalidConfig = errors.New("invalid config")

	// ErrTerminalTooSmall reports a display smaller than the play field
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// Config is the run configuration, defaults overlaid by a TOML file and then flags
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Level is the starting level
	Level int `toml:"level"`
	// MaxLevel ends the run as won after clearing it, zero plays forever
	MaxLevel int `toml:"max_level"`
	// Seed drives formation fire selection, zero picks one from the clock
	Seed uint64 `toml:"seed"`

	FrameDelay time.Duration `toml:"frame_delay"`
	LevelPause time.Duration `toml:"level_pause"`

	Muted    bool   `toml:"muted"`
	SoundDir string `toml:"sound_dir"`

	Debug bool `toml:"debug"`
	// ANSI bypasses tcell and writes escape sequences to stdout
	ANSI bool `toml:"ansi"`
}

// DefaultConfig is the 80x24 endless game starting at level 1
func DefaultConfig() Config {
	return Config{
		Width:      constants.GridWidth,
		Height:     constants.GridHeight,
		Level:      1,
		FrameDelay: constants.FrameDelay,
		LevelPause: constants.LevelPause,
		SoundDir:   "sfx",
	}
}

// LoadConfig decodes path over the defaults and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Grid returns the play field dimensions
func (c Config) Grid() core.Grid {
	return core.Grid{Width: c.Width, Height: c.Height}
}

// Validate rejects undersized grids, bad levels and non-positive delays
func (c Config) Validate() error {
	switch {
	case c.Width < constants.GridWidth || c.Height < constants.GridHeight:
		return fmt.Errorf("%w: grid %dx%d below minimum %dx%d",
			ErrInvalidConfig, c.Width, c.Height, constants.GridWidth, constants.GridHeight)
	case c.Level < 1:
		return fmt.Errorf("%w: level %d must be at least 1", ErrInvalidConfig, c.Level)
	case c.MaxLevel < 0:
		return fmt.Errorf("%w: max_level %d is negative", ErrInvalidConfig, c.MaxLevel)
	case c.MaxLevel > 0 && c.MaxLevel < c.Level:
		return fmt.Errorf("%w: max_level %d below starting level %d", ErrInvalidConfig, c.MaxLevel, c.Level)
	case c.FrameDelay <= 0:
		return fmt.Errorf("%w: frame_delay must be positive", ErrInvalidConfig)
	case c.LevelPause <= 0:
		return fmt.Errorf("%w: level_pause must be positive", ErrInvalidConfig)
	}
	return nil
}

// CheckTerminal verifies a display of width x height can hold the grid
func (c Config) CheckTerminal(width, height int) error {
	if width < c.Width || height < c.Height {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTerminalTooSmall, width, height, c.Width, c.Height)
	}
	return nil
}
