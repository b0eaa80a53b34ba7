package skribbl

import (
	"errors"
	"image/color"
	"time"

	"github.com/bodgit/skribbl/picker"
	"github.com/bodgit/skribbl/picture"
	"github.com/bodgit/skribbl/queue"
)

// Defaults taken from what works well against the live site.
const (
	DefaultCell    = 3
	DefaultDelay   = 7 * time.Millisecond
	DefaultTimeout = 55 * time.Second
	DefaultScale   = 1.0
)

var (
	errBadScale   = errors.New("skribbl: scale must be positive")
	errBadTimeout = errors.New("skribbl: timeout must be positive")
	errBadDelay   = errors.New("skribbl: delay must not be negative")
	errBadColors  = errors.New("skribbl: colors must be 0 or between 2 and 256")
	errBadOrder   = errors.New("skribbl: unknown queue order")
)

// Config is the configuration of one drawing session.
type Config struct {
	// Canvas is the drawing area and the size of a drawn pixel on it.
	Canvas picker.Canvas
	// Picker is the top-left cell of the color picker.
	Picker picker.Box

	Dither       bool
	Checkerboard bool
	Grayscale    bool
	Order        queue.Order

	Delay   time.Duration
	Timeout time.Duration

	Scale      float64
	Colors     int
	Background color.Color
}

// DefaultConfig returns a Config with the defaults filled in. The canvas
// and picker boxes still need to be set.
func DefaultConfig() Config {
	return Config{
		Canvas:  picker.Canvas{Cell: DefaultCell},
		Order:   queue.Batched,
		Delay:   DefaultDelay,
		Timeout: DefaultTimeout,
		Scale:   DefaultScale,
	}
}

// Validate returns a *ConfigError if c cannot be used to draw.
func (c Config) Validate() error {
	if err := c.Canvas.Validate(); err != nil {
		return configError(err)
	}
	if err := c.Picker.Validate(); err != nil {
		return configError(err)
	}

	switch {
	case c.Scale <= 0:
		return configError(errBadScale)
	case c.Timeout <= 0:
		return configError(errBadTimeout)
	case c.Delay < 0:
		return configError(errBadDelay)
	case c.Colors != 0 && (c.Colors < 2 || c.Colors > 256):
		return configError(errBadColors)
	case c.Order != queue.Combined && c.Order != queue.Batched:
		return configError(errBadOrder)
	}

	return nil
}

// Picture returns the conversion options that fit the canvas.
func (c Config) Picture() picture.Options {
	w, h := c.Canvas.Size()
	return picture.Options{
		Width:      w,
		Height:     h,
		Scale:      c.Scale,
		Dither:     c.Dither,
		Grayscale:  c.Grayscale,
		Colors:     c.Colors,
		Background: c.Background,
	}
}

// Queue returns the options used to build the draw passes.
func (c Config) Queue() queue.Options {
	return queue.Options{
		Checkerboard: c.Checkerboard,
		Order:        c.Order,
	}
}
