package main

import (
	"github.com/bodgit/skribbl"
	"github.com/bodgit/skribbl/picker"
	"github.com/bodgit/skribbl/picture"
	"github.com/bodgit/skribbl/queue"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

// Flags shared by every command that converts pictures
func pictureFlags() []cli.Flag {
	return []cli.Flag{
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "draw-area",
			EnvVars: []string{"SKRIBBL_DRAW_AREA"},
			Usage:   "drawing area on screen as `xXyYwWhH`",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "cell",
			EnvVars: []string{"SKRIBBL_CELL"},
			Value:   skribbl.DefaultCell,
			Usage:   "screen pixels per picture pixel",
		}),
		altsrc.NewFloat64Flag(&cli.Float64Flag{
			Name:    "scale",
			EnvVars: []string{"SKRIBBL_SCALE"},
			Value:   skribbl.DefaultScale,
			Usage:   "scale applied after fitting to the drawing area",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "dither",
			EnvVars: []string{"SKRIBBL_DITHER"},
			Usage:   "use Floyd-Steinberg error diffusion",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "grayscale",
			EnvVars: []string{"SKRIBBL_GRAYSCALE"},
			Usage:   "drop the hue before matching colors",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "colors",
			EnvVars: []string{"SKRIBBL_COLORS"},
			Usage:   "reduce the picture to `N` colors first, 0 disables",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "background",
			EnvVars: []string{"SKRIBBL_BACKGROUND"},
			Value:   "#ffffff",
			Usage:   "color used for transparent pixels",
		}),
	}
}

func drawFlags() []cli.Flag {
	return append(pictureFlags(),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "color-area",
			EnvVars: []string{"SKRIBBL_COLOR_AREA"},
			Usage:   "top-left cell of the color picker as `xXyYwWhH`",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "checkerboard",
			EnvVars: []string{"SKRIBBL_CHECKERBOARD"},
			Usage:   "draw alternate pixels in two passes",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "order",
			EnvVars: []string{"SKRIBBL_ORDER"},
			Value:   queue.Batched.String(),
			Usage:   "instruction order, combined or batch",
		}),
		altsrc.NewDurationFlag(&cli.DurationFlag{
			Name:    "delay",
			EnvVars: []string{"SKRIBBL_DELAY"},
			Value:   skribbl.DefaultDelay,
			Usage:   "pause after every click",
		}),
		altsrc.NewDurationFlag(&cli.DurationFlag{
			Name:    "timeout",
			EnvVars: []string{"SKRIBBL_TIMEOUT"},
			Value:   skribbl.DefaultTimeout,
			Usage:   "stop drawing after this long",
		}),
		&cli.BoolFlag{
			Name:  "clipboard",
			Usage: "read the image from the clipboard",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "log pointer actions instead of performing them",
		},
	)
}

func parseBox(c *cli.Context, name string) (picker.Box, error) {
	// Left empty, the box fails validation later if it is needed
	if c.String(name) == "" {
		return picker.Box{}, nil
	}
	return picker.ParseBox(c.String(name))
}

func pictureOptions(c *cli.Context) (picture.Options, error) {
	cfg, err := configFromContext(c, false)
	if err != nil {
		return picture.Options{}, err
	}
	return cfg.Picture(), nil
}

func configFromContext(c *cli.Context, drawing bool) (skribbl.Config, error) {
	cfg := skribbl.DefaultConfig()

	area, err := parseBox(c, "draw-area")
	if err != nil {
		return cfg, err
	}
	cfg.Canvas = picker.Canvas{Box: area, Cell: c.Int("cell")}

	bg, err := picture.ParseColor(c.String("background"))
	if err != nil {
		return cfg, err
	}

	cfg.Scale = c.Float64("scale")
	cfg.Dither = c.Bool("dither")
	cfg.Grayscale = c.Bool("grayscale")
	cfg.Colors = c.Int("colors")
	cfg.Background = bg

	if !drawing {
		return cfg, nil
	}

	if cfg.Picker, err = parseBox(c, "color-area"); err != nil {
		return cfg, err
	}
	if cfg.Order, err = queue.ParseOrder(c.String("order")); err != nil {
		return cfg, err
	}
	cfg.Checkerboard = c.Bool("checkerboard")
	cfg.Delay = c.Duration("delay")
	cfg.Timeout = c.Duration("timeout")

	return cfg, nil
}
