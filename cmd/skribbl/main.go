package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/bodgit/skribbl"
	"github.com/bodgit/skribbl/palette"
	"github.com/bodgit/skribbl/picker"
	"github.com/bodgit/skribbl/pointer"
	"github.com/bodgit/skribbl/pointer/x11"
	"github.com/joho/godotenv"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const defaultDB = "skribbl.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(c.App.ErrWriter)
	logger.SetLevel(logrus.WarnLevel)
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func newBot(c *cli.Context, logger logrus.FieldLogger) (*skribbl.Bot, func(), error) {
	if c.String("db") == "" {
		return skribbl.New(nil, logger), func() {}, nil
	}

	cache, err := skribbl.NewCache(c.String("db"))
	if err != nil {
		return nil, nil, err
	}
	return skribbl.New(cache, logger), func() { cache.Close() }, nil
}

func loadSource(c *cli.Context) (skribbl.Source, error) {
	var r io.Reader
	switch file := c.Args().First(); {
	case c.Bool("clipboard"):
		cr, err := readClipboard()
		if err != nil {
			return skribbl.Source{}, err
		}
		r = cr
	case file == "" || file == "-":
		r = c.App.Reader
	default:
		f, err := os.Open(file)
		if err != nil {
			return skribbl.Source{}, err
		}
		defer f.Close()
		r = f
	}

	return skribbl.Load(r)
}

func withConfig(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))
}

func drawAction(c *cli.Context) error {
	logger := newLogger(c)

	cfg, err := configFromContext(c, true)
	if err != nil {
		return cli.Exit(err, 1)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, 1)
	}

	src, err := loadSource(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	bot, closer, err := newBot(c, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer closer()

	stop := new(skribbl.Flag)

	var p pointer.Pointer
	if c.Bool("dry-run") {
		p = &pointer.Dry{Logger: logger}
	} else {
		d, err := x11.Open()
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer d.Close()
		p = d

		l, err := x11.Listen()
		if err != nil {
			logger.WithError(err).Warn("escape key will not stop drawing")
		} else {
			defer l.Close()
			go l.Wait(stop.Cancel)
		}
	}

	ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
	defer cancel()

	res, err := bot.Draw(ctx, p, src, cfg, stop)
	if err != nil {
		return cli.Exit(err, 1)
	}

	status := "complete"
	switch {
	case res.TimedOut:
		status = "timed out"
	case res.Cancelled:
		status = "cancelled"
	}
	fmt.Fprintf(c.App.Writer, "drew %d of %d pixels, %s\n", res.Drawn, res.Total, status)

	return nil
}

func previewAction(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	o, err := pictureOptions(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	f, err := os.Open(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer f.Close()

	src, err := skribbl.Load(f)
	if err != nil {
		return cli.Exit(err, 1)
	}

	bot, closer, err := newBot(c, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer closer()

	m, err := bot.Convert(src, o)
	if err != nil {
		return cli.Exit(err, 1)
	}

	var out image.Image = m
	if zoom := c.Int("zoom"); zoom > 1 {
		b := m.Bounds()
		dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom), m.Palette)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
		out = dst
	}

	w, err := os.Create(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer w.Close()

	if err := png.Encode(w, out); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func paletteAction(c *cli.Context) error {
	var colors picker.Map
	if area := c.String("color-area"); area != "" {
		box, err := picker.ParseBox(area)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if colors, err = picker.Build(box); err != nil {
			return cli.Exit(err, 1)
		}
	}

	for _, p := range palette.Colors {
		hex, _ := colorful.MakeColor(p)
		fmt.Fprintf(c.App.Writer, "%-14s %s %4d", p, hex.Hex(), p.Brightness())
		if colors != nil {
			pt, _ := colors.Lookup(p)
			fmt.Fprintf(c.App.Writer, " %d,%d", pt.X, pt.Y)
		}
		if p == palette.Eraser {
			fmt.Fprint(c.App.Writer, " (eraser)")
		}
		fmt.Fprintln(c.App.Writer)
	}

	return nil
}

func precacheAction(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	o, err := pictureOptions(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	bot, closer, err := newBot(c, logger)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer closer()

	if err := bot.Precache(c.Context, c.Args().First(), o, c.Int("workers")); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func historyAction(c *cli.Context) error {
	if c.String("db") == "" {
		return cli.Exit("no database given", 1)
	}

	cache, err := skribbl.NewCache(c.String("db"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer cache.Close()

	records, err := cache.Records(c.Int("limit"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	for _, r := range records {
		status := "complete"
		switch {
		case r.TimedOut:
			status = "timed out"
		case r.Cancelled:
			status = "cancelled"
		}
		fmt.Fprintf(c.App.Writer, "%s %s %d/%d %s %s\n",
			r.Started.Format(time.RFC3339), r.SHA1, r.Drawn, r.Total, r.Duration.Round(time.Millisecond), status)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "skribbl"
	app.Usage = "Draw images on skribbl.io"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SKRIBBL_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database, empty disables caching",
		},
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"SKRIBBL_CONFIG"},
			Usage:   "load flag values from YAML `FILE`",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	drawing := drawFlags()
	previewing := append(pictureFlags(), &cli.IntFlag{
		Name:  "zoom",
		Value: 1,
		Usage: "enlarge the preview by `N`",
	})
	precaching := append(pictureFlags(), &cli.IntFlag{
		Name:  "workers",
		Value: runtime.NumCPU(),
		Usage: "number of images converted at once",
	})

	app.Commands = []*cli.Command{
		{
			Name:        "draw",
			Usage:       "Draw an image",
			Description: "Reads the image from FILE, standard input or the clipboard and draws it. Press Escape to stop.",
			ArgsUsage:   "[FILE]",
			Flags:       drawing,
			Before:      withConfig(drawing),
			Action:      drawAction,
		},
		{
			Name:      "preview",
			Usage:     "Write the converted image as PNG",
			ArgsUsage: "FILE OUTPUT",
			Flags:     previewing,
			Before:    withConfig(previewing),
			Action:    previewAction,
		},
		{
			Name:  "palette",
			Usage: "List the palette colors",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "color-area",
					EnvVars: []string{"SKRIBBL_COLOR_AREA"},
					Usage:   "also list picker positions for this `xXyYwWhH` cell",
				},
			},
			Action: paletteAction,
		},
		{
			Name:      "precache",
			Usage:     "Convert every image in a directory ahead of time",
			ArgsUsage: "DIRECTORY",
			Flags:     precaching,
			Before:    withConfig(precaching),
			Action:    precacheAction,
		},
		{
			Name:  "history",
			Usage: "List previous drawing sessions",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Value: 20,
					Usage: "number of sessions to list",
				},
			},
			Action: historyAction,
		},
	}

	return app
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
