package main

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/skribbl/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string, w, h int) {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				m.Set(x, y, palette.Black)
			} else {
				m.Set(x, y, palette.LightRed)
			}
		}
	}
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	out := new(bytes.Buffer)
	app := newApp()
	app.Writer = out
	app.ErrWriter = io.Discard
	require.NoError(t, app.Run(append([]string{"skribbl"}, args...)))
	return out.String()
}

func TestDrawDryRun(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "test.db")
	file := filepath.Join(dir, "in.png")
	writePNG(t, file, 10, 10)

	out := run(t, "--db", db, "draw", "--dry-run", "--draw-area", "x100y100w30h30", "--color-area", "x0y0w10h10", "--delay", "0", "--checkerboard", file)
	assert.Equal(t, "drew 100 of 100 pixels, complete\n", out)

	out = run(t, "--db", db, "history")
	assert.Contains(t, out, " 100/100 ")
	assert.Contains(t, out, "complete")
}

func TestDrawConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.png")
	writePNG(t, file, 4, 2)

	config := filepath.Join(dir, "skribbl.yaml")
	require.NoError(t, os.WriteFile(config, []byte("draw-area: x0y0w4h2\ncolor-area: x0y0w10h10\ncell: 1\norder: combined\ndelay: 0s\n"), 0o644))

	out := run(t, "--db", "", "--config", config, "draw", "--dry-run", file)
	assert.Equal(t, "drew 8 of 8 pixels, complete\n", out)
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.png")
	output := filepath.Join(dir, "out.png")
	writePNG(t, file, 8, 4)

	run(t, "--db", "", "preview", "--draw-area", "x0y0w12h12", "--zoom", "2", file, output)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	m, err := png.Decode(f)
	require.NoError(t, err)
	// 8x4 fits 4x4 cells as 4x2, then doubled
	assert.Equal(t, image.Rect(0, 0, 8, 4), m.Bounds())
}

func TestPalette(t *testing.T) {
	out := run(t, "palette", "--color-area", "x0y0w10h10")
	assert.Contains(t, out, "light red      #ef130b  269 25,5\n")
	assert.Contains(t, out, "white          #ffffff  765 5,5 (eraser)\n")
}

func TestPrecache(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 3, 3)
	writePNG(t, filepath.Join(dir, "b.png"), 6, 2)

	run(t, "--db", filepath.Join(t.TempDir(), "test.db"), "precache", "--workers", "2", dir)
}
