package dither

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/bodgit/skribbl/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomImage(r image.Rectangle, seed int64) *image.RGBA {
	rnd := rand.New(rand.NewSource(seed))
	m := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetRGBA(x, y, color.RGBA{uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 0xff})
		}
	}
	return m
}

func at(m *image.Paletted, x, y int) palette.Color {
	return palette.Colors[m.ColorIndexAt(x, y)]
}

// nearest is a plain Manhattan argmin over the palette, first entry wins.
func nearest(v [3]float64) palette.Color {
	best, bestDist := palette.Color{}, math.Inf(1)
	for _, c := range palette.Colors {
		d := math.Abs(v[0]-float64(c.R)) + math.Abs(v[1]-float64(c.G)) + math.Abs(v[2]-float64(c.B))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// reference diffuses unclipped error over a full size grid with explicit
// bounds checks, the textbook way.
func reference(m image.Image) [][]palette.Color {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	errs := make([][][3]float64, h)
	for y := range errs {
		errs[y] = make([][3]float64, w)
	}
	out := make([][]palette.Color, h)
	for y := 0; y < h; y++ {
		out[y] = make([]palette.Color, w)
		for x := 0; x < w; x++ {
			c := palette.FromColor(m.At(b.Min.X+x, b.Min.Y+y))
			var v [3]float64
			for i, ch := range []uint8{c.R, c.G, c.B} {
				v[i] = float64(ch) + errs[y][x][i]
			}
			p := nearest(v)
			out[y][x] = p
			q := [3]float64{v[0] - float64(p.R), v[1] - float64(p.G), v[2] - float64(p.B)}
			spread := func(dx, dy int, wt float64) {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= w || ny >= h {
					return
				}
				for i := range q {
					errs[ny][nx][i] += q[i] * wt
				}
			}
			spread(1, 0, 7.0/16)
			spread(-1, 1, 3.0/16)
			spread(0, 1, 5.0/16)
			spread(1, 1, 1.0/16)
		}
	}
	return out
}

func flat(w, h int, c color.Color) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, c)
		}
	}
	return m
}

func TestQuantizeIsPointwise(t *testing.T) {
	src := randomImage(image.Rect(3, 5, 19, 17), 1)
	dst := Quantize(src)

	require.Equal(t, image.Rect(0, 0, 16, 12), dst.Bounds())
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			want := palette.Nearest(palette.FromColor(src.At(x+3, y+5)))
			assert.Equal(t, want, at(dst, x, y))
		}
	}
}

func TestDisperseMatchesReference(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(0, 0, 7, 1),
		image.Rect(0, 0, 1, 7),
		image.Rect(-4, 2, 20, 15),
	} {
		src := randomImage(r, 42)
		dst := Disperse(src)
		want := reference(src)
		require.Equal(t, image.Rect(0, 0, r.Dx(), r.Dy()), dst.Bounds())
		for y := range want {
			for x := range want[y] {
				assert.Equal(t, want[y][x], at(dst, x, y), "%v at %d,%d", r, x, y)
			}
		}
	}
}

func TestDisperseDoesNotClipError(t *testing.T) {
	// Near white the adjusted color is pushed past 255, clipping it there
	// would lose part of the error carried to the next pixels
	src := flat(16, 16, color.RGBA{250, 250, 240, 0xff})
	dst := Disperse(src)
	want := reference(src)
	for y := range want {
		for x := range want[y] {
			assert.Equal(t, want[y][x], at(dst, x, y), "at %d,%d", x, y)
		}
	}
}

func TestDisperseSpreadsError(t *testing.T) {
	// Mid grey sits between the greys, so a flat field must come out as a
	// mix of more than one palette color once error is carried along.
	m := flat(8, 8, color.RGBA{100, 100, 100, 0xff})

	seen := make(map[palette.Color]bool)
	dst := Disperse(m)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			seen[at(dst, x, y)] = true
		}
	}
	assert.Greater(t, len(seen), 1)

	plain := Quantize(m)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, at(plain, 0, 0), at(plain, x, y))
		}
	}
}

func TestDispersePaletteImageUnchanged(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, palette.Size, 3))
	for y := 0; y < 3; y++ {
		for x, c := range palette.Colors {
			m.Set(x, y, c)
		}
	}

	dst := Disperse(m)
	for y := 0; y < 3; y++ {
		for x, c := range palette.Colors {
			assert.Equal(t, c, at(dst, x, y))
		}
	}
}

func TestEmpty(t *testing.T) {
	m := image.NewRGBA(image.Rectangle{})
	assert.True(t, Quantize(m).Bounds().Empty())
	assert.True(t, Disperse(m).Bounds().Empty())
}
