/*
Package dither reduces full color images to the skribbl palette.

Quantize maps each pixel independently to its nearest palette color. Disperse
does the same in raster order while diffusing the quantization error of each
pixel onto its unvisited neighbours using the Floyd-Steinberg kernel:

	      *    7/16
	3/16 5/16  1/16

Error is carried as floating point and is never clipped, so an adjusted
color may lie outside 0..255. Error that would land outside the image is
dropped.
*/
package dither

import (
	"image"

	"github.com/bodgit/skribbl/palette"
)

const (
	weightRight      = 7.0 / 16
	weightBelowLeft  = 3.0 / 16
	weightBelow      = 5.0 / 16
	weightBelowRight = 1.0 / 16
)

func newPaletted(b image.Rectangle) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Palette())
}

func set(m *image.Paletted, x, y int, c palette.Color) {
	i, _ := palette.Index(c)
	m.SetColorIndex(x, y, uint8(i))
}

// Quantize returns a copy of m where every pixel is replaced by its nearest
// palette color. The result always has its origin at (0, 0).
func Quantize(m image.Image) *image.Paletted {
	b := m.Bounds()
	dst := newPaletted(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			set(dst, x, y, palette.Nearest(palette.FromColor(m.At(b.Min.X+x, b.Min.Y+y))))
		}
	}
	return dst
}

type rgb [3]float64

func (e *rgb) add(o rgb, w float64) {
	e[0] += o[0] * w
	e[1] += o[1] * w
	e[2] += o[2] * w
}

// Disperse returns a copy of m reduced to the palette using error
// diffusion. The result always has its origin at (0, 0).
func Disperse(m image.Image) *image.Paletted {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := newPaletted(b)

	// Accumulated error for the current and the next row. Index x+1 holds
	// column x, the extra column on either side soaks up error that would
	// fall off the left or right edge.
	cur := make([]rgb, w+2)
	next := make([]rgb, w+2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := palette.FromColor(m.At(b.Min.X+x, b.Min.Y+y))
			e := cur[x+1]

			// The adjusted color is matched as is, it may lie outside
			// 0..255 and the error carried on is taken from it
			v := rgb{float64(c.R) + e[0], float64(c.G) + e[1], float64(c.B) + e[2]}

			p := palette.NearestFloat(v[0], v[1], v[2])
			set(dst, x, y, p)

			qe := rgb{v[0] - float64(p.R), v[1] - float64(p.G), v[2] - float64(p.B)}

			cur[x+2].add(qe, weightRight)
			next[x].add(qe, weightBelowLeft)
			next[x+1].add(qe, weightBelow)
			next[x+2].add(qe, weightBelowRight)
		}

		// Anything pushed below the last row is never read
		cur, next = next, cur
		for i := range next {
			next[i] = rgb{}
		}
	}

	return dst
}
