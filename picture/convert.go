package picture

import (
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/skribbl/dither"
	"github.com/bodgit/skribbl/palette"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Options control how a source image is converted.
type Options struct {
	// Width and Height bound the size of the result in picture pixels. A
	// zero value keeps the source size.
	Width, Height int
	// Scale is applied after fitting. Zero means 1.
	Scale float64

	Dither    bool
	Grayscale bool

	// Colors, when non-zero, first reduces the source to that many
	// colors using median cut, which tends to leave fewer palette colors
	// and so fewer color switches.
	Colors int

	// Background replaces any pixel that is not fully opaque. Nil means
	// the eraser color.
	Background color.Color
}

func (o Options) background() color.Color {
	if o.Background == nil {
		return palette.Eraser
	}
	return o.Background
}

// String returns a stable description of o, suitable as a cache key.
func (o Options) String() string {
	bg, _ := colorful.MakeColor(o.background())
	return fmt.Sprintf("w%dh%d scale=%g dither=%t grayscale=%t colors=%d background=%s",
		o.Width, o.Height, o.scale(), o.Dither, o.Grayscale, o.Colors, bg.Hex())
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// ParseColor parses a hex color such as "#ffffff".
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("picture: %w", err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, 0xff}, nil
}

// Fit returns the largest size with the aspect ratio of width by height
// that fits inside maxWidth by maxHeight.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return width, height
	}

	ratio := uint64(width) * uint64(maxHeight)
	nratio := uint64(maxWidth) * uint64(height)

	if nratio <= ratio {
		return maxWidth, atLeastOne(int(uint64(height) * uint64(maxWidth) / uint64(width)))
	}
	return atLeastOne(int(uint64(width) * uint64(maxHeight) / uint64(height))), maxHeight
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Flatten the source onto the background and optionally drop the hue
func flatten(m *image.NRGBA, bg color.Color, grayscale bool) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var c color.Color = m.NRGBAAt(x, y)
			if m.NRGBAAt(x, y).A != 0xff {
				c = bg
			}
			if grayscale {
				c = color.GrayModel.Convert(c)
			}
			m.Set(x, y, c)
		}
	}
}

func reduce(m image.Image, n int) image.Image {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, n), m)
	if len(p) == 0 {
		return m
	}
	tmp := image.NewPaletted(b, p)
	draw.Draw(tmp, b, m, b.Min, draw.Src)
	return tmp
}

// Convert turns src into a picture made only of palette colors, with its
// origin at (0, 0).
func Convert(src image.Image, o Options) *image.Paletted {
	sb := src.Bounds()
	w, h := Fit(sb.Dx(), sb.Dy(), o.Width, o.Height)
	if w == 0 || h == 0 {
		return image.NewPaletted(image.Rectangle{}, palette.Palette())
	}
	w = atLeastOne(int(float64(w) * o.scale()))
	h = atLeastOne(int(float64(h) * o.scale()))

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(rgba, rgba.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), src, sb, draw.Src, nil)
	}
	flatten(rgba, o.background(), o.Grayscale)

	var m image.Image = rgba
	if o.Colors > 0 {
		m = reduce(m, o.Colors)
	}

	if o.Dither {
		return dither.Disperse(m)
	}
	return dither.Quantize(m)
}
