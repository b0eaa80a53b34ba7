/*
Package palette defines the fixed 22 color palette of the skribbl.io drawing
surface and the nearest color lookup used to quantize arbitrary colors to it.

The palette is laid out on the color picker as two rows of eleven colors. The
first row holds the light variants, starting with white, and the second row
holds the dark variants, starting with black. White doubles as the
background, so it is the eraser and is never drawn.
*/
package palette

import (
	"fmt"
	"image/color"
	"sort"
)

// Size is the number of colors in the palette.
const Size = 22

// Columns is the number of colors in each row of the picker.
const Columns = Size / 2

// Color is a single opaque RGB color. It implements color.Color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Brightness returns the sum of the three channels.
func (c Color) Brightness() int {
	return int(c.R) + int(c.G) + int(c.B)
}

func (c Color) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// The palette colors.
var (
	White        = Color{255, 255, 255}
	LightGrey    = Color{139, 139, 139}
	LightRed     = Color{239, 19, 11}
	LightOrange  = Color{255, 113, 0}
	LightYellow  = Color{255, 228, 0}
	LightGreen   = Color{0, 204, 0}
	LightCyan    = Color{0, 178, 255}
	LightBlue    = Color{35, 31, 211}
	LightMagenta = Color{163, 0, 186}
	LightPink    = Color{211, 124, 170}
	LightBrown   = Color{160, 82, 45}

	Black       = Color{0, 0, 0}
	DarkGrey    = Color{76, 76, 76}
	DarkRed     = Color{116, 11, 7}
	DarkOrange  = Color{194, 56, 0}
	DarkYellow  = Color{232, 162, 0}
	DarkGreen   = Color{0, 85, 16}
	DarkCyan    = Color{0, 86, 158}
	DarkBlue    = Color{14, 8, 101}
	DarkMagenta = Color{85, 0, 105}
	DarkPink    = Color{167, 85, 116}
	DarkBrown   = Color{99, 48, 13}
)

// Eraser is the background color. It is never drawn.
var Eraser = White

// Light is the first row of the picker, in picker order.
var Light = [Columns]Color{
	White, LightGrey, LightRed, LightOrange, LightYellow, LightGreen,
	LightCyan, LightBlue, LightMagenta, LightPink, LightBrown,
}

// Dark is the second row of the picker, in picker order.
var Dark = [Columns]Color{
	Black, DarkGrey, DarkRed, DarkOrange, DarkYellow, DarkGreen,
	DarkCyan, DarkBlue, DarkMagenta, DarkPink, DarkBrown,
}

// Colors is every palette color, the light row followed by the dark row.
// This is also the order used to break ties in Nearest.
var Colors = func() (c [Size]Color) {
	copy(c[:Columns], Light[:])
	copy(c[Columns:], Dark[:])
	return
}()

var names = map[Color]string{
	White:        "white",
	LightGrey:    "light grey",
	LightRed:     "light red",
	LightOrange:  "light orange",
	LightYellow:  "light yellow",
	LightGreen:   "light green",
	LightCyan:    "light cyan",
	LightBlue:    "light blue",
	LightMagenta: "light magenta",
	LightPink:    "light pink",
	LightBrown:   "light brown",
	Black:        "black",
	DarkGrey:     "dark grey",
	DarkRed:      "dark red",
	DarkOrange:   "dark orange",
	DarkYellow:   "dark yellow",
	DarkGreen:    "dark green",
	DarkCyan:     "dark cyan",
	DarkBlue:     "dark blue",
	DarkMagenta:  "dark magenta",
	DarkPink:     "dark pink",
	DarkBrown:    "dark brown",
}

var indices = func() map[Color]int {
	m := make(map[Color]int, Size)
	for i, c := range Colors {
		m[c] = i
	}
	return m
}()

// Index returns the position of c in Colors.
func Index(c Color) (int, bool) {
	i, ok := indices[c]
	return i, ok
}

// Contains reports whether c is a palette color.
func Contains(c Color) bool {
	_, ok := indices[c]
	return ok
}

// Palette returns the colors as a color.Palette suitable for image.Paletted,
// with color index i matching Colors[i].
func Palette() color.Palette {
	p := make(color.Palette, Size)
	for i, c := range Colors {
		p[i] = c
	}
	return p
}

// ByBrightness returns the drawable colors, darkest first. Colors of equal
// brightness keep their picker order and the eraser is left out.
func ByBrightness() []Color {
	c := make([]Color, 0, Size-1)
	for _, pc := range Colors {
		if pc != Eraser {
			c = append(c, pc)
		}
	}
	sort.SliceStable(c, func(i, j int) bool {
		return c[i].Brightness() < c[j].Brightness()
	})
	return c
}
