package palette

import (
	"image/color"
	"math"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Distance returns the Manhattan distance between two colors in RGB space.
func Distance(a, b Color) int {
	return distance(int(a.R), int(a.G), int(a.B), b)
}

func distance(r, g, b int, c Color) int {
	return abs(r-int(c.R)) + abs(g-int(c.G)) + abs(b-int(c.B))
}

// Nearest returns the palette color closest to c. When several colors are
// equally close the first one in Colors wins.
func Nearest(c Color) Color {
	return NearestRGB(int(c.R), int(c.G), int(c.B))
}

// NearestRGB is Nearest for channels given as plain integers.
func NearestRGB(r, g, b int) Color {
	best, bestDist := Colors[0], distance(r, g, b, Colors[0])
	for _, c := range Colors[1:] {
		if d := distance(r, g, b, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// NearestFloat is NearestRGB for channels that may fall outside 0..255 or
// carry a fraction, such as a color with diffused error added to it.
func NearestFloat(r, g, b float64) Color {
	best, bestDist := Colors[0], distanceFloat(r, g, b, Colors[0])
	for _, c := range Colors[1:] {
		if d := distanceFloat(r, g, b, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distanceFloat(r, g, b float64, c Color) float64 {
	return math.Abs(r-float64(c.R)) + math.Abs(g-float64(c.G)) + math.Abs(b-float64(c.B))
}

// FromColor converts any color.Color to an opaque Color by dropping alpha
// from its non-premultiplied form.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// Model maps any color to its nearest palette color.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return Nearest(FromColor(c))
})
