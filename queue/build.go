package queue

import (
	"fmt"
	"image"
	"strings"

	"github.com/bodgit/skribbl/palette"
)

// Order selects how instructions are grouped by color.
type Order int

const (
	// Combined puts every color of a pass in a single queue sorted by
	// brightness.
	Combined Order = iota
	// Batched gives every color its own queue, darkest first, so no color
	// is ever selected twice within the same half of the image.
	Batched
)

func (o Order) String() string {
	switch o {
	case Combined:
		return "combined"
	case Batched:
		return "batch"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses the String form of an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "combined":
		return Combined, nil
	case "batch", "batched":
		return Batched, nil
	}
	return 0, fmt.Errorf("queue: unknown order %q", s)
}

// Options control how an image is split into passes.
type Options struct {
	Checkerboard bool
	Order        Order
}

type filter func(x, y int, c palette.Color) bool

// collect walks m in raster order and queues every non-eraser pixel that
// passes keep. Coordinates are relative to the image origin.
func collect(m image.Image, keep filter) *Queue {
	b := m.Bounds()
	q := New(b.Dx() * b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := palette.FromColor(m.At(b.Min.X+x, b.Min.Y+y))
			if c == palette.Eraser || !keep(x, y, c) {
				continue
			}
			q.Push(Instruction{X: x, Y: y, Color: c})
		}
	}
	return q
}

func all(int, int, palette.Color) bool { return true }

func parity(odd bool) filter {
	return func(x, y int, _ palette.Color) bool {
		return ((x+y)%2 == 1) == odd
	}
}

func only(c palette.Color, f filter) filter {
	return func(x, y int, pc palette.Color) bool {
		return pc == c && f(x, y, pc)
	}
}

// Raster queues every pixel of m except the eraser, in row-major order.
func Raster(m image.Image) *Queue {
	return collect(m, all)
}

// Checkerboard splits m into two half density queues. The first holds the
// pixels where x+y is odd, the second those where it is even.
func Checkerboard(m image.Image) [2]*Queue {
	return [2]*Queue{collect(m, parity(true)), collect(m, parity(false))}
}

// ByColor queues only the pixels of m that are exactly c.
func ByColor(m image.Image, c palette.Color) *Queue {
	return collect(m, only(c, all))
}

// Build returns the passes needed to draw m, in drawing order. Empty passes
// are left out, so an image with nothing to draw yields no passes.
func Build(m image.Image, o Options) []*Queue {
	halves := []filter{all}
	if o.Checkerboard {
		halves = []filter{parity(true), parity(false)}
	}

	var passes []*Queue
	add := func(q *Queue) {
		if q.Len() > 0 {
			passes = append(passes, q)
		}
	}

	switch o.Order {
	case Batched:
		for _, c := range palette.ByBrightness() {
			for _, f := range halves {
				add(collect(m, only(c, f)))
			}
		}
	default:
		for _, f := range halves {
			q := collect(m, f)
			q.SortByBrightness()
			add(q)
		}
	}

	return passes
}

// Total returns the number of instructions across passes.
func Total(passes []*Queue) int {
	n := 0
	for _, q := range passes {
		n += q.Len()
	}
	return n
}
