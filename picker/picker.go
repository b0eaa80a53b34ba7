/*
Package picker locates things on screen: the palette colors on the color
picker and the image pixels on the drawing canvas.
*/
package picker

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"github.com/bodgit/skribbl/palette"
)

var (
	errBadBox = errors.New("picker: box must be in the form x<X>y<Y>w<WIDTH>h<HEIGHT>")
	// ErrEmptyBox is returned when a box has no width or height.
	ErrEmptyBox = errors.New("picker: box width and height must be positive")
	// ErrUnknownColor is returned when a color has no position on the
	// picker. It means the palette and the picker layout disagree.
	ErrUnknownColor = errors.New("picker: color has no picker position")
)

// Box is a rectangle on screen given by its top-left corner and its size.
// For the color picker the size is that of a single color cell.
type Box struct {
	X, Y          int
	Width, Height int
}

func (b Box) String() string {
	return fmt.Sprintf("x%dy%dw%dh%d", b.X, b.Y, b.Width, b.Height)
}

// Validate checks the box has a usable size.
func (b Box) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return ErrEmptyBox
	}
	return nil
}

// ParseBox parses a box written as "x10y20w30h40".
func ParseBox(s string) (Box, error) {
	var v [4]int
	for i, key := range []byte("xywh") {
		if len(s) == 0 || s[0] != key {
			return Box{}, errBadBox
		}
		s = s[1:]

		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		if n == 0 {
			return Box{}, errBadBox
		}

		var err error
		if v[i], err = strconv.Atoi(s[:n]); err != nil {
			return Box{}, fmt.Errorf("picker: %w", err)
		}
		s = s[n:]
	}
	if len(s) != 0 {
		return Box{}, errBadBox
	}
	return Box{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// Map holds the screen position of every palette color on the picker.
type Map map[palette.Color]image.Point

// Build lays the palette out over an 11 by 2 grid of cells, light row first,
// with box describing the position and size of the top-left cell. Each
// color is clicked in the middle of its cell.
func Build(box Box) (Map, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}

	m := make(Map, palette.Size)
	for row, colors := range [...][palette.Columns]palette.Color{palette.Light, palette.Dark} {
		for col, c := range colors {
			m[c] = image.Point{
				X: box.X + box.Width/2 + col*box.Width,
				Y: box.Y + box.Height/2 + row*box.Height,
			}
		}
	}
	return m, nil
}

// Lookup returns where to click to select c.
func (m Map) Lookup(c palette.Color) (image.Point, error) {
	p, ok := m[c]
	if !ok {
		return image.Point{}, fmt.Errorf("%w: %v", ErrUnknownColor, c)
	}
	return p, nil
}
