package picker

import (
	"errors"
	"image"
)

var (
	errBadCell   = errors.New("picker: cell size must be at least one pixel")
	errSmallArea = errors.New("picker: canvas is smaller than one cell")
)

// Canvas maps image pixels to screen positions on the drawing area. Each
// image pixel covers a Cell by Cell square of screen pixels and is clicked
// in its middle.
type Canvas struct {
	Box  Box
	Cell int
}

// Validate checks the canvas has a usable size.
func (c Canvas) Validate() error {
	if err := c.Box.Validate(); err != nil {
		return err
	}
	if c.Cell < 1 {
		return errBadCell
	}
	if c.Box.Width < c.Cell || c.Box.Height < c.Cell {
		return errSmallArea
	}
	return nil
}

// Size returns how many image pixels fit on the canvas in each direction.
func (c Canvas) Size() (int, int) {
	return c.Box.Width / c.Cell, c.Box.Height / c.Cell
}

// Point returns the screen position of image pixel (x, y).
func (c Canvas) Point(x, y int) image.Point {
	return image.Point{
		X: c.Box.X + x*c.Cell + c.Cell/2,
		Y: c.Box.Y + y*c.Cell + c.Cell/2,
	}
}
