/*
Package pointer defines the pointer automation capability used to draw: move
the cursor to a screen position and press the primary button.
*/
package pointer

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Click is the kind of button action to perform.
type Click int

const (
	// Once presses and releases the button.
	Once Click = iota
	// Down only presses the button.
	Down
	// Up only releases the button.
	Up
)

func (c Click) String() string {
	switch c {
	case Once:
		return "once"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Click(%d)", int(c))
}

// Pointer moves the cursor and clicks the primary button. Calls are
// synchronous.
type Pointer interface {
	Move(x, y int) error
	Click(c Click) error
}

// Dry is a Pointer that only logs what it would do. It is safe to use
// without a display.
type Dry struct {
	Logger logrus.FieldLogger

	Moves, Clicks int
}

// Move implements Pointer.
func (d *Dry) Move(x, y int) error {
	d.Moves++
	if d.Logger != nil {
		d.Logger.WithFields(logrus.Fields{"x": x, "y": y}).Trace("move")
	}
	return nil
}

// Click implements Pointer.
func (d *Dry) Click(c Click) error {
	d.Clicks++
	if d.Logger != nil {
		d.Logger.WithField("click", c).Trace("click")
	}
	return nil
}
