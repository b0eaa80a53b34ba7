/*
Package x11 drives the pointer of an X11 display through the XTEST extension
and watches the keyboard for the Escape key.
*/
package x11

import (
	"errors"
	"fmt"

	"github.com/bodgit/skribbl/pointer"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgb/xtest"
)

const (
	primaryButton = 1
	keysymEscape  = 0xff1b
)

var errNoEscape = errors.New("x11: no keycode is mapped to Escape")

// Display is a pointer.Pointer on the default screen of an X11 display.
type Display struct {
	conn *xgb.Conn
	root xproto.Window
	x, y int16
}

var _ pointer.Pointer = (*Display)(nil)

// Open connects to the display named by $DISPLAY.
func Open() (*Display, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: %w", err)
	}

	if err := xtest.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: XTEST: %w", err)
	}

	return &Display{
		conn: conn,
		root: xproto.Setup(conn).DefaultScreen(conn).Root,
	}, nil
}

// Move implements pointer.Pointer.
func (d *Display) Move(x, y int) error {
	d.x, d.y = int16(x), int16(y)
	return xproto.WarpPointerChecked(d.conn, xproto.WindowNone, d.root, 0, 0, 0, 0, d.x, d.y).Check()
}

func (d *Display) button(event byte) error {
	return xtest.FakeInputChecked(d.conn, event, primaryButton, xproto.TimeCurrentTime, d.root, d.x, d.y, 0).Check()
}

// Click implements pointer.Pointer.
func (d *Display) Click(c pointer.Click) error {
	if c == pointer.Once || c == pointer.Down {
		if err := d.button(xproto.ButtonPress); err != nil {
			return err
		}
	}
	if c == pointer.Once || c == pointer.Up {
		if err := d.button(xproto.ButtonRelease); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the display connection.
func (d *Display) Close() error {
	d.conn.Close()
	return nil
}

// Listener grabs the Escape key on its own connection so drawing can be
// stopped while the pointer is busy.
type Listener struct {
	conn *xgb.Conn
	root xproto.Window
	key  xproto.Keycode
}

// Listen connects to the display and grabs Escape.
func Listen() (*Listener, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: %w", err)
	}

	setup := xproto.Setup(conn)
	l := &Listener{
		conn: conn,
		root: setup.DefaultScreen(conn).Root,
	}

	if l.key, err = escapeKeycode(conn, setup); err != nil {
		conn.Close()
		return nil, err
	}

	if err := xproto.GrabKeyChecked(conn, true, l.root, xproto.ModMaskAny, l.key, xproto.GrabModeAsync, xproto.GrabModeAsync).Check(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("x11: grab Escape: %w", err)
	}

	return l, nil
}

func escapeKeycode(conn *xgb.Conn, setup *xproto.SetupInfo) (xproto.Keycode, error) {
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(conn, setup.MinKeycode, count).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: keyboard mapping: %w", err)
	}

	per := int(reply.KeysymsPerKeycode)
	for i, sym := range reply.Keysyms {
		if sym == keysymEscape {
			return setup.MinKeycode + xproto.Keycode(i/per), nil
		}
	}
	return 0, errNoEscape
}

// Wait blocks until Escape is pressed or the listener is closed and calls
// stop in the first case.
func (l *Listener) Wait(stop func()) {
	for {
		ev, err := l.conn.WaitForEvent()
		if ev == nil && err == nil {
			return
		}
		if k, ok := ev.(xproto.KeyPressEvent); ok && k.Detail == l.key {
			stop()
			return
		}
	}
}

// Close ungrabs Escape and closes the connection, which also ends Wait.
func (l *Listener) Close() error {
	xproto.UngrabKey(l.conn, l.key, l.root, xproto.ModMaskAny)
	l.conn.Close()
	return nil
}
