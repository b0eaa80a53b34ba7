package skribbl

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/bodgit/skribbl/palette"
	"github.com/bodgit/skribbl/picker"
	"github.com/bodgit/skribbl/pointer"
	"github.com/bodgit/skribbl/queue"
	"github.com/sirupsen/logrus"
)

// Result describes how far a session got. A session that stopped early is
// not an error.
type Result struct {
	Drawn     int
	Total     int
	Cancelled bool
	TimedOut  bool
}

// Complete reports whether every instruction was drawn.
func (r Result) Complete() bool {
	return r.Drawn == r.Total
}

// Executor draws queues of instructions with a Pointer. It picks a color on
// the picker only when the color changes, then clicks the pixel on the
// canvas, pausing Delay after every click.
type Executor struct {
	Pointer pointer.Pointer
	Colors  picker.Map
	Canvas  picker.Canvas
	Delay   time.Duration
	// Timeout, when positive, cancels Stop once it has elapsed since Run
	// started.
	Timeout time.Duration
	Stop    *Flag
	Logger  logrus.FieldLogger

	last   palette.Color
	picked bool
}

func (e *Executor) pause() {
	if e.Delay > 0 {
		time.Sleep(e.Delay)
	}
}

func (e *Executor) click(x, y int) error {
	if err := e.Pointer.Move(x, y); err != nil {
		return fmt.Errorf("skribbl: move to %d,%d: %w", x, y, err)
	}
	if err := e.Pointer.Click(pointer.Once); err != nil {
		return fmt.Errorf("skribbl: click at %d,%d: %w", x, y, err)
	}
	e.pause()
	return nil
}

func (e *Executor) draw(i queue.Instruction) error {
	if !e.picked || i.Color != e.last {
		p, err := e.Colors.Lookup(i.Color)
		if err != nil {
			return configError(err)
		}
		if err := e.click(p.X, p.Y); err != nil {
			return err
		}
		e.last, e.picked = i.Color, true
	}

	p := e.Canvas.Point(i.X, i.Y)
	return e.click(p.X, p.Y)
}

// Run drains the passes in order. The last picked color carries over from
// one pass to the next but not from one Run to the next.
func (e *Executor) Run(passes ...*queue.Queue) (Result, error) {
	res := Result{Total: queue.Total(passes)}
	e.picked = false

	if e.Stop == nil {
		e.Stop = new(Flag)
	}

	var timedOut atomic.Bool
	if e.Timeout > 0 {
		timer := time.AfterFunc(e.Timeout, func() {
			timedOut.Store(true)
			e.Stop.Cancel()
		})
		defer timer.Stop()
	}

	for n, q := range passes {
		e.log().WithFields(logrus.Fields{"pass": n + 1, "total": q.Remaining()}).Debug("drawing pass")

		for {
			if e.Stop.Cancelled() {
				res.Cancelled = true
				res.TimedOut = timedOut.Load()
				e.log().WithFields(logrus.Fields{"drawn": res.Drawn, "total": res.Total}).Info("drawing stopped")
				return res, nil
			}

			i, ok := q.Pop()
			if !ok {
				break
			}
			if i.Color == palette.Eraser {
				res.Total--
				continue
			}

			if err := e.draw(i); err != nil {
				return res, err
			}
			res.Drawn++
		}
	}

	return res, nil
}

func (e *Executor) log() logrus.FieldLogger {
	if e.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.Logger = l
	}
	return e.Logger
}
