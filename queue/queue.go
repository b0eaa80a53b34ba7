/*
Package queue turns a quantized image into ordered passes of per-pixel draw
instructions.

Every pass is a Queue. A session drains its passes in order, each one fully
before the next. How the image is split into passes and how each pass is
ordered is chosen with Options.
*/
package queue

import (
	"sort"

	"github.com/bodgit/skribbl/palette"
)

// Instruction places Color at image pixel (X, Y).
type Instruction struct {
	X, Y  int
	Color palette.Color
}

// Queue is an ordered sequence of instructions. Instructions are pushed
// while building and popped in order while drawing.
type Queue struct {
	items []Instruction
	next  int
}

// New returns an empty queue with room for n instructions.
func New(n int) *Queue {
	return &Queue{items: make([]Instruction, 0, n)}
}

// Push appends an instruction.
func (q *Queue) Push(i Instruction) {
	q.items = append(q.items, i)
}

// Pop removes and returns the next instruction. It returns false when the
// queue is drained.
func (q *Queue) Pop() (Instruction, bool) {
	if q.next >= len(q.items) {
		return Instruction{}, false
	}
	i := q.items[q.next]
	q.next++
	return i, true
}

// Len returns the total number of instructions, popped or not.
func (q *Queue) Len() int {
	return len(q.items)
}

// Remaining returns the number of instructions not yet popped.
func (q *Queue) Remaining() int {
	return len(q.items) - q.next
}

// Instructions returns a copy of the instructions in queue order.
func (q *Queue) Instructions() []Instruction {
	return append([]Instruction(nil), q.items...)
}

// SortByBrightness orders the instructions darkest color first. Instructions
// of equally bright colors keep the order they were pushed in, so sorting
// twice gives the same order as sorting once.
func (q *Queue) SortByBrightness() {
	sort.SliceStable(q.items, func(i, j int) bool {
		return q.items[i].Color.Brightness() < q.items[j].Color.Brightness()
	})
}

// Switches counts how many times consecutive instructions change color,
// including selecting the first color.
func (q *Queue) Switches() int {
	n := 0
	var last *palette.Color
	for i := range q.items {
		if last == nil || *last != q.items[i].Color {
			n++
			last = &q.items[i].Color
		}
	}
	return n
}
