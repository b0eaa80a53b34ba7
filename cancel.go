package skribbl

import "sync/atomic"

// Flag is the cancellation flag of a drawing session. Any goroutine may set
// it at any time; the Executor checks it before every instruction. Once set
// it stays set until Reset, which Draw calls when a new session starts.
type Flag struct {
	cancelled atomic.Bool
}

// Cancel sets the flag.
func (f *Flag) Cancel() {
	f.cancelled.Store(true)
}

// Cancelled reports whether the flag is set. A nil Flag is never set.
func (f *Flag) Cancelled() bool {
	return f != nil && f.cancelled.Load()
}

// Reset clears the flag.
func (f *Flag) Reset() {
	f.cancelled.Store(false)
}
