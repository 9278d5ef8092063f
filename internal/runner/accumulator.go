package runner

import "errors"

// ErrCaptureOverflow reports that a run produced more output than the capture
// budget. The stream is still drained to EOF so the child never blocks on a
// full pipe.
var ErrCaptureOverflow = errors.New("runner: command output exceeded the capture budget")

// Accumulator grows a byte buffer up to a budget, then switches to discard
// mode and keeps accepting input without storing it.
type Accumulator struct {
	buf      []byte
	max      int64
	overflow bool
}

func NewAccumulator(maxBytes int64) *Accumulator {
	return &Accumulator{max: maxBytes}
}

// Consume appends a chunk. Once the budget is exceeded all further input is
// discarded.
func (a *Accumulator) Consume(p []byte) {
	if a.overflow || len(p) == 0 {
		return
	}
	if int64(len(a.buf))+int64(len(p)) > a.max {
		if room := a.max - int64(len(a.buf)); room > 0 {
			a.buf = append(a.buf, p[:room]...)
		}
		a.overflow = true
		return
	}
	a.buf = append(a.buf, p...)
}

// Bytes returns what was captured within the budget.
func (a *Accumulator) Bytes() []byte { return a.buf }

// Truncated reports whether discard mode was entered.
func (a *Accumulator) Truncated() bool { return a.overflow }

// Err returns ErrCaptureOverflow after the budget was exceeded. It is
// reported once the stream has been drained, not mid-capture.
func (a *Accumulator) Err() error {
	if a.overflow {
		return ErrCaptureOverflow
	}
	return nil
}
