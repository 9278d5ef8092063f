// Package sched owns the refresh deadline for the run loop.
package sched

import "time"

// Scheduler keeps refresh deadlines on a fixed grid anchored at the first
// refresh, so slow processing does not drift the cadence. A cycle that
// finishes late advances the deadline past "now" in whole grid steps instead
// of firing the missed deadlines back-to-back.
type Scheduler struct {
	interval time.Duration
	next     time.Time
}

func New(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Scheduler{interval: interval}
}

// Interval returns the refresh interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Anchor starts the deadline grid at now. Call it when the first refresh is
// triggered.
func (s *Scheduler) Anchor(now time.Time) {
	s.next = now.Add(s.interval)
}

// Reset re-anchors the grid at now. Used by the explicit refresh-now command.
func (s *Scheduler) Reset(now time.Time) {
	s.next = now.Add(s.interval)
}

// Due reports whether the deadline has elapsed.
func (s *Scheduler) Due(now time.Time) bool {
	return !s.next.After(now)
}

// Timeout returns how long the loop may wait before the next deadline.
func (s *Scheduler) Timeout(now time.Time) time.Duration {
	d := s.next.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Advance moves the deadline forward by one grid step when a refresh is
// triggered. If the cycle ran longer than the interval, further whole steps
// are skipped until the deadline is in the future again; each completed cycle
// fires at most one deferred refresh, never a catch-up burst.
func (s *Scheduler) Advance(now time.Time) {
	s.next = s.next.Add(s.interval)
	for !s.next.After(now) {
		s.next = s.next.Add(s.interval)
	}
}
