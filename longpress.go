package quill

import "time"

const (
	defaultLongPressDelay = 500 * time.Millisecond
	defaultLongPressSlop  = 5.0 // screen pixels
)

// longPress is the pending timer that turns a stationary touch on empty
// canvas into a marquee selection. At most one is armed at a time; it is
// polled from Engine.Tick instead of running on its own goroutine.
type longPress struct {
	armed     bool
	pointerID int
	deadline  time.Time
	delay     time.Duration
	down      Vec2 // canvas point
	screen    Vec2
}

func (l *longPress) arm(pointerID int, now time.Time, delay time.Duration, down, screen Vec2) {
	*l = longPress{
		armed:     true,
		pointerID: pointerID,
		deadline:  deadlineFrom(now, delay),
		delay:     delay,
		down:      down,
		screen:    screen,
	}
}

func (l *longPress) disarm() {
	*l = longPress{}
}

// deadlineFrom leaves the deadline unset when no clock reading exists yet.
func deadlineFrom(now time.Time, delay time.Duration) time.Time {
	if now.IsZero() {
		return time.Time{}
	}
	return now.Add(delay)
}

// due reports whether the deadline has passed. A timer armed before any
// clock reading starts counting at the first call.
func (l *longPress) due(now time.Time) bool {
	if !l.armed {
		return false
	}
	if l.deadline.IsZero() {
		l.deadline = now.Add(l.delay)
		return false
	}
	return !now.Before(l.deadline)
}

// movedBeyond reports whether p is farther than slop canvas units from the
// down point.
func (l *longPress) movedBeyond(p Vec2, slop float64) bool {
	return p.Sub(l.down).Len() > slop
}
