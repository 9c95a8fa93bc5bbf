package reservation

import (
	"time"
)

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start.UTC(), end: end.UTC()}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

func (ts TimeSlot) IsZero() bool {
	return ts.start.IsZero() && ts.end.IsZero()
}

// Overlaps implements the booking conflict predicate. Touching intervals do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return other.start.Before(ts.end) && other.end.After(ts.start)
}

// Period is a listing filter with optional, inclusive bounds.
type Period struct {
	from *time.Time
	to   *time.Time
}

func NewPeriod(from, to *time.Time) (Period, error) {
	if from != nil && to != nil && from.After(*to) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{from: from, to: to}, nil
}

func (p Period) From() *time.Time { return p.from }
func (p Period) To() *time.Time   { return p.to }

// Contains reports whether the whole stay falls inside the period, both bounds inclusive.
func (p Period) Contains(ts TimeSlot) bool {
	if p.from != nil && ts.start.Before(*p.from) {
		return false
	}
	if p.to != nil && ts.end.After(*p.to) {
		return false
	}
	return true
}
