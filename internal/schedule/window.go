// Package schedule decides whether a proposed classroom booking is
// admissible. It is pure: it validates a time window against a booking
// policy and checks it for conflicts against a caller-supplied snapshot of
// existing bookings. Storage, transactions and transport never appear here;
// callers are responsible for serializing "check availability, then insert"
// per classroom.
package schedule

import "time"

// Window is a half-open time interval [Start, End) describing a booking's
// span. Two windows that touch at a boundary do not overlap.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps reports whether the two half-open intervals intersect.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && w.End.After(o.Start)
}

// Booking is the minimal view of a persisted booking the checker needs.
type Booking struct {
	ID          int64
	ClassroomID int64
	Window      Window
}
