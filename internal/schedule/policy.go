package schedule

import "time"

// Policy is the booking rule set for a classroom day.
type Policy struct {
	// OpenHour is the earliest hour a booking may start, inclusive.
	OpenHour int
	// CloseHour is the latest hour a booking may end. A booking may end
	// exactly at CloseHour:00 but not later.
	CloseHour int
	// Granularity is the unit both window boundaries must align to.
	Granularity time.Duration
}

// DefaultPolicy returns the standard school-day policy: whole-hour
// bookings between 07:00 and 18:00.
func DefaultPolicy() Policy {
	return Policy{OpenHour: 7, CloseHour: 18, Granularity: time.Hour}
}
