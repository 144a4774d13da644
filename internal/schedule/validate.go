package schedule

import "time"

// Reason classifies why a proposed window was rejected.
type Reason string

const (
	ReasonNone                  Reason = ""
	ReasonMisalignedTime        Reason = "misaligned_time"
	ReasonOutsideOperatingHours Reason = "outside_operating_hours"
	ReasonInvalidOrder          Reason = "invalid_order"
	ReasonConflict              Reason = "conflict"
)

// ValidateWindow checks a window against the policy. Checks run in a fixed
// order and stop at the first failure: boundary alignment, operating hours,
// then ordering. Zero-length windows are rejected with ReasonInvalidOrder.
func ValidateWindow(w Window, p Policy) Reason {
	if !aligned(w.Start, p.Granularity) || !aligned(w.End, p.Granularity) {
		return ReasonMisalignedTime
	}
	if !withinOperatingHours(w, p) {
		return ReasonOutsideOperatingHours
	}
	if !w.Start.Before(w.End) {
		return ReasonInvalidOrder
	}
	return ReasonNone
}

func aligned(t time.Time, unit time.Duration) bool {
	unitMinutes := int(unit / time.Minute)
	if unitMinutes <= 0 {
		return false
	}
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	minuteOfDay := t.Hour()*60 + t.Minute()
	return minuteOfDay%unitMinutes == 0
}

// Operating hours are defined per calendar day, so a window whose end falls
// on a different day than its start is out of hours. The close boundary is
// inclusive only at minute zero: a booking may end exactly at CloseHour:00.
func withinOperatingHours(w Window, p Policy) bool {
	sy, sm, sd := w.Start.Date()
	ey, em, ed := w.End.Date()
	if sy != ey || sm != em || sd != ed {
		return false
	}
	if w.Start.Hour() < p.OpenHour {
		return false
	}
	if w.End.Hour() > p.CloseHour {
		return false
	}
	if w.End.Hour() == p.CloseHour && w.End.Minute() != 0 {
		return false
	}
	return true
}
