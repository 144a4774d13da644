package schedule

// Decision is the outcome of an admission check.
type Decision struct {
	Accepted bool
	Reason   Reason
}

// AdmitBooking runs the full admission pipeline for a candidate window:
// window validation first, then the conflict scan. Malformed requests are
// rejected before any existing booking is inspected, so a window that is
// both misaligned and conflicting reports the misalignment.
func AdmitBooking(classroomID int64, w Window, existing []Booking, p Policy, excludeID int64) Decision {
	if reason := ValidateWindow(w, p); reason != ReasonNone {
		return Decision{Reason: reason}
	}
	if !IsAvailable(classroomID, w, existing, excludeID) {
		return Decision{Reason: ReasonConflict}
	}
	return Decision{Accepted: true}
}
