package schedule

// IsAvailable reports whether the candidate window is free of conflicts on
// the given classroom. existing is the caller's snapshot of current
// bookings; rows for other classrooms are skipped, as is the booking whose
// id equals excludeID (pass 0 for none; an update is re-admitted against
// everything but itself). Intervals are half-open, so a booking
// ending at 10:00 never conflicts with one starting at 10:00.
func IsAvailable(classroomID int64, w Window, existing []Booking, excludeID int64) bool {
	for _, b := range existing {
		if b.ClassroomID != classroomID {
			continue
		}
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Window.Overlaps(w) {
			return false
		}
	}
	return true
}
