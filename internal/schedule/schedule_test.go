package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 14, hour, minute, 0, 0, time.UTC)
}

func win(startHour, startMin, endHour, endMin int) Window {
	return Window{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestValidateWindow(t *testing.T) {
	p := Policy{OpenHour: 7, CloseHour: 18, Granularity: time.Hour}

	cases := []struct {
		name string
		w    Window
		want Reason
	}{
		{"valid single hour", win(9, 0, 10, 0), ReasonNone},
		{"valid multi hour", win(9, 0, 12, 0), ReasonNone},
		{"valid at open boundary", win(7, 0, 8, 0), ReasonNone},
		{"valid ending at close", win(17, 0, 18, 0), ReasonNone},
		{"misaligned start", win(9, 30, 10, 0), ReasonMisalignedTime},
		{"misaligned end", win(9, 0, 10, 30), ReasonMisalignedTime},
		{"misaligned both", win(9, 30, 10, 30), ReasonMisalignedTime},
		{"before opening", win(6, 0, 7, 0), ReasonOutsideOperatingHours},
		{"after close", win(18, 0, 19, 0), ReasonOutsideOperatingHours},
		{"ends past close", win(17, 0, 19, 0), ReasonOutsideOperatingHours},
		{"reversed", win(10, 0, 9, 0), ReasonInvalidOrder},
		{"zero length", win(9, 0, 9, 0), ReasonInvalidOrder},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateWindow(tc.w, p))
		})
	}
}

func TestValidateWindow_MisalignmentReportedFirst(t *testing.T) {
	p := Policy{OpenHour: 7, CloseHour: 18, Granularity: time.Hour}

	// Out of hours AND misaligned: alignment is checked first.
	assert.Equal(t, ReasonMisalignedTime, ValidateWindow(win(5, 30, 6, 30), p))
	// Reversed AND misaligned likewise.
	assert.Equal(t, ReasonMisalignedTime, ValidateWindow(win(10, 30, 9, 30), p))
}

func TestValidateWindow_SecondsAreMisaligned(t *testing.T) {
	p := DefaultPolicy()
	w := Window{
		Start: at(9, 0).Add(30 * time.Second),
		End:   at(10, 0),
	}
	assert.Equal(t, ReasonMisalignedTime, ValidateWindow(w, p))
}

func TestValidateWindow_RejectsMidnightCrossing(t *testing.T) {
	p := Policy{OpenHour: 0, CloseHour: 23, Granularity: time.Hour}
	w := Window{Start: at(22, 0), End: at(22, 0).Add(4 * time.Hour)}
	assert.Equal(t, ReasonOutsideOperatingHours, ValidateWindow(w, p))
}

func TestValidateWindow_HalfHourGranularity(t *testing.T) {
	p := Policy{OpenHour: 7, CloseHour: 18, Granularity: 30 * time.Minute}

	assert.Equal(t, ReasonNone, ValidateWindow(win(9, 30, 10, 0), p))
	assert.Equal(t, ReasonMisalignedTime, ValidateWindow(win(9, 15, 10, 0), p))
}

func TestIsAvailable(t *testing.T) {
	existing := []Booking{
		{ID: 1, ClassroomID: 1, Window: win(9, 0, 10, 0)},
		{ID: 2, ClassroomID: 2, Window: win(9, 0, 12, 0)},
	}

	t.Run("overlap conflicts", func(t *testing.T) {
		assert.False(t, IsAvailable(1, win(9, 0, 10, 0), existing, 0))
		assert.False(t, IsAvailable(1, win(8, 0, 10, 0), existing, 0))
		assert.False(t, IsAvailable(1, win(9, 0, 13, 0), existing, 0))
	})

	t.Run("adjacent windows never conflict", func(t *testing.T) {
		assert.True(t, IsAvailable(1, win(10, 0, 11, 0), existing, 0))
		assert.True(t, IsAvailable(1, win(8, 0, 9, 0), existing, 0))
	})

	t.Run("other classrooms are ignored", func(t *testing.T) {
		assert.True(t, IsAvailable(3, win(9, 0, 10, 0), existing, 0))
	})

	t.Run("excluded booking never conflicts with itself", func(t *testing.T) {
		assert.False(t, IsAvailable(1, win(9, 0, 11, 0), existing, 0))
		assert.True(t, IsAvailable(1, win(9, 0, 11, 0), existing, 1))
	})
}

func TestExpandToUnitSlots(t *testing.T) {
	w := win(9, 0, 12, 0)
	slots := ExpandToUnitSlots(w, time.Hour)

	assert.Len(t, slots, 3)
	assert.Equal(t, w.Start, slots[0].Start)
	assert.Equal(t, w.End, slots[len(slots)-1].End)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start, "slots must be contiguous")
	}
	for _, s := range slots {
		assert.Equal(t, time.Hour, s.Duration())
	}
}

func TestExpandToUnitSlots_SingleUnit(t *testing.T) {
	slots := ExpandToUnitSlots(win(9, 0, 10, 0), time.Hour)
	assert.Equal(t, []Window{win(9, 0, 10, 0)}, slots)
}

func TestExpandToUnitSlots_DegenerateInputs(t *testing.T) {
	assert.Nil(t, ExpandToUnitSlots(win(10, 0, 9, 0), time.Hour))
	assert.Nil(t, ExpandToUnitSlots(win(9, 0, 9, 0), time.Hour))
	assert.Nil(t, ExpandToUnitSlots(win(9, 0, 10, 0), 0))
}

func TestAdmitBooking_Scenario(t *testing.T) {
	p := Policy{OpenHour: 7, CloseHour: 18, Granularity: time.Hour}

	var existing []Booking

	d := AdmitBooking(1, win(9, 0, 10, 0), existing, p, 0)
	assert.True(t, d.Accepted)

	existing = append(existing, Booking{ID: 1, ClassroomID: 1, Window: win(9, 0, 10, 0)})

	d = AdmitBooking(1, win(9, 0, 10, 0), existing, p, 0)
	assert.Equal(t, Decision{Reason: ReasonConflict}, d)

	d = AdmitBooking(1, win(18, 0, 19, 0), existing, p, 0)
	assert.Equal(t, Decision{Reason: ReasonOutsideOperatingHours}, d)

	d = AdmitBooking(1, win(9, 30, 10, 30), existing, p, 0)
	assert.Equal(t, Decision{Reason: ReasonMisalignedTime}, d)

	d = AdmitBooking(1, win(10, 0, 9, 0), existing, p, 0)
	assert.Equal(t, Decision{Reason: ReasonInvalidOrder}, d)
}

func TestAdmitBooking_BoundaryScenario(t *testing.T) {
	p := Policy{OpenHour: 7, CloseHour: 18, Granularity: time.Hour}
	existing := []Booking{{ID: 1, ClassroomID: 1, Window: win(9, 0, 10, 0)}}

	// Boundary touch is not a conflict.
	d := AdmitBooking(1, win(10, 0, 11, 0), existing, p, 0)
	assert.True(t, d.Accepted)

	// Misalignment is reported before the conflict scan runs.
	d = AdmitBooking(1, win(8, 0, 9, 30), existing, p, 0)
	assert.Equal(t, Decision{Reason: ReasonMisalignedTime}, d)

	// Aligned and overlapping: conflict.
	d = AdmitBooking(1, win(8, 0, 10, 0), existing, p, 0)
	assert.Equal(t, Decision{Reason: ReasonConflict}, d)
}
