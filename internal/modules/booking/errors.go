package booking

import (
	"errors"

	"classroombooking/internal/schedule"
)

var (
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")

	ErrMisalignedTime = errors.New("booking time is not aligned to the slot granularity")
	ErrOutsideHours   = errors.New("booking time is outside operating hours")
	ErrInvalidOrder   = errors.New("start time must be before end time")
	ErrConflict       = errors.New("classroom is not available for the given time slot")
)

func reasonError(r schedule.Reason) error {
	switch r {
	case schedule.ReasonMisalignedTime:
		return ErrMisalignedTime
	case schedule.ReasonOutsideOperatingHours:
		return ErrOutsideHours
	case schedule.ReasonInvalidOrder:
		return ErrInvalidOrder
	case schedule.ReasonConflict:
		return ErrConflict
	default:
		return nil
	}
}
