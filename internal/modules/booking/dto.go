package booking

import "time"

type CreateBookingRequest struct {
	ClassroomID int64     `json:"classroom_id" binding:"required"`
	StudentName string    `json:"student_name" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

// UpdateBookingRequest carries the full replacement for a booking; every
// field of the stored booking is overwritten once the new window is
// admitted.
type UpdateBookingRequest struct {
	ClassroomID int64     `json:"classroom_id" binding:"required"`
	StudentName string    `json:"student_name" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}
