package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is one persisted reservation row. When the service runs in
// split-hourly mode a multi-hour reservation is stored as one row per hour;
// the rows of one admitted window share a GroupID and are created, replaced
// and cancelled together.
type Booking struct {
	ID          int64         `json:"id"`
	GroupID     string        `json:"group_id,omitempty"`
	ClassroomID int64         `json:"classroom_id" validate:"required"`
	StudentName string        `json:"student_name" validate:"required"`
	StartTime   time.Time     `json:"start_time" validate:"required"`
	EndTime     time.Time     `json:"end_time" validate:"required"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}
