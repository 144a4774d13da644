package booking

import (
	"context"

	"classroombooking/internal/domain"
)

// BookingRepository is the persistence the booking service needs.
type BookingRepository interface {
	ActiveByClassroom(ctx context.Context, classroomID int64) ([]domain.Booking, error)
	CreateGroup(ctx context.Context, bookings []*domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetGroup(ctx context.Context, groupID string) ([]domain.Booking, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	ListByStudent(ctx context.Context, studentName string, limit, offset int) ([]domain.Booking, error)
	ReplaceGroup(ctx context.Context, groupID string, bookings []*domain.Booking) error
	CancelGroup(ctx context.Context, groupID string) error
}

// ClassroomRepository is the classroom existence gate.
type ClassroomRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
