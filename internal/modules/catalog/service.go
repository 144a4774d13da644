package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"classroombooking/internal/domain"
	"classroombooking/internal/schedule"
)

var (
	ErrNotFound = errors.New("classroom not found")
	ErrBadDate  = errors.New("invalid date")
)

type ClassroomRepository interface {
	List(ctx context.Context, limit, offset int) ([]domain.Classroom, error)
	GetByID(ctx context.Context, id int64) (*domain.Classroom, error)
}

type BookingSnapshot interface {
	ActiveByClassroom(ctx context.Context, classroomID int64) ([]domain.Booking, error)
}

type Service struct {
	classrooms ClassroomRepository
	bookings   BookingSnapshot
	policy     schedule.Policy
}

func NewService(classrooms ClassroomRepository, bookings BookingSnapshot, policy schedule.Policy) *Service {
	return &Service{classrooms: classrooms, bookings: bookings, policy: policy}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Classroom, error) {
	return s.classrooms.List(ctx, limit, offset)
}

// Detail returns the classroom and its slot grid for one day: every unit
// slot between opening and closing, flagged available unless an active
// booking overlaps it.
func (s *Service) Detail(ctx context.Context, classroomID int64, dateStr string) (*ClassroomDetail, error) {
	day, err := parseDay(dateStr)
	if err != nil {
		return nil, ErrBadDate
	}

	room, err := s.classrooms.GetByID(ctx, classroomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.bookings.ActiveByClassroom(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]schedule.Booking, 0, len(existing))
	for _, b := range existing {
		snapshot = append(snapshot, schedule.Booking{
			ID:          b.ID,
			ClassroomID: b.ClassroomID,
			Window:      schedule.Window{Start: b.StartTime, End: b.EndTime},
		})
	}

	open := time.Date(day.Year(), day.Month(), day.Day(), s.policy.OpenHour, 0, 0, 0, time.UTC)
	close := time.Date(day.Year(), day.Month(), day.Day(), s.policy.CloseHour, 0, 0, 0, time.UTC)

	slots := make([]Timeslot, 0)
	for _, unit := range schedule.ExpandToUnitSlots(schedule.Window{Start: open, End: close}, s.policy.Granularity) {
		slots = append(slots, Timeslot{
			StartTime: unit.Start.Format("15:04"),
			EndTime:   unit.End.Format("15:04"),
			Available: schedule.IsAvailable(classroomID, unit, snapshot, 0),
		})
	}

	return &ClassroomDetail{
		Classroom: *room,
		Date:      day.Format("2006-01-02"),
		Timeslots: slots,
	}, nil
}

func parseDay(dateStr string) (time.Time, error) {
	if dateStr == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", dateStr)
}
