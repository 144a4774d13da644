package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"classroombooking/internal/domain"
	"classroombooking/internal/schedule"
)

type Service struct {
	bookings   BookingRepository
	classrooms ClassroomRepository
	policy     schedule.Policy
	// splitHourly persists one row per unit slot instead of one row per
	// admitted window.
	splitHourly bool
	locks       *classroomLocks
}

func NewService(bookings BookingRepository, classrooms ClassroomRepository, policy schedule.Policy, splitHourly bool) *Service {
	return &Service{
		bookings:    bookings,
		classrooms:  classrooms,
		policy:      policy,
		splitHourly: splitHourly,
		locks:       newClassroomLocks(),
	}
}

// Create admits the requested window against the classroom's current
// bookings and persists it. The admission and the insert run under the
// classroom's lock.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) ([]domain.Booking, error) {
	exists, err := s.classrooms.Exists(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClassroomNotFound
	}

	defer s.locks.lock(req.ClassroomID).Unlock()

	existing, err := s.bookings.ActiveByClassroom(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}

	w := schedule.Window{Start: req.StartTime, End: req.EndTime}
	decision := schedule.AdmitBooking(req.ClassroomID, w, toScheduleBookings(existing), s.policy, 0)
	if !decision.Accepted {
		return nil, reasonError(decision.Reason)
	}

	rows := s.buildRows(uuid.NewString(), req.ClassroomID, req.StudentName, w)
	if err := s.bookings.CreateGroup(ctx, rows); err != nil {
		if isConstraintConflict(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return deref(rows), nil
}

// Update replaces a booking's window (and classroom, if changed) in full.
// The booking's own rows are excluded from the conflict scan, so shrinking
// or shifting within its current span always re-admits.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) ([]domain.Booking, error) {
	b, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.classrooms.Exists(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClassroomNotFound
	}

	defer s.locks.lock(req.ClassroomID).Unlock()

	existing, err := s.bookings.ActiveByClassroom(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}

	// A single-row group is excluded by id inside the checker; a split
	// group is filtered out of the snapshot so every hour row of the
	// booking being replaced is ignored.
	snapshot := toScheduleBookings(existing)
	var excludeID int64
	if groupSize(existing, b.GroupID) > 1 {
		snapshot = withoutGroup(existing, b.GroupID)
	} else {
		excludeID = b.ID
	}

	w := schedule.Window{Start: req.StartTime, End: req.EndTime}
	decision := schedule.AdmitBooking(req.ClassroomID, w, snapshot, s.policy, excludeID)
	if !decision.Accepted {
		return nil, reasonError(decision.Reason)
	}

	rows := s.buildRows(b.GroupID, req.ClassroomID, req.StudentName, w)
	if err := s.bookings.ReplaceGroup(ctx, b.GroupID, rows); err != nil {
		if isConstraintConflict(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return deref(rows), nil
}

// Cancel marks the booking (all rows of its group) cancelled and returns
// the cancelled rows.
func (s *Service) Cancel(ctx context.Context, id int64) ([]domain.Booking, error) {
	b, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.CancelGroup(ctx, b.GroupID); err != nil {
		return nil, err
	}
	return s.bookings.GetGroup(ctx, b.GroupID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx, limit, offset)
}

func (s *Service) ListByStudent(ctx context.Context, studentName string, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByStudent(ctx, studentName, limit, offset)
}

func (s *Service) getActive(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, ErrAlreadyCancelled
	}
	return b, nil
}

func (s *Service) buildRows(groupID string, classroomID int64, studentName string, w schedule.Window) []*domain.Booking {
	windows := []schedule.Window{w}
	if s.splitHourly {
		windows = schedule.ExpandToUnitSlots(w, s.policy.Granularity)
	}

	rows := make([]*domain.Booking, 0, len(windows))
	for _, slot := range windows {
		rows = append(rows, &domain.Booking{
			GroupID:     groupID,
			ClassroomID: classroomID,
			StudentName: studentName,
			StartTime:   slot.Start,
			EndTime:     slot.End,
			Status:      domain.BookingConfirmed,
		})
	}
	return rows
}

func toScheduleBookings(bookings []domain.Booking) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, schedule.Booking{
			ID:          b.ID,
			ClassroomID: b.ClassroomID,
			Window:      schedule.Window{Start: b.StartTime, End: b.EndTime},
		})
	}
	return out
}

func withoutGroup(bookings []domain.Booking, groupID string) []schedule.Booking {
	out := make([]schedule.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.GroupID == groupID {
			continue
		}
		out = append(out, schedule.Booking{
			ID:          b.ID,
			ClassroomID: b.ClassroomID,
			Window:      schedule.Window{Start: b.StartTime, End: b.EndTime},
		})
	}
	return out
}

func groupSize(bookings []domain.Booking, groupID string) int {
	n := 0
	for _, b := range bookings {
		if b.GroupID == groupID {
			n++
		}
	}
	return n
}

func deref(rows []*domain.Booking) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	return out
}

// isConstraintConflict recognizes the database backstops firing under a
// cross-process race: 23505 from the partial unique index on start times,
// 23P01 from the range exclusion constraint on full windows.
func isConstraintConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23P01"
	}
	// SQLite reports constraint violations by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
