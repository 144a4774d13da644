package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"classroombooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	GroupID     string     `gorm:"column:group_id;index"`
	ClassroomID int64      `gorm:"column:classroom_id;index"`
	StudentName string     `gorm:"column:student_name;index"`
	StartTime   time.Time  `gorm:"column:start_time"`
	EndTime     time.Time  `gorm:"column:end_time"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		GroupID:     m.GroupID,
		ClassroomID: m.ClassroomID,
		StudentName: m.StudentName,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		GroupID:     b.GroupID,
		ClassroomID: b.ClassroomID,
		StudentName: b.StudentName,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		CancelledAt: b.CancelledAt,
	}
}

// ActiveByClassroom returns the non-cancelled bookings for one classroom,
// the snapshot the admission check runs against.
func (r *BookingRepository) ActiveByClassroom(ctx context.Context, classroomID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("classroom_id = ? AND status <> ?", classroomID, string(domain.BookingCancelled)).
		Order("start_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// CreateGroup inserts all rows of one admitted window in a single
// transaction, so a constraint violation on any row leaves nothing behind.
func (r *BookingRepository) CreateGroup(ctx context.Context, bookings []*domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range bookings {
			m := toBookingModel(b)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			*b = *toDomainBooking(m)
		}
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetGroup(ctx context.Context, groupID string) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("start_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return r.list(r.db.WithContext(ctx), limit, offset)
}

func (r *BookingRepository) ListByStudent(ctx context.Context, studentName string, limit, offset int) ([]domain.Booking, error) {
	return r.list(r.db.WithContext(ctx).Where("student_name = ?", studentName), limit, offset)
}

func (r *BookingRepository) list(q *gorm.DB, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	q = q.Order("start_time")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ReplaceGroup atomically replaces every row of a booking group with the
// given rows in one transaction, preserving the group id. Row ids are
// reused positionally so a booking keeps its id across updates as long as
// the group does not grow.
func (r *BookingRepository) ReplaceGroup(ctx context.Context, groupID string, bookings []*domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old []bookingModel
		if err := tx.Where("group_id = ?", groupID).Order("start_time").Find(&old).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&bookingModel{}).Error; err != nil {
			return err
		}
		for i, b := range bookings {
			m := toBookingModel(b)
			m.ID = 0
			if i < len(old) {
				m.ID = old[i].ID
				m.CreatedAt = old[i].CreatedAt
			}
			m.GroupID = groupID
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			*b = *toDomainBooking(m)
		}
		return nil
	})
}

// CancelGroup marks every row of the group cancelled.
func (r *BookingRepository) CancelGroup(ctx context.Context, groupID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("group_id = ? AND status <> ?", groupID, string(domain.BookingCancelled)).
		Updates(map[string]any{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": &now,
		}).Error
}
