package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"classroombooking/internal/domain"
	"classroombooking/internal/schedule"
)

type MockClassroomRepository struct {
	mock.Mock
}

func (m *MockClassroomRepository) List(ctx context.Context, limit, offset int) ([]domain.Classroom, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Classroom), args.Error(1)
}

func (m *MockClassroomRepository) GetByID(ctx context.Context, id int64) (*domain.Classroom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Classroom), args.Error(1)
}

type MockBookingSnapshot struct {
	mock.Mock
}

func (m *MockBookingSnapshot) ActiveByClassroom(ctx context.Context, classroomID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, classroomID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func testPolicy() schedule.Policy {
	return schedule.Policy{OpenHour: 7, CloseHour: 18, Granularity: time.Hour}
}

func TestService_Detail_SlotGrid(t *testing.T) {
	mockRooms := new(MockClassroomRepository)
	mockBookings := new(MockBookingSnapshot)

	day := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	mockRooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Classroom{ID: 1, Name: "Room A"}, nil)
	mockBookings.On("ActiveByClassroom", mock.Anything, int64(1)).Return([]domain.Booking{
		{ID: 5, ClassroomID: 1, StartTime: day.Add(9 * time.Hour), EndTime: day.Add(11 * time.Hour)},
	}, nil)

	service := NewService(mockRooms, mockBookings, testPolicy())

	detail, err := service.Detail(context.Background(), 1, "2026-10-05")
	assert.NoError(t, err)

	// 07:00..18:00 with hour slots: 11 slots, the two booked hours taken.
	assert.Len(t, detail.Timeslots, 11)
	for _, slot := range detail.Timeslots {
		switch slot.StartTime {
		case "09:00", "10:00":
			assert.False(t, slot.Available, "slot %s should be booked", slot.StartTime)
		default:
			assert.True(t, slot.Available, "slot %s should be free", slot.StartTime)
		}
	}

	assert.Equal(t, "07:00", detail.Timeslots[0].StartTime)
	assert.Equal(t, "18:00", detail.Timeslots[len(detail.Timeslots)-1].EndTime)
	assert.Equal(t, "2026-10-05", detail.Date)
}

func TestService_Detail_NotFound(t *testing.T) {
	mockRooms := new(MockClassroomRepository)
	mockBookings := new(MockBookingSnapshot)

	mockRooms.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRooms, mockBookings, testPolicy())

	_, err := service.Detail(context.Background(), 9, "2026-10-05")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Detail_BadDate(t *testing.T) {
	service := NewService(new(MockClassroomRepository), new(MockBookingSnapshot), testPolicy())

	_, err := service.Detail(context.Background(), 1, "05/10/2026")
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestService_List(t *testing.T) {
	mockRooms := new(MockClassroomRepository)
	mockBookings := new(MockBookingSnapshot)

	mockRooms.On("List", mock.Anything, 100, 0).Return([]domain.Classroom{
		{ID: 1, Name: "Room A"},
		{ID: 2, Name: "Room B"},
	}, nil)

	service := NewService(mockRooms, mockBookings, testPolicy())

	rooms, err := service.List(context.Background(), 100, 0)
	assert.NoError(t, err)
	assert.Len(t, rooms, 2)
}
