package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"classroombooking/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 50 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) List(ctx context.Context, classroomID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, classroomID, limit, offset)
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockClassroomGate struct {
	mock.Mock
}

func (m *MockClassroomGate) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockRooms := new(MockClassroomGate)

	mockRooms.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockReviews, mockRooms)

	rv, err := service.Create(context.Background(), CreateReviewRequest{
		ClassroomID: 1,
		Author:      "Alice",
		Rating:      10,
		Comment:     "Great projector",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(50), rv.ID)
	assert.Equal(t, 10, rv.Rating)
}

func TestService_Create_RatingBounds(t *testing.T) {
	for _, rating := range []int{0, -3, 11, 100} {
		mockReviews := new(MockReviewRepository)
		mockRooms := new(MockClassroomGate)

		service := NewService(mockReviews, mockRooms)

		_, err := service.Create(context.Background(), CreateReviewRequest{
			ClassroomID: 1,
			Author:      "Alice",
			Rating:      rating,
		})

		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, "rating %d must be rejected", rating)
		assert.Contains(t, ve.Fields, "Rating")
		mockReviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestService_Create_ClassroomMissing(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockRooms := new(MockClassroomGate)

	mockRooms.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	service := NewService(mockReviews, mockRooms)

	_, err := service.Create(context.Background(), CreateReviewRequest{
		ClassroomID: 9,
		Author:      "Alice",
		Rating:      5,
	})

	assert.ErrorIs(t, err, ErrClassroomNotFound)
}

func TestService_List_FilterPassthrough(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockRooms := new(MockClassroomGate)

	mockReviews.On("List", mock.Anything, int64(2), 100, 0).Return([]domain.Review{
		{ID: 1, ClassroomID: 2, Author: "Alice", Rating: 8},
	}, nil)

	service := NewService(mockReviews, mockRooms)

	reviews, err := service.List(context.Background(), 2, 100, 0)
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, int64(2), reviews[0].ClassroomID)
}
