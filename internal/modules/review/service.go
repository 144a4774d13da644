package review

import (
	"context"

	"classroombooking/internal/domain"
	"classroombooking/internal/pkg/validator"
)

// ClassroomGate checks the review's target exists before accepting it.
type ClassroomGate interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	List(ctx context.Context, classroomID int64, limit, offset int) ([]domain.Review, error)
}

type Service struct {
	reviews    ReviewRepository
	classrooms ClassroomGate
}

func NewService(reviews ReviewRepository, classrooms ClassroomGate) *Service {
	return &Service{reviews: reviews, classrooms: classrooms}
}

// Create stores a review. Ratings run 1..10.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	rv := &domain.Review{
		ClassroomID: req.ClassroomID,
		Author:      req.Author,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}
	if fields := validator.Validate(rv); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	ok, err := s.classrooms.Exists(ctx, req.ClassroomID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrClassroomNotFound
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// List returns reviews, optionally filtered to one classroom
// (classroomID 0 means all).
func (s *Service) List(ctx context.Context, classroomID int64, limit, offset int) ([]domain.Review, error) {
	if classroomID < 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.List(ctx, classroomID, limit, offset)
}
