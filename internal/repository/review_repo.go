package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"classroombooking/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	ClassroomID int64     `gorm:"column:classroom_id;index"`
	Author      string    `gorm:"column:author"`
	Rating      int       `gorm:"column:rating"`
	Comment     string    `gorm:"column:comment"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:          m.ID,
		ClassroomID: m.ClassroomID,
		Author:      m.Author,
		Rating:      m.Rating,
		Comment:     m.Comment,
		CreatedAt:   m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	return reviewModel{
		ID:          rv.ID,
		ClassroomID: rv.ClassroomID,
		Author:      rv.Author,
		Rating:      rv.Rating,
		Comment:     rv.Comment,
		CreatedAt:   rv.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

// List returns reviews newest first, filtered by classroom when
// classroomID is non-zero.
func (r *ReviewRepository) List(ctx context.Context, classroomID int64, limit, offset int) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Model(&reviewModel{}).Order("created_at DESC, id DESC")
	if classroomID > 0 {
		q = q.Where("classroom_id = ?", classroomID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var rows []reviewModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
