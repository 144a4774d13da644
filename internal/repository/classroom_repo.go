package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"classroombooking/internal/domain"
)

type ClassroomRepository struct {
	db *gorm.DB
}

func NewClassroomRepository(db *gorm.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

type classroomModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Building  string    `gorm:"column:building"`
	Capacity  int       `gorm:"column:capacity"`
	ImageURL  string    `gorm:"column:image_url"`
	IsActive  bool      `gorm:"column:is_active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (classroomModel) TableName() string { return "classrooms" }

func toDomainClassroom(m classroomModel) *domain.Classroom {
	return &domain.Classroom{
		ID:        m.ID,
		Name:      m.Name,
		Building:  m.Building,
		Capacity:  m.Capacity,
		ImageURL:  m.ImageURL,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toClassroomModel(c *domain.Classroom) classroomModel {
	return classroomModel{
		ID:        c.ID,
		Name:      c.Name,
		Building:  c.Building,
		Capacity:  c.Capacity,
		ImageURL:  c.ImageURL,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *ClassroomRepository) Create(ctx context.Context, c *domain.Classroom) error {
	m := toClassroomModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClassroom(m)
	return nil
}

func (r *ClassroomRepository) List(ctx context.Context, limit, offset int) ([]domain.Classroom, error) {
	var rows []classroomModel
	q := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Classroom, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainClassroom(m))
	}
	return out, nil
}

func (r *ClassroomRepository) GetByID(ctx context.Context, id int64) (*domain.Classroom, error) {
	var m classroomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClassroom(m), nil
}

func (r *ClassroomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&classroomModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
