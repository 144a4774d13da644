package domain

import "time"

type Classroom struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Building  string    `json:"building,omitempty"`
	Capacity  int       `json:"capacity" validate:"gte=0"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
