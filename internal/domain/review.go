package domain

import "time"

type Review struct {
	ID          int64     `json:"id"`
	ClassroomID int64     `json:"classroom_id" validate:"required,gt=0"`
	Author      string    `json:"author" validate:"required"`
	Rating      int       `json:"rating" validate:"required,gte=1,lte=10"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
