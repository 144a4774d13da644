package review

type CreateReviewRequest struct {
	ClassroomID int64  `json:"classroom_id" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"comment,omitempty"`
}
