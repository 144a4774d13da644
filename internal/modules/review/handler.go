package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"classroombooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Create)
	rg.GET("/reviews", h.List)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review", ve.Fields)
			return
		}
		switch err {
		case ErrClassroomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Classroom not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) List(c *gin.Context) {
	classroomID, err := strconv.ParseInt(c.DefaultQuery("classroom_id", "0"), 10, 64)
	if err != nil || classroomID < 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid classroom_id")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := h.service.List(c.Request.Context(), classroomID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list reviews")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}
