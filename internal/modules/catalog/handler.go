package catalog

import (
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
	rg.GET("/classrooms", h.List)
	rg.GET("/classrooms/:id", h.Detail)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rooms, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list classrooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classrooms": rooms})
}

func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid classroom id")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Classroom not found")
		case ErrBadDate:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Date must be YYYY-MM-DD")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load classroom")
		}
		return
	}

	response.Success(c, http.StatusOK, detail)
}
