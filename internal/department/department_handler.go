package department

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hrms-portal/internal/shared/apperror"
	"hrms-portal/internal/shared/response"
)

const DefaultListLimit = 100

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit < 1 {
		limit = DefaultListLimit
	}

	resp, err := h.service.GetAll(c.Request.Context(), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.List(c, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, id)
}
