package attendance

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hrms-portal/internal/shared/apperror"
	"hrms-portal/internal/shared/response"
)

const defaultListLimit = 100

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit < 1 {
		limit = defaultListLimit
	}

	q := ListAttendanceQuery{
		EmployeeID: c.Query("employee_id"),
		Limit:      limit,
	}

	resp, err := h.service.GetAll(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.List(c, resp)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	id, err := h.service.CheckIn(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, id)
}

func (h *Handler) CheckOut(c *gin.Context) {
	if err := h.service.CheckOut(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c)
}
