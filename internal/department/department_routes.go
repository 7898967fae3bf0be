package department

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	departments := r.Group("/departments")
	{
		departments.GET("", h.GetAll)
		departments.POST("", h.Create)
	}
}
