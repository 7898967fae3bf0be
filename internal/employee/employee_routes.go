package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.POST("", h.Create)
	}
}
