package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	attendances := r.Group("/attendance")
	{
		attendances.GET("", h.GetAll)
		attendances.POST("/checkin", h.CheckIn)
		attendances.POST("/:id/checkout", h.CheckOut)
	}
}
