package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", h.GetAll)
		leaves.POST("", h.Create)
		leaves.POST("/:id/action", h.Act)
	}
}
