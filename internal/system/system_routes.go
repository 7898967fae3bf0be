package system

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.Root)
	r.GET("/test", h.Test)
}
