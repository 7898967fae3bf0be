package system

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"hrms-portal/internal/shared/document"
)

type Handler struct {
	store document.Store
}

func NewHandler(store document.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HRMS Portal Backend is running"})
}

// Test melaporkan kondisi koneksi store. Endpoint ini tidak pernah gagal;
// field-nya yang menurun kalau ada masalah.
func (h *Handler) Test(c *gin.Context) {
	resp := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	ctx := c.Request.Context()

	if err := h.store.Ping(ctx); err == nil {
		resp["database"] = "✅ Available"
		resp["connection_status"] = "Connected"

		if names, err := h.store.Collections(ctx); err == nil {
			if len(names) > 10 {
				names = names[:10]
			}
			resp["collections"] = names
			resp["database"] = "✅ Connected & Working"
		} else {
			resp["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
		}
	}

	if os.Getenv("DATABASE_URL") != "" {
		resp["database_url"] = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		resp["database_name"] = "✅ Set"
	}

	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
