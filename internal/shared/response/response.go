package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hrms-portal/internal/shared/apperror"
)

// Created menulis payload standar untuk resource baru: {"_id": "..."}
func Created(c *gin.Context, id string) {
	c.JSON(http.StatusCreated, gin.H{"_id": id})
}

// List menulis koleksi sebagai array JSON polos
func List(c *gin.Context, items any) {
	c.JSON(http.StatusOK, items)
}

// Success menulis payload {"success": true} untuk operasi tanpa body hasil
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Detail menulis payload error {"detail": "..."} dengan status tertentu
func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"detail": message})
}

// FromError memetakan error service ke respons {"detail": ...}
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Detail(c, httpErr.Status, httpErr.Message)
}
