// Package response shapes every API reply into the fixed JSON envelope:
// {success, data|message|token|error, count?, pagination?}.
package response

import (
	"github.com/gin-gonic/gin"

	"fintrack-backend/pkg/query"
)

// OK writes {success:true, data} with the given status.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Message writes {success:true, message}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": msg,
	})
}

// Token writes {success:true, token} for session-token responses.
func Token(c *gin.Context, status int, token string) {
	c.JSON(status, gin.H{
		"success": true,
		"token":   token,
	})
}

// List writes the paginated list envelope.
func List(c *gin.Context, status int, data interface{}, count int, pagination query.Pagination) {
	c.JSON(status, gin.H{
		"success":    true,
		"count":      count,
		"pagination": pagination,
		"data":       data,
	})
}

// Error writes {success:false, error} with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}
