package handler

import "github.com/gin-gonic/gin"

// GetUsername extracts the operator username from the Gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	return username.(string)
}
