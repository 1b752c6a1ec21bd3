package response

import "github.com/gin-gonic/gin"

// Success writes the flat success envelope: {"success":true, ...payload}.
func Success(c *gin.Context, statusCode int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error writes {"success":false,"message":...}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
