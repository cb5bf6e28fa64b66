package response

import "github.com/gin-gonic/gin"

// Detail writes the single-message error (or confirmation) shape the API
// uses everywhere: {"detail": "..."}.
func Detail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"detail": message})
}

func AbortDetail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"detail": message})
}
