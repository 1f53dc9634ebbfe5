package utils

import "github.com/gin-gonic/gin"

// JSONError writes the error envelope used across the API:
// {"error": {"message": "..."}}
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": gin.H{"message": message}})
}
