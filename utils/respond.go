// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// The API signals application failures through a success flag in the body
// rather than the HTTP status code, so most handlers pass http.StatusOK
// here. Auth failures and malformed requests keep their real status.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

func RespondWithData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func RespondWithMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": true, "message": message})
}
