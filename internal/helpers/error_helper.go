package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondStatusError matches the wire format of the public form endpoints:
// {"status":"error","message":...}.
func RespondStatusError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"status": "error", "message": message})
}
