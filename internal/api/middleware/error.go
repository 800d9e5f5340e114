package middleware

import (
	"net/http"

	"fleetsim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers a panicking handler and reports it as a 500
// with the API's ErrorResponse JSON envelope instead of a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "simulation run panicked handling this request"
		if err, ok := recovered.(string); ok {
			message = err
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIM_INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
