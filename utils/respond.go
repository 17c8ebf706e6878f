package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Remote operations share one response envelope: {success, data?,
// message?}. The field names are part of the API contract and must
// not change.

// RespondData writes a success envelope carrying data.
func RespondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// RespondMessage writes a success envelope carrying a message.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// RespondDataMessage writes a success envelope carrying both.
func RespondDataMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

// RespondError maps any error to a failure envelope. Unrecognized
// errors surface only the generic persistence message.
func RespondError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	c.JSON(appErr.HTTPStatus, gin.H{
		"success": false,
		"message": appErr.Message,
	})
}
