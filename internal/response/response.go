package response

import (
	"github.com/gin-gonic/gin"
)

// Mensaje is the standardized API response envelope: an error flag, a
// human-readable message and an optional typed payload.
type Mensaje struct {
	Error   bool        `json:"error"`
	Mensaje string      `json:"mensaje"`
	Data    interface{} `json:"data"`
}

// Success sends a successful JSON response with the given status code,
// message and payload.
func Success(c *gin.Context, statusCode int, mensaje string, data interface{}) {
	c.JSON(statusCode, Mensaje{
		Error:   false,
		Mensaje: mensaje,
		Data:    data,
	})
}

// Fail sends an error response using the canonical message for the code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Mensaje{
		Error:   true,
		Mensaje: GetMessage(code),
	})
}

// FailWithFields sends a validation error response carrying field-level
// details in the payload.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Mensaje{
		Error:   true,
		Mensaje: GetMessage(code),
		Data:    fields,
	})
}

// FailMessage sends an error response with a caller-supplied message.
// Used where a domain error already carries a descriptive text.
func FailMessage(c *gin.Context, statusCode int, mensaje string) {
	c.JSON(statusCode, Mensaje{
		Error:   true,
		Mensaje: mensaje,
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Mensaje{
		Error:   true,
		Mensaje: GetMessage(code),
	})
}
