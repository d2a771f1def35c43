package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body every JSON endpoint answers with. Endpoints that
// return more than data (login, search) use SuccessWith.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success sends {success:true, data}.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

// SuccessMessage sends {success:true, message}.
func SuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: true, Message: message})
}

// SuccessWith sends {success:true} merged with the given top-level fields.
func SuccessWith(c *gin.Context, statusCode int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		if k == "success" {
			continue
		}
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail sends {success:false, message} with the message for code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Envelope{Success: false, Message: GetMessage(code)})
}

// FailWithMessage sends {success:false, message} with a caller-supplied message.
// Used when the underlying fault text is surfaced to the client.
func FailWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Message: GetMessage(code)})
}
