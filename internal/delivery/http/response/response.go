package response

import (
	"ai-match-connect/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// Raw sends a pre-serialized JSON body untouched, used when relaying an
// upstream service's verdict verbatim.
func Raw(c *gin.Context, code int, body []byte) {
	c.Data(code, "application/json", body)
}

func requestID(c *gin.Context) string {
	id, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := id.(string)
	return idStr
}
