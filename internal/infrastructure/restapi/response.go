package restapi

import (
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope of every non-proxy JSON answer.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the failure body of the proxy route. Field order is part of the format.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, APIResponse{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, APIResponse{Success: false, Message: err.Error()})
}
