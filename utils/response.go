package utils

import "github.com/gin-gonic/gin"

// envelope is the uniform response body every endpoint returns, so the
// desk UI can branch on success without sniffing status codes.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, envelope{Success: true, Data: data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Success: false, Error: message})
}
