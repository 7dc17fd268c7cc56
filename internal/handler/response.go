package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse represents a successful roster change.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error sends error response.
func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorResponse{Detail: detail})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}
