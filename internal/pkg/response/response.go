package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes the payload as-is, for listings and single resources returned
// without an envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Created wraps a new resource together with a human-readable message,
// e.g. {"message": "...", "booking": {...}}.
func Created(c *gin.Context, message, key string, resource interface{}) {
	c.JSON(http.StatusCreated, gin.H{"message": message, key: resource})
}

func OK(c *gin.Context, message, key string, resource interface{}) {
	c.JSON(http.StatusOK, gin.H{"message": message, key: resource})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func ValidationError(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  errors,
	})
}
