// Package handler contains HTTP request handlers.
// In Gin, a handler is any function with signature func(*gin.Context).
// No need for controller classes — just functions grouped by file.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleveque/research-service/internal/llm"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	client llm.Client
}

// NewHealthHandler creates a new HealthHandler.
// In Go, constructors are just regular functions prefixed with "New".
func NewHealthHandler(client llm.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// Healthz responds with service status and the configured model. It never
// calls the model, so it stays cheap for platform probes.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "research-service",
		"provider": h.client.ProviderName(),
		"model":    h.client.ModelName(),
	})
}
