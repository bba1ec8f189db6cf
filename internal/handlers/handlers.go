package handlers

import (
	"github.com/gin-gonic/gin"
)

// Handler is a placeholder for dependencies for HTTP handlers.
// It currently does not hold state, but exists to keep methods organized.
type Handler struct{}

// New returns a new Handler instance.
func New() *Handler { return &Handler{} }

// Healthz reports liveness for load balancers.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
