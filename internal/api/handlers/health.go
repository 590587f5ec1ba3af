package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub-backend/internal/store"
)

// HealthHandler reports service liveness and store population
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Health handles GET /health
// @Summary Health check
// @Description Reports service status and entity counts
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.store.RLock()
	counts := gin.H{
		"users":         len(h.store.Users),
		"projects":      len(h.store.Projects),
		"tasks":         len(h.store.Tasks),
		"notifications": len(h.store.Notifications),
		"activities":    len(h.store.Activities),
	}
	h.store.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"entities": counts,
	})
}
