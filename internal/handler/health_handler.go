package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-pipeline-api/internal/store"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health reports liveness
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness: the store exists and serves snapshots
func (h *HealthHandler) Ready(c *gin.Context) {
	snapshot := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"deals":   len(snapshot.Deals),
		"loading": snapshot.IsLoading,
	})
}
