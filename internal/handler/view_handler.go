package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-pipeline-api/internal/dto"
	"deal-pipeline-api/internal/response"
	"deal-pipeline-api/internal/store"
)

// ViewHandler serves the current view mode and the view preferences
type ViewHandler struct {
	store *store.Store
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(st *store.Store) *ViewHandler {
	return &ViewHandler{store: st}
}

// GetPreferences godoc
// @Summary      Current view mode and preferences
// @Produce      json
// @Router       /preferences [get]
func (h *ViewHandler) GetPreferences(c *gin.Context) {
	snapshot := h.store.Snapshot()
	response.SendSuccess(c, http.StatusOK, gin.H{
		"currentView":     snapshot.CurrentView,
		"viewPreferences": snapshot.ViewPreferences,
	})
}

// UpdatePreferences godoc
// @Summary      Recursive partial merge of view preferences
// @Accept       json
// @Produce      json
// @Router       /preferences [patch]
func (h *ViewHandler) UpdatePreferences(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	h.store.SetViewPreferences(req.Patch())
	response.SendSuccess(c, http.StatusOK, h.store.Snapshot().ViewPreferences)
}

// SetView godoc
// @Summary      Switch between the tabular and kanban views
// @Accept       json
// @Produce      json
// @Router       /view [put]
func (h *ViewHandler) SetView(c *gin.Context) {
	var req dto.SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "view is required")
		return
	}
	if !req.View.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "view must be tabular or kanban")
		return
	}

	h.store.SetCurrentView(req.View)
	response.SendSuccess(c, http.StatusOK, gin.H{"currentView": req.View})
}
