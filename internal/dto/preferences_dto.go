package dto

import "deal-pipeline-api/internal/domain"

// UpdatePreferencesRequest carries a recursive partial preferences update.
// Omitted sub-objects and omitted fields keep their prior values.
type UpdatePreferencesRequest struct {
	Tabular *domain.TabularPreferencesPatch `json:"tabular,omitempty"`
	Kanban  *domain.KanbanPreferencesPatch  `json:"kanban,omitempty"`
}

// Patch converts the request into a domain patch
func (r *UpdatePreferencesRequest) Patch() domain.ViewPreferencesPatch {
	return domain.ViewPreferencesPatch{Tabular: r.Tabular, Kanban: r.Kanban}
}

// SetViewRequest switches the current view mode
type SetViewRequest struct {
	View domain.ViewMode `json:"view" binding:"required"`
}
