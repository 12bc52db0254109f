package dto

import "deal-pipeline-api/internal/domain"

// CreateDealRequest is the deal creation form payload. The form must select
// a product and a client; names and the deal value are resolved server-side
// from the reference data.
type CreateDealRequest struct {
	ProductID  string           `json:"productId" binding:"required"`
	ClientID   string           `json:"clientId" binding:"required"`
	Stage      domain.DealStage `json:"stage,omitempty"`
	AssignedTo string           `json:"assignedTo,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// UpdateDealRequest is a partial deal update. Absent fields are retained.
type UpdateDealRequest struct {
	ClientName  *string           `json:"clientName,omitempty"`
	ProductName *string           `json:"productName,omitempty"`
	Stage       *domain.DealStage `json:"stage,omitempty"`
	AssignedTo  *string           `json:"assignedTo,omitempty"`
	Value       *float64          `json:"value,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
}

// Patch converts the request into a domain patch. CreatedDate and ID are
// never updatable through the API.
func (r *UpdateDealRequest) Patch() domain.DealPatch {
	return domain.DealPatch{
		ClientName:  r.ClientName,
		ProductName: r.ProductName,
		Stage:       r.Stage,
		AssignedTo:  r.AssignedTo,
		Value:       r.Value,
		Notes:       r.Notes,
	}
}

// MoveDealRequest is a drag relocation intent
type MoveDealRequest struct {
	Stage domain.DealStage `json:"stage" binding:"required"`
}
