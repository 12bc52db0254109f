package domain

// DealStage represents a pipeline stage for a deal
type DealStage string

const (
	StageLeadGenerated          DealStage = "Lead Generated"
	StageContacted              DealStage = "Contacted"
	StageApplicationSubmitted   DealStage = "Application Submitted"
	StageApplicationUnderReview DealStage = "Application Under Review"
	StageDealFinalized          DealStage = "Deal Finalized"
	StagePaymentConfirmed       DealStage = "Payment Confirmed"
	StageCompleted              DealStage = "Completed"
	StageLost                   DealStage = "Lost"
)

// PipelineStages lists every stage in pipeline order. Board columns render
// in this order.
var PipelineStages = []DealStage{
	StageLeadGenerated,
	StageContacted,
	StageApplicationSubmitted,
	StageApplicationUnderReview,
	StageDealFinalized,
	StagePaymentConfirmed,
	StageCompleted,
	StageLost,
}

// IsValid reports whether s is one of the eight pipeline stages
func (s DealStage) IsValid() bool {
	for _, stage := range PipelineStages {
		if s == stage {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s is excluded from active-deal statistics.
// Terminal stages are not otherwise special-cased: any stage may move to
// any other stage.
func (s DealStage) IsTerminal() bool {
	return s == StageCompleted || s == StageLost
}

// Deal represents a sales deal moving through the pipeline.
// ID is immutable after creation. CreatedDate is an ISO date string
// (YYYY-MM-DD).
type Deal struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	ProductName string    `json:"productName"`
	Stage       DealStage `json:"stage"`
	CreatedDate string    `json:"createdDate"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Value       float64   `json:"value,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// DealPatch is a partial update to a deal. Nil fields are retained on merge.
type DealPatch struct {
	ClientName  *string    `json:"clientName,omitempty"`
	ProductName *string    `json:"productName,omitempty"`
	Stage       *DealStage `json:"stage,omitempty"`
	CreatedDate *string    `json:"createdDate,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	Value       *float64   `json:"value,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// Apply merges the patch over deal and returns the merged record.
// Fields not present in the patch keep their prior value; the input deal is
// not mutated. The deal's ID is never patched.
func (p DealPatch) Apply(deal Deal) Deal {
	if p.ClientName != nil {
		deal.ClientName = *p.ClientName
	}
	if p.ProductName != nil {
		deal.ProductName = *p.ProductName
	}
	if p.Stage != nil {
		deal.Stage = *p.Stage
	}
	if p.CreatedDate != nil {
		deal.CreatedDate = *p.CreatedDate
	}
	if p.AssignedTo != nil {
		deal.AssignedTo = *p.AssignedTo
	}
	if p.Value != nil {
		deal.Value = *p.Value
	}
	if p.Notes != nil {
		deal.Notes = *p.Notes
	}
	return deal
}
