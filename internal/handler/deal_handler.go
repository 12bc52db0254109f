package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/dto"
	"deal-pipeline-api/internal/response"
	"deal-pipeline-api/internal/service"
	"deal-pipeline-api/internal/store"
)

// DealHandler serves the deal collection in both view projections
type DealHandler struct {
	dealService   service.DealService
	kanbanService service.KanbanService
	store         *store.Store
}

// NewDealHandler creates a new DealHandler
func NewDealHandler(dealService service.DealService, kanbanService service.KanbanService, st *store.Store) *DealHandler {
	return &DealHandler{
		dealService:   dealService,
		kanbanService: kanbanService,
		store:         st,
	}
}

// ListDeals godoc
// @Summary      Table projection of the deal pipeline
// @Produce      json
// @Param        search  query string false "Search text"
// @Param        stage   query string false "Stage filter, 'All' or a stage name"
// @Param        sortKey query string false "clientName|productName|stage|createdDate"
// @Param        sortDir query string false "asc|desc"
// @Success      200 {object} response.SuccessResponse{data=[]domain.Deal}
// @Router       /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	q := service.DefaultTableQuery()
	q.Search = c.Query("search")
	if stage := c.Query("stage"); stage != "" {
		if stage != service.StageFilterAll && !domain.DealStage(stage).IsValid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown stage filter")
			return
		}
		q.StageFilter = stage
	}
	if key := c.Query("sortKey"); key != "" {
		sortKey := service.SortKey(key)
		if !sortKey.IsValid() {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown sort key")
			return
		}
		q.SortKey = sortKey
	}
	if dir := c.Query("sortDir"); dir != "" {
		if dir != string(service.SortAsc) && dir != string(service.SortDesc) {
			response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "sortDir must be asc or desc")
			return
		}
		q.SortDir = service.SortDirection(dir)
	}

	deals := service.ProjectTable(h.store.Snapshot().Deals, q)
	response.SendSuccess(c, http.StatusOK, deals)
}

// GetBoard godoc
// @Summary      Kanban projection of the deal pipeline
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=service.Board}
// @Router       /deals/board [get]
func (h *DealHandler) GetBoard(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, h.kanbanService.Board(c.Request.Context()))
}

// GetStats godoc
// @Summary      Pipeline statistics
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=service.PipelineStats}
// @Router       /deals/stats [get]
func (h *DealHandler) GetStats(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, h.kanbanService.Stats(c.Request.Context()))
}

// CreateDeal godoc
// @Summary      Create a deal from a product and client selection
// @Accept       json
// @Produce      json
// @Success      201 {object} response.SuccessResponse{data=domain.Deal}
// @Failure      400 {object} response.ErrorResponse
// @Router       /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "productId and clientId are required")
		return
	}
	if req.Stage != "" && !req.Stage.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown deal stage")
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, deal)
}

// UpdateDeal godoc
// @Summary      Partially update a deal
// @Accept       json
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=domain.Deal}
// @Failure      404 {object} response.ErrorResponse
// @Router       /deals/{id} [put]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id := c.Param("id")
	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}
	if req.Stage != nil && !req.Stage.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown deal stage")
		return
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), id, req.Patch())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, deal)
}

// DeleteDeal godoc
// @Summary      Delete a deal
// @Produce      json
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	if err := h.dealService.DeleteDeal(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, nil)
}

// MoveDeal godoc
// @Summary      Relocate a deal to another pipeline stage
// @Accept       json
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=domain.Deal}
// @Failure      404 {object} response.ErrorResponse
// @Router       /deals/{id}/move [post]
func (h *DealHandler) MoveDeal(c *gin.Context) {
	var req dto.MoveDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "stage is required")
		return
	}
	if !req.Stage.IsValid() {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Unknown deal stage")
		return
	}

	deal, err := h.kanbanService.Relocate(c.Request.Context(), c.Param("id"), req.Stage)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, deal)
}

// Refresh godoc
// @Summary      Re-run the all-or-nothing initial load
// @Produce      json
// @Success      200 {object} response.SuccessResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /refresh [post]
func (h *DealHandler) Refresh(c *gin.Context) {
	if err := h.dealService.Refresh(c.Request.Context()); err != nil {
		handleServiceError(c, err)
		return
	}
	snapshot := h.store.Snapshot()
	response.SendSuccess(c, http.StatusOK, gin.H{
		"deals":    len(snapshot.Deals),
		"products": len(snapshot.Products),
		"clients":  len(snapshot.Clients),
	})
}

// ListProducts godoc
// @Summary      Product reference data
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]domain.Product}
// @Router       /products [get]
func (h *DealHandler) ListProducts(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, h.store.Snapshot().Products)
}

// ListClients godoc
// @Summary      Client reference data
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]domain.Client}
// @Router       /clients [get]
func (h *DealHandler) ListClients(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, h.store.Snapshot().Clients)
}
