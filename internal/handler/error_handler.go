package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-pipeline-api/internal/client"
	"deal-pipeline-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, client.ErrDealNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Deal not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeLoadFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
