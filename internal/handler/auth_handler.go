package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deal-pipeline-api/internal/domain"
	"deal-pipeline-api/internal/dto"
	"deal-pipeline-api/internal/middleware"
	"deal-pipeline-api/internal/response"
	"deal-pipeline-api/internal/store"
)

// AuthHandler implements the authentication stub: any well-formed name and
// email signs in. There are no credentials or authorization semantics
// beyond the boolean session flag.
type AuthHandler struct {
	store    *store.Store
	secret   string
	tokenTTL time.Duration
	logger   *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(st *store.Store, secret string, tokenTTL time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: st, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

// Login godoc
// @Summary      Sign in with a name and email
// @Accept       json
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.LoginResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "name and a valid email are required")
		return
	}

	token, err := middleware.IssueToken(h.secret, req.Name, req.Email, h.tokenTTL)
	if err != nil {
		h.logger.Error("failed to sign session token", zap.Error(err))
		response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to create session")
		return
	}

	h.store.Login(domain.User{Name: req.Name, Email: req.Email})
	response.SendSuccess(c, http.StatusOK, dto.LoginResponse{
		Token: token,
		Name:  req.Name,
		Email: req.Email,
	})
}

// Logout godoc
// @Summary      Clear the session
// @Produce      json
// @Success      200 {object} response.SuccessResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	response.SendSuccess(c, http.StatusOK, nil)
}
