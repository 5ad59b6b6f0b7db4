package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/server/http/dto"
)

// LoginRecorder counts login outcomes. May be nil.
type LoginRecorder interface {
	LoginAttempt(success bool)
}

// AuthHandler processes login and session introspection.
type AuthHandler struct {
	facade  AuthFacade
	metrics LoginRecorder
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, metrics LoginRecorder) *AuthHandler {
	return &AuthHandler{facade: facade, metrics: metrics}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, dto.MsgInvalidBody)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			h.record(false)
			respondError(c, http.StatusUnauthorized, dto.MsgInvalidCredentials)
		default:
			respondError(c, http.StatusInternalServerError, dto.MsgInternalError)
		}
		return
	}

	h.record(true)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:  dto.MsgLoginSuccessful,
		Token:    token,
		Username: req.Username,
	})
}

// Session handles GET /api/session.
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := CurrentSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, dto.MsgNoToken)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{
		Username:  session.Username,
		IssuedAt:  session.IssuedAt.UTC().Format(time.RFC3339),
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func (h *AuthHandler) record(success bool) {
	if h.metrics != nil {
		h.metrics.LoginAttempt(success)
	}
}
