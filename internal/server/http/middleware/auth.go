package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/domain/model"
	"github.com/polkiloo/healthboard/internal/metrics"
	"github.com/polkiloo/healthboard/internal/server/http/dto"
)

// SessionContextKey is a gin context key for the verified *model.Session.
const SessionContextKey = "session"

// TokenParser verifies a bearer token.
type TokenParser interface {
	ParseToken(token string) (*model.Session, error)
}

// RejectionRecorder counts refused requests. May be nil.
type RejectionRecorder interface {
	TokenRejected(reason string)
}

// AuthRequired admits only requests carrying a valid bearer token.
func AuthRequired(parser TokenParser, rejections RejectionRecorder) gin.HandlerFunc {
	reject := func(c *gin.Context, status int, reason, msg string) {
		if rejections != nil {
			rejections.TokenRejected(reason)
		}
		c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
	}

	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			reject(c, http.StatusUnauthorized, metrics.ReasonMissing, dto.MsgNoToken)
			return
		}

		session, err := parser.ParseToken(token)
		if err != nil {
			switch {
			case errors.Is(err, domainErrors.ErrMissingToken):
				reject(c, http.StatusUnauthorized, metrics.ReasonMissing, dto.MsgNoToken)
			case errors.Is(err, domainErrors.ErrInvalidToken):
				reject(c, http.StatusForbidden, metrics.ReasonInvalid, dto.MsgInvalidToken)
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.MsgInternalError})
			}
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// extractToken returns the credentials of a "Bearer <token>" header, or "".
func extractToken(c *gin.Context) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
