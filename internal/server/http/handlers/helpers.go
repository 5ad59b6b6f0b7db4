package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/healthboard/internal/domain/model"
	"github.com/polkiloo/healthboard/internal/server/http/dto"
	"github.com/polkiloo/healthboard/internal/server/http/middleware"
)

// CurrentSession extracts the verified session from context.
func CurrentSession(c *gin.Context) (*model.Session, bool) {
	val, ok := c.Get(middleware.SessionContextKey)
	if !ok {
		return nil, false
	}
	session, ok := val.(*model.Session)
	return session, ok && session != nil
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}
