package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/healthboard/internal/domain/errors"
	"github.com/polkiloo/healthboard/internal/server/http/dto"
)

// ChartHandler serves the chart datasets.
type ChartHandler struct {
	facade ChartFacade
}

// NewChartHandler constructs ChartHandler.
func NewChartHandler(facade ChartFacade) *ChartHandler {
	return &ChartHandler{facade: facade}
}

// Summary handles GET /api/chart/summary.
func (h *ChartHandler) Summary(c *gin.Context) {
	items, err := h.facade.Priorities(c.Request.Context())
	if err != nil {
		respondDataError(c, err)
		return
	}

	resp := make([]dto.PriorityResponse, 0, len(items))
	for _, p := range items {
		resp = append(resp, dto.PriorityResponse{Name: p.Name, Value: p.Value})
	}
	c.JSON(http.StatusOK, resp)
}

// Reports handles GET /api/chart/reports.
func (h *ChartHandler) Reports(c *gin.Context) {
	points, err := h.facade.MarketSeries(c.Request.Context())
	if err != nil {
		respondDataError(c, err)
		return
	}

	resp := make([]dto.MarketSizeResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, dto.MarketSizeResponse{Year: p.Year, Value: p.Value})
	}
	c.JSON(http.StatusOK, resp)
}

func respondDataError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrDatastore) {
		respondError(c, http.StatusInternalServerError, dto.MsgDatabaseError)
		return
	}
	respondError(c, http.StatusInternalServerError, dto.MsgInternalError)
}
