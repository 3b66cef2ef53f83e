package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/internal/models"
	"github.com/urbanmobility/taxi-backend-go/internal/service"
	"github.com/urbanmobility/taxi-backend-go/pkg/response"
)

// StatsHandler handles HTTP requests for trip aggregates
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/stats. The best-pickup key follows the request
// granularity: best_borough by default, best_zone for granularity=zone.
func (h *StatsHandler) GetStats(c *gin.Context) {
	filter, perr := parseTripFilter(c)
	if perr != nil {
		response.ValidationError(c, perr.Field, perr.Reason)
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), filter)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	body := gin.H{
		"total_trips":  stats.TotalTrips,
		"avg_fare":     stats.AvgFare,
		"avg_distance": stats.AvgDistance,
		"avg_tip_pct":  stats.AvgTipPct,
		"peak_hour":    stats.PeakHour,
	}
	if filter.Granularity == models.GranularityZone {
		body["best_zone"] = stats.BestLabel
	} else {
		body["best_borough"] = stats.BestLabel
	}

	c.JSON(http.StatusOK, body)
}
