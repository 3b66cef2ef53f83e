package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/internal/service"
	"github.com/urbanmobility/taxi-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for the trip listing
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTrips handles GET /api/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	filter, perr := parseTripFilter(c)
	if perr != nil {
		response.ValidationError(c, perr.Field, perr.Reason)
		return
	}

	page, perr := parsePage(c)
	if perr != nil {
		response.ValidationError(c, perr.Field, perr.Reason)
		return
	}

	result, err := h.service.ListPage(c.Request.Context(), filter, page)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
