package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urbanmobility/taxi-backend-go/internal/service"
)

// ZoneHandler handles HTTP requests for zone geometry
type ZoneHandler struct {
	service *service.ZoneService
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(service *service.ZoneService) *ZoneHandler {
	return &ZoneHandler{service: service}
}

// GetZones handles GET /api/zones
func (h *ZoneHandler) GetZones(c *gin.Context) {
	collection, err := h.service.FeatureCollection(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, collection)
}
