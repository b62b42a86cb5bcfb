package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seanwujiw/crime-explorer-go/internal/models"
	"github.com/seanwujiw/crime-explorer-go/internal/service"
	"github.com/seanwujiw/crime-explorer-go/pkg/response"
)

// MapHandler handles HTTP requests for the marker map view
type MapHandler struct {
	chartService *service.ChartService
}

// NewMapHandler creates a new map handler
func NewMapHandler(chartService *service.ChartService) *MapHandler {
	return &MapHandler{
		chartService: chartService,
	}
}

// GetMarkers handles GET /api/v1/map/markers
func (h *MapHandler) GetMarkers(c *gin.Context) {
	var filter models.MapFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid map parameters: "+err.Error())
		return
	}

	response.Success(c, h.chartService.MapMarkers(filter))
}

// GetNearest handles GET /api/v1/map/nearest
func (h *MapHandler) GetNearest(c *gin.Context) {
	var filter models.NearestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid nearest parameters: "+err.Error())
		return
	}

	result, ok := h.chartService.Nearest(filter.Latitude, filter.Longitude)
	if !ok {
		response.NotFound(c, "No mappable locations in dataset")
		return
	}

	response.Success(c, result)
}
