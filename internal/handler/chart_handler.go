package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/seanwujiw/crime-explorer-go/internal/models"
	"github.com/seanwujiw/crime-explorer-go/internal/service"
	"github.com/seanwujiw/crime-explorer-go/pkg/response"
)

// ChartHandler handles HTTP requests for the aggregated chart views
type ChartHandler struct {
	chartService *service.ChartService
}

// NewChartHandler creates a new chart handler
func NewChartHandler(chartService *service.ChartService) *ChartHandler {
	return &ChartHandler{
		chartService: chartService,
	}
}

// GetOptions handles GET /api/v1/options
func (h *ChartHandler) GetOptions(c *gin.Context) {
	response.Success(c, h.chartService.Options())
}

// GetBarChart handles GET /api/v1/charts/bar
func (h *ChartHandler) GetBarChart(c *gin.Context) {
	var filter models.BarChartFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid bar chart parameters: "+err.Error())
		return
	}

	view, err := h.chartService.BarChart(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, view)
}

// GetTimeSeries handles GET /api/v1/charts/timeseries
func (h *ChartHandler) GetTimeSeries(c *gin.Context) {
	var filter models.TimeSeriesFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid time series parameters: "+err.Error())
		return
	}

	response.Success(c, h.chartService.TimeSeries(filter))
}
