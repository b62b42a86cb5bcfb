package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seanwujiw/crime-explorer-go/internal/config"
	"github.com/seanwujiw/crime-explorer-go/internal/dataset"
	"github.com/seanwujiw/crime-explorer-go/internal/handler"
	"github.com/seanwujiw/crime-explorer-go/internal/middleware"
	"github.com/seanwujiw/crime-explorer-go/internal/service"
	"github.com/seanwujiw/crime-explorer-go/internal/spatial"
)

// SetupRouter wires the loaded snapshot into the HTTP surface
func SetupRouter(cfg *config.Config, snapshot *dataset.Snapshot, centroids *spatial.CentroidIndex) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	chartService := service.NewChartService(snapshot, centroids)
	chartHandler := handler.NewChartHandler(chartService)
	mapHandler := handler.NewMapHandler(chartService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Crime Explorer API is running",
			"records": len(snapshot.Records),
		})
	})

	api := r.Group("/api/v1")
	if cfg.AuthEnabled {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		api.GET("/options", chartHandler.GetOptions)

		charts := api.Group("/charts")
		{
			charts.GET("/bar", chartHandler.GetBarChart)
			charts.GET("/timeseries", chartHandler.GetTimeSeries)
		}

		maps := api.Group("/map")
		{
			maps.GET("/markers", mapHandler.GetMarkers)
			maps.GET("/nearest", mapHandler.GetNearest)
		}
	}

	return r
}
