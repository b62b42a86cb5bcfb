package main

import (
	"log"

	"github.com/seanwujiw/crime-explorer-go/internal/api"
	"github.com/seanwujiw/crime-explorer-go/internal/config"
	"github.com/seanwujiw/crime-explorer-go/internal/dataset"
	"github.com/seanwujiw/crime-explorer-go/internal/spatial"
)

func main() {
	cfg := config.Load()

	// The dataset is loaded exactly once; a schema error here is fatal and
	// the server never starts serving over a partial dataset.
	snapshot, err := dataset.Load(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}

	centroids := spatial.BuildCentroidIndex(snapshot.Records)
	log.Printf("[Server] Centroid index covers %d of %d common locations",
		centroids.Len(), len(snapshot.CommonLocations))

	router := api.SetupRouter(cfg, snapshot, centroids)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
