package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port        string
	DataPath    string // path to the merged dataset (.csv, .db or .sqlite)
	JWTSecret   string
	AuthEnabled bool
}

// Load reads configuration from the environment, falling back to defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "./data/crime_data_merged.csv"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:        port,
		DataPath:    dataPath,
		JWTSecret:   jwtSecret,
		AuthEnabled: os.Getenv("AUTH_ENABLED") == "true",
	}
}
