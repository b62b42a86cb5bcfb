package models

// BarChartFilter represents query parameters for the ranked bar chart view
type BarChartFilter struct {
	Month      string   `form:"month"`     // YYYY-MM or "all"
	CrimeTypes []string `form:"crimeType"` // empty or containing "All Crimes" means all
	Combine    bool     `form:"combine"`   // group by common location instead of LSOA
	Metric     string   `form:"metric"`    // total, normalised
	Rank       string   `form:"rank"`      // top, bottom
}

// TimeSeriesFilter represents query parameters for the time series view
type TimeSeriesFilter struct {
	Combine    bool     `form:"combine"`
	Locations  []string `form:"location"`  // values from the active location dimension
	CrimeTypes []string `form:"crimeType"` // empty or containing "All Crimes" means all
}

// MapFilter represents query parameters for the marker map view
type MapFilter struct {
	Locations []string `form:"location"` // common location names, in display order
}

// NearestFilter represents query parameters for the nearest-centroid lookup
type NearestFilter struct {
	Latitude  float64 `form:"lat" binding:"required"`
	Longitude float64 `form:"lon" binding:"required"`
}
