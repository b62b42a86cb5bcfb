package models

// BarChartItem is one ranked bar. Value is nil when the ranked metric is a
// crime rate that could not be computed for the group (no or zero density).
type BarChartItem struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
}

// BarChartView is the payload for the ranked bar chart
type BarChartView struct {
	Title       string         `json:"title"`
	MetricLabel string         `json:"metric_label"`
	GroupLabel  string         `json:"group_label"` // "LSOA name" or "Common Location"
	ResultCount int            `json:"result_count"`
	Items       []BarChartItem `json:"items"`
}

// TimeSeriesPoint is one (month, series, sub-group) observation
type TimeSeriesPoint struct {
	Month    string `json:"month"`
	Series   string `json:"series"`
	SubGroup string `json:"sub_group"`
	Count    int    `json:"count"`
}

// TimeSeriesView is the payload for the time series view. Locations echoes
// the caller's selection after repair; LocationOptions is the refreshed
// option list for the active grouping dimension.
type TimeSeriesView struct {
	SeriesDimension string            `json:"series_dimension"` // "crime_type" or "location"
	Points          []TimeSeriesPoint `json:"points"`
	Locations       []string          `json:"locations"`
	LocationOptions []string          `json:"location_options"`
}

// MapMarker is one map pin, colored by position in the selection
type MapMarker struct {
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Color     string  `json:"color"`
}

// MapView is the payload for the marker map view
type MapView struct {
	Markers         []MapMarker `json:"markers"`
	CenterLatitude  float64     `json:"center_latitude"`
	CenterLongitude float64     `json:"center_longitude"`
}

// OptionsView lists the closed value sets for populating controls
type OptionsView struct {
	Months          []string `json:"months"`     // "all" first
	CrimeTypes      []string `json:"crime_types"` // "All Crimes" first
	AreaNames       []string `json:"area_names"`
	CommonLocations []string `json:"common_locations"`
}

// NearestResult is the closest common-location centroid to a query point
type NearestResult struct {
	Location       string  `json:"location"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
}
