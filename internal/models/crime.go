package models

// CrimeRecord represents one reported incident joined with area metadata.
// Records are loaded once at startup and never mutated afterwards.
type CrimeRecord struct {
	ID             string  `json:"id"`
	Month          string  `json:"month"`      // YYYY-MM, string-sortable
	CrimeType      string  `json:"crime_type"` // drawn from the dataset's closed set
	AreaName       string  `json:"area_name"`  // fine-grained LSOA name, e.g. "Leeds 001A"
	CommonLocation string  `json:"common_location"`
	Latitude       float64 `json:"latitude"`  // NaN when the source cell is blank
	Longitude      float64 `json:"longitude"` // NaN when the source cell is blank
	Density        float64 `json:"density"`   // people per km^2, NaN when blank
}

// Sentinel values accepted by the filter parameters
const (
	AllMonths     = "all"
	AllCrimeTypes = "All Crimes"
)
