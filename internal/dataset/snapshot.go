package dataset

import (
	"fmt"
	"sort"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// Snapshot is the immutable startup view of the dataset: the records plus
// the closed, sorted value sets every request draws its options from. It is
// built once and shared read-only across all requests.
type Snapshot struct {
	Records         []models.CrimeRecord
	Months          []string
	CrimeTypes      []string
	AreaNames       []string
	CommonLocations []string
}

// BuildSnapshot derives the common location for every record and collects
// the distinct value sets. It fails if the dataset violates the many-to-one
// area-to-location relationship.
func BuildSnapshot(records []models.CrimeRecord) (*Snapshot, error) {
	months := make(map[string]struct{})
	crimeTypes := make(map[string]struct{})
	areas := make(map[string]struct{})
	commons := make(map[string]struct{})

	for i := range records {
		records[i].CommonLocation = NormalizeLocation(records[i].AreaName)

		months[records[i].Month] = struct{}{}
		crimeTypes[records[i].CrimeType] = struct{}{}
		areas[records[i].AreaName] = struct{}{}
		commons[records[i].CommonLocation] = struct{}{}
	}

	// Normalization is many-to-one, so this can only fail if the derivation
	// itself is broken. Checked rather than assumed.
	if len(commons) > len(areas) {
		return nil, fmt.Errorf("dataset invariant violated: %d common locations exceed %d area names",
			len(commons), len(areas))
	}

	return &Snapshot{
		Records:         records,
		Months:          sortedKeys(months),
		CrimeTypes:      sortedKeys(crimeTypes),
		AreaNames:       sortedKeys(areas),
		CommonLocations: sortedKeys(commons),
	}, nil
}

// LocationValues returns the value set of the requested grouping dimension
func (s *Snapshot) LocationValues(combine bool) []string {
	if combine {
		return s.CommonLocations
	}
	return s.AreaNames
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
