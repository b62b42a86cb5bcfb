package analysis

import (
	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// Selection describes one request's filter choices. Zero values mean "no
// predicate": an empty or "all" month keeps every month, an empty crime-type
// list (or one containing the "All Crimes" sentinel) keeps every crime type,
// and an empty location list keeps every location.
type Selection struct {
	Month      string
	CrimeTypes []string
	Locations  []string
	Dim        GroupDim // dimension the location predicate applies to
}

// AllCrimeTypesSelected reports whether a crime-type selection means "all".
// An empty selection is deliberately treated the same as the sentinel so a
// cleared multi-select keeps working instead of producing an empty view.
func AllCrimeTypesSelected(crimeTypes []string) bool {
	if len(crimeTypes) == 0 {
		return true
	}
	for _, ct := range crimeTypes {
		if ct == models.AllCrimeTypes {
			return true
		}
	}
	return false
}

// Filter applies the selection's predicates conjunctively and returns a new
// slice. The source records are never mutated; unknown filter values simply
// match nothing.
func Filter(records []models.CrimeRecord, sel Selection) []models.CrimeRecord {
	byMonth := sel.Month != "" && sel.Month != models.AllMonths
	byCrimeType := !AllCrimeTypesSelected(sel.CrimeTypes)
	byLocation := len(sel.Locations) > 0

	crimeTypes := stringSet(sel.CrimeTypes)
	locations := stringSet(sel.Locations)

	var filtered []models.CrimeRecord
	for _, r := range records {
		if byMonth && r.Month != sel.Month {
			continue
		}
		if byCrimeType {
			if _, ok := crimeTypes[r.CrimeType]; !ok {
				continue
			}
		}
		if byLocation {
			if _, ok := locations[sel.Dim.Key(r)]; !ok {
				continue
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
