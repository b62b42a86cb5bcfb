package analysis

import (
	"math"
	"testing"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

func sampleRecords() []models.CrimeRecord {
	return []models.CrimeRecord{
		{ID: "1", Month: "2025-01", CrimeType: "Burglary", AreaName: "Leeds 001A", Density: 10},
		{ID: "2", Month: "2025-01", CrimeType: "Burglary", AreaName: "Leeds 002B", Density: 10},
		{ID: "3", Month: "2025-02", CrimeType: "Theft", AreaName: "Bradford 010C", Density: 5},
		{ID: "4", Month: "2025-02", CrimeType: "Drugs", AreaName: "Leeds 001A", Density: math.NaN()},
	}
}

func ids(records []models.CrimeRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{"no predicates", Selection{}, []string{"1", "2", "3", "4"}},
		{"all sentinels", Selection{Month: models.AllMonths, CrimeTypes: []string{models.AllCrimeTypes}}, []string{"1", "2", "3", "4"}},
		{"by month", Selection{Month: "2025-01"}, []string{"1", "2"}},
		{"by crime type", Selection{CrimeTypes: []string{"Theft"}}, []string{"3"}},
		{"by two crime types", Selection{CrimeTypes: []string{"Theft", "Drugs"}}, []string{"3", "4"}},
		{"empty crime types means all", Selection{CrimeTypes: []string{}}, []string{"1", "2", "3", "4"}},
		{"conjunctive", Selection{Month: "2025-02", CrimeTypes: []string{"Theft", "Burglary"}}, []string{"3"}},
		{"by area", Selection{Locations: []string{"Leeds 001A"}, Dim: GroupByArea}, []string{"1", "4"}},
		{"by common location", Selection{Locations: []string{"Leeds"}, Dim: GroupByCommonLocation}, []string{"1", "2", "4"}},
		{"unknown month", Selection{Month: "1999-01"}, nil},
		{"unknown crime type", Selection{CrimeTypes: []string{"Arson"}}, nil},
		{"unknown location", Selection{Locations: []string{"Atlantis"}, Dim: GroupByCommonLocation}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sampleRecords(), tt.sel))
			if !equalStrings(got, tt.want) {
				t.Errorf("Filter() kept %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	records := sampleRecords()
	Filter(records, Selection{Month: "2025-01"})
	if !equalStrings(ids(records), []string{"1", "2", "3", "4"}) {
		t.Error("Filter mutated the source records")
	}
}
