package analysis

import (
	"sort"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// SeriesDim identifies which dimension becomes the chart's color/series
// axis; the other becomes the sub-group axis
type SeriesDim int

const (
	SeriesByLocation SeriesDim = iota
	SeriesByCrimeType
)

// TimeSeriesRow is one (month, location, crime type) observation
type TimeSeriesRow struct {
	Month     string
	Location  string
	CrimeType string
	Count     int
}

// TimeSeriesResult carries the grouped rows and the series-dimension choice
type TimeSeriesResult struct {
	Rows      []TimeSeriesRow
	SeriesDim SeriesDim
}

// TimeSeries groups a filtered record set by month and the chosen location
// dimension. With an "all" crime-type selection every row is tagged with the
// "All Crimes" label so the output schema is the same on both branches;
// otherwise records are narrowed to the selected types first and crime type
// joins the grouping key.
//
// When more than one distinct crime type remains selected, crime type
// becomes the series axis and location the sub-group, so a single-location,
// multi-type query separates by type; otherwise location is the series axis,
// so a single-type, multi-location query separates by location.
func TimeSeries(records []models.CrimeRecord, dim GroupDim, crimeTypes []string) TimeSeriesResult {
	type key struct {
		month     string
		location  string
		crimeType string
	}

	counts := make(map[key]int)
	if AllCrimeTypesSelected(crimeTypes) {
		for _, r := range records {
			counts[key{r.Month, dim.Key(r), models.AllCrimeTypes}]++
		}
	} else {
		selected := stringSet(crimeTypes)
		for _, r := range records {
			if _, ok := selected[r.CrimeType]; !ok {
				continue
			}
			counts[key{r.Month, dim.Key(r), r.CrimeType}]++
		}
	}

	rows := make([]TimeSeriesRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, TimeSeriesRow{
			Month:     k.month,
			Location:  k.location,
			CrimeType: k.crimeType,
			Count:     n,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month < rows[j].Month
		}
		if rows[i].Location != rows[j].Location {
			return rows[i].Location < rows[j].Location
		}
		return rows[i].CrimeType < rows[j].CrimeType
	})

	seriesDim := SeriesByLocation
	if !AllCrimeTypesSelected(crimeTypes) && distinctCount(crimeTypes) > 1 {
		seriesDim = SeriesByCrimeType
	}

	return TimeSeriesResult{Rows: rows, SeriesDim: seriesDim}
}

// RepairSelection keeps a location selection valid for the active grouping
// dimension. Switching between fine-grained and common-location grouping
// changes the value set, so an empty selection or one containing any value
// no longer in the set is replaced with the first value of the set.
func RepairSelection(selected, values []string) []string {
	if len(values) == 0 {
		return nil
	}

	valid := stringSet(values)
	ok := len(selected) > 0
	for _, loc := range selected {
		if _, present := valid[loc]; !present {
			ok = false
			break
		}
	}
	if ok {
		return selected
	}
	return []string{values[0]}
}

func distinctCount(values []string) int {
	return len(stringSet(values))
}
