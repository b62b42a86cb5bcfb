package analysis

import (
	"math"
	"sort"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
	"github.com/seanwujiw/crime-explorer-go/internal/stats"
)

// AggregatedRow is one group of the bar-chart aggregation. MeanDensity is
// NaN when no record in the group carries a density. Rate is only meaningful
// when RateValid is set; a group with unknown or zero density has no rate,
// never a zero or infinite one.
type AggregatedRow struct {
	GroupKey    string
	TotalCount  int
	MeanDensity float64
	Rate        float64
	RateValid   bool
}

// Aggregate groups the filtered records along the chosen dimension and
// computes the per-group count, mean population density and normalized rate
// (incidents per 1,000 people per km^2). Rows come back in key order; the
// ranking stage imposes the order that matters.
func Aggregate(records []models.CrimeRecord, dim GroupDim) []AggregatedRow {
	type group struct {
		count     int
		densities []float64
	}

	groups := make(map[string]*group)
	for _, r := range records {
		key := dim.Key(r)
		g := groups[key]
		if g == nil {
			g = &group{}
			groups[key] = g
		}
		g.count++
		g.densities = append(g.densities, r.Density)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([]AggregatedRow, 0, len(groups))
	for _, key := range keys {
		g := groups[key]
		meanDensity := stats.NaNMean(g.densities)

		rate := math.NaN()
		rateValid := !math.IsNaN(meanDensity) && meanDensity != 0
		if rateValid {
			rate = float64(g.count) / meanDensity * 1000
		}

		rows = append(rows, AggregatedRow{
			GroupKey:    key,
			TotalCount:  g.count,
			MeanDensity: meanDensity,
			Rate:        rate,
			RateValid:   rateValid,
		})
	}
	return rows
}
