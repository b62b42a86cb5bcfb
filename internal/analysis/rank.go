package analysis

import (
	"sort"
)

// RankLimit is the maximum number of rows a ranking returns
const RankLimit = 10

// Ranking is the ordered head of an aggregation. ResultCount reports how
// many rows were actually achieved, which may be fewer than RankLimit.
type Ranking struct {
	Rows        []AggregatedRow
	ResultCount int
}

// Rank orders the aggregated rows by the chosen metric, descending for
// RankTop and ascending for RankBottom, and keeps at most RankLimit of
// them. When ranking by rate, rows without a valid rate sort strictly after
// every row with one, in both directions, so undefined values never crowd
// out defined ones. The input slice is left untouched.
func Rank(rows []AggregatedRow, metric Metric, dir Direction) Ranking {
	sorted := make([]AggregatedRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, oki := metricValue(sorted[i], metric)
		vj, okj := metricValue(sorted[j], metric)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if dir == RankBottom {
			return vi < vj
		}
		return vi > vj
	})

	if len(sorted) > RankLimit {
		sorted = sorted[:RankLimit]
	}
	return Ranking{Rows: sorted, ResultCount: len(sorted)}
}

// metricValue extracts the ranked value, reporting whether it is defined
func metricValue(row AggregatedRow, metric Metric) (float64, bool) {
	if metric == MetricRate {
		return row.Rate, row.RateValid
	}
	return float64(row.TotalCount), true
}
