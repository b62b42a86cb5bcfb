package analysis

import (
	"fmt"

	"github.com/seanwujiw/crime-explorer-go/internal/dataset"
	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// GroupDim selects the location dimension records are grouped along
type GroupDim int

const (
	GroupByArea GroupDim = iota // fine-grained LSOA name
	GroupByCommonLocation
)

// GroupDimFromCombine maps the "combine LSOAs" toggle to a grouping dimension
func GroupDimFromCombine(combine bool) GroupDim {
	if combine {
		return GroupByCommonLocation
	}
	return GroupByArea
}

// Key returns the record's value along the dimension. The common location is
// derived from the area name here rather than read from the record, so the
// grouping stays correct even if an earlier stage handed over records whose
// derived field is stale.
func (d GroupDim) Key(r models.CrimeRecord) string {
	if d == GroupByCommonLocation {
		return dataset.NormalizeLocation(r.AreaName)
	}
	return r.AreaName
}

// Label returns the dimension's display name
func (d GroupDim) Label() string {
	if d == GroupByCommonLocation {
		return "Common Location"
	}
	return "LSOA name"
}

// Metric selects the value bars are ranked by
type Metric int

const (
	MetricTotal Metric = iota // raw incident count
	MetricRate                // count normalized by population density
)

// ParseMetric parses the metric query parameter
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "total":
		return MetricTotal, nil
	case "normalised":
		return MetricRate, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

// Label returns the metric's display name
func (m Metric) Label() string {
	if m == MetricRate {
		return "Normalised Crime Rate"
	}
	return "Total Crimes"
}

// Direction selects which end of the ranking is returned
type Direction int

const (
	RankTop Direction = iota // highest values first
	RankBottom
)

// ParseDirection parses the rank query parameter
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "top":
		return RankTop, nil
	case "bottom":
		return RankBottom, nil
	default:
		return 0, fmt.Errorf("unknown rank direction %q", s)
	}
}
