package service

import (
	"fmt"

	"github.com/seanwujiw/crime-explorer-go/internal/analysis"
	"github.com/seanwujiw/crime-explorer-go/internal/dataset"
	"github.com/seanwujiw/crime-explorer-go/internal/models"
	"github.com/seanwujiw/crime-explorer-go/internal/spatial"
)

// markerPalette is the fixed pin palette, cycled by position in the
// caller's selection list
var markerPalette = []string{
	"red", "blue", "green", "purple", "orange", "darkred",
	"lightred", "beige", "darkblue", "darkgreen", "cadetblue",
	"darkpurple", "pink", "lightblue", "lightgreen", "gray",
	"black", "lightgray",
}

// ChartService turns the immutable dataset snapshot into the three view
// payloads. Every method is a stateless pass over the snapshot, so a single
// instance is safe to share across concurrent requests.
type ChartService struct {
	snapshot  *dataset.Snapshot
	centroids *spatial.CentroidIndex
}

// NewChartService creates a new chart service
func NewChartService(snapshot *dataset.Snapshot, centroids *spatial.CentroidIndex) *ChartService {
	return &ChartService{
		snapshot:  snapshot,
		centroids: centroids,
	}
}

// Options returns the closed option sets for populating the view controls,
// with the "all" sentinels first
func (s *ChartService) Options() *models.OptionsView {
	return &models.OptionsView{
		Months:          prepend(models.AllMonths, s.snapshot.Months),
		CrimeTypes:      prepend(models.AllCrimeTypes, s.snapshot.CrimeTypes),
		AreaNames:       s.snapshot.AreaNames,
		CommonLocations: s.snapshot.CommonLocations,
	}
}

// BarChart computes the ranked bar view for the given filter. The only
// error case is an unparseable metric or rank flag; unknown filter values
// produce an empty view instead.
func (s *ChartService) BarChart(filter models.BarChartFilter) (*models.BarChartView, error) {
	metric, err := analysis.ParseMetric(filter.Metric)
	if err != nil {
		return nil, err
	}
	direction, err := analysis.ParseDirection(filter.Rank)
	if err != nil {
		return nil, err
	}
	dim := analysis.GroupDimFromCombine(filter.Combine)

	filtered := analysis.Filter(s.snapshot.Records, analysis.Selection{
		Month:      filter.Month,
		CrimeTypes: filter.CrimeTypes,
	})
	grouped := analysis.Aggregate(filtered, dim)
	ranking := analysis.Rank(grouped, metric, direction)

	items := make([]models.BarChartItem, 0, len(ranking.Rows))
	for _, row := range ranking.Rows {
		items = append(items, models.BarChartItem{
			Label: row.GroupKey,
			Value: metricPointer(row, metric),
		})
	}

	return &models.BarChartView{
		Title:       barChartTitle(filter, metric, direction, dim, ranking.ResultCount),
		MetricLabel: metric.Label(),
		GroupLabel:  dim.Label(),
		ResultCount: ranking.ResultCount,
		Items:       items,
	}, nil
}

// TimeSeries computes the time-line view. The location selection is
// repaired against the active dimension's value set first, and the repaired
// selection plus the refreshed option list are part of the payload.
func (s *ChartService) TimeSeries(filter models.TimeSeriesFilter) *models.TimeSeriesView {
	dim := analysis.GroupDimFromCombine(filter.Combine)
	options := s.snapshot.LocationValues(filter.Combine)
	locations := analysis.RepairSelection(filter.Locations, options)

	filtered := analysis.Filter(s.snapshot.Records, analysis.Selection{
		Locations: locations,
		Dim:       dim,
	})
	result := analysis.TimeSeries(filtered, dim, filter.CrimeTypes)

	seriesDimension := "location"
	if result.SeriesDim == analysis.SeriesByCrimeType {
		seriesDimension = "crime_type"
	}

	points := make([]models.TimeSeriesPoint, 0, len(result.Rows))
	for _, row := range result.Rows {
		point := models.TimeSeriesPoint{
			Month: row.Month,
			Count: row.Count,
		}
		if result.SeriesDim == analysis.SeriesByCrimeType {
			point.Series = row.CrimeType
			point.SubGroup = row.Location
		} else {
			point.Series = row.Location
			point.SubGroup = row.CrimeType
		}
		points = append(points, point)
	}

	return &models.TimeSeriesView{
		SeriesDimension: seriesDimension,
		Points:          points,
		Locations:       locations,
		LocationOptions: options,
	}
}

// MapMarkers returns one palette-colored pin per selected common location
// that has a centroid. Locations without coordinate data are skipped, but
// they still consume their palette slot so colors stay stable while a
// selection is edited.
func (s *ChartService) MapMarkers(filter models.MapFilter) *models.MapView {
	markers := make([]models.MapMarker, 0, len(filter.Locations))
	for i, location := range filter.Locations {
		point, ok := s.centroids.Lookup(location)
		if !ok {
			continue
		}
		markers = append(markers, models.MapMarker{
			Location:  location,
			Latitude:  point.Lat,
			Longitude: point.Lon,
			Color:     markerPalette[i%len(markerPalette)],
		})
	}

	center := s.centroids.Center()
	return &models.MapView{
		Markers:         markers,
		CenterLatitude:  center.Lat,
		CenterLongitude: center.Lon,
	}
}

// Nearest returns the common location whose centroid is closest to the
// query point. ok is false when nothing in the dataset is mappable.
func (s *ChartService) Nearest(lat, lon float64) (*models.NearestResult, bool) {
	location, point, meters, ok := s.centroids.Nearest(lat, lon)
	if !ok {
		return nil, false
	}
	return &models.NearestResult{
		Location:       location,
		Latitude:       point.Lat,
		Longitude:      point.Lon,
		DistanceMeters: meters,
	}, true
}

func barChartTitle(filter models.BarChartFilter, metric analysis.Metric, direction analysis.Direction, dim analysis.GroupDim, resultCount int) string {
	groupNoun := "LSOAs"
	if dim == analysis.GroupByCommonLocation {
		groupNoun = "Locations"
	}
	monthLabel := filter.Month
	if monthLabel == "" || monthLabel == models.AllMonths {
		monthLabel = "All Months"
	}
	rankLabel := "Highest"
	if direction == analysis.RankBottom {
		rankLabel = "Lowest"
	}
	return fmt.Sprintf("Top %d %s by %s – %s (%s)",
		resultCount, groupNoun, metric.Label(), monthLabel, rankLabel)
}

func metricPointer(row analysis.AggregatedRow, metric analysis.Metric) *float64 {
	if metric == analysis.MetricRate {
		if !row.RateValid {
			return nil
		}
		rate := row.Rate
		return &rate
	}
	count := float64(row.TotalCount)
	return &count
}

func prepend(sentinel string, values []string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, sentinel)
	out = append(out, values...)
	return out
}
