package spatial

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// Point represents a 2D point with latitude and longitude
type Point struct {
	Lat float64
	Lon float64
}

// Centroid calculates the geographic centroid of a set of points
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	return Point{
		Lat: sumLat / float64(len(points)),
		Lon: sumLon / float64(len(points)),
	}
}

// CentroidIndex maps each common location to the mean coordinate of the
// incidents reported there. Built once over the full dataset and shared
// read-only afterwards. Locations whose records all lack coordinates have
// no entry; a failed lookup means "no pin", not an error.
type CentroidIndex struct {
	centroids map[string]Point
	bounds    s2.Rect
}

// BuildCentroidIndex computes a centroid for every common location that has
// at least one record with both coordinates present
func BuildCentroidIndex(records []models.CrimeRecord) *CentroidIndex {
	points := make(map[string][]Point)
	bounds := s2.EmptyRect()

	for _, r := range records {
		if math.IsNaN(r.Latitude) || math.IsNaN(r.Longitude) {
			continue
		}
		p := Point{Lat: r.Latitude, Lon: r.Longitude}
		points[r.CommonLocation] = append(points[r.CommonLocation], p)
		bounds = bounds.AddPoint(s2.LatLngFromDegrees(r.Latitude, r.Longitude))
	}

	centroids := make(map[string]Point, len(points))
	for location, ps := range points {
		centroids[location] = Centroid(ps)
	}

	return &CentroidIndex{centroids: centroids, bounds: bounds}
}

// Lookup returns the centroid for a common location, reporting whether the
// location has any mappable records
func (idx *CentroidIndex) Lookup(commonLocation string) (Point, bool) {
	p, ok := idx.centroids[commonLocation]
	return p, ok
}

// Len returns the number of mappable common locations
func (idx *CentroidIndex) Len() int {
	return len(idx.centroids)
}

// Center returns the center of the dataset's bounding rectangle, used as
// the default map viewport
func (idx *CentroidIndex) Center() Point {
	if idx.bounds.IsEmpty() {
		return Point{}
	}
	center := idx.bounds.Center()
	return Point{Lat: center.Lat.Degrees(), Lon: center.Lng.Degrees()}
}

// Nearest returns the common location whose centroid is closest to the
// query point, with the haversine distance in meters. ok is false when the
// index is empty.
func (idx *CentroidIndex) Nearest(lat, lon float64) (location string, p Point, meters float64, ok bool) {
	best := math.Inf(1)
	for loc, c := range idx.centroids {
		d := HaversineDistance(lat, lon, c.Lat, c.Lon)
		// Tie-break on name so iteration order never changes the result
		if d < best || (d == best && loc < location) {
			best = d
			location = loc
			p = c
		}
	}
	if math.IsInf(best, 1) {
		return "", Point{}, 0, false
	}
	return location, p, best, true
}
