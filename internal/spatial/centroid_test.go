package spatial

import (
	"math"
	"testing"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

func indexRecords() []models.CrimeRecord {
	return []models.CrimeRecord{
		{ID: "1", CommonLocation: "Leeds", Latitude: 53.0, Longitude: -1.0},
		{ID: "2", CommonLocation: "Leeds", Latitude: 54.0, Longitude: -2.0},
		{ID: "3", CommonLocation: "Bradford", Latitude: 53.8, Longitude: -1.75},
		{ID: "4", CommonLocation: "Bradford", Latitude: math.NaN(), Longitude: -1.75},
		{ID: "5", CommonLocation: "Nowhere", Latitude: math.NaN(), Longitude: math.NaN()},
	}
}

func TestBuildCentroidIndex(t *testing.T) {
	idx := BuildCentroidIndex(indexRecords())

	if idx.Len() != 2 {
		t.Fatalf("index covers %d locations, want 2", idx.Len())
	}

	p, ok := idx.Lookup("Leeds")
	if !ok {
		t.Fatal("Leeds should be in the index")
	}
	if math.Abs(p.Lat-53.5) > 1e-9 || math.Abs(p.Lon-(-1.5)) > 1e-9 {
		t.Errorf("Leeds centroid = %+v, want (53.5, -1.5)", p)
	}

	// Records with a missing coordinate are ignored, not averaged as zero
	p, ok = idx.Lookup("Bradford")
	if !ok {
		t.Fatal("Bradford should be in the index")
	}
	if math.Abs(p.Lat-53.8) > 1e-9 || math.Abs(p.Lon-(-1.75)) > 1e-9 {
		t.Errorf("Bradford centroid = %+v, want (53.8, -1.75)", p)
	}

	if _, ok := idx.Lookup("Nowhere"); ok {
		t.Error("a location with no coordinates must have no entry")
	}
	if _, ok := idx.Lookup("Unknown"); ok {
		t.Error("an unknown location must have no entry")
	}
}

func TestCentroidIndexCenter(t *testing.T) {
	idx := BuildCentroidIndex(indexRecords())
	center := idx.Center()
	if math.Abs(center.Lat-53.5) > 1e-9 {
		t.Errorf("center latitude = %v, want 53.5", center.Lat)
	}
	if math.Abs(center.Lon-(-1.5)) > 1e-9 {
		t.Errorf("center longitude = %v, want -1.5", center.Lon)
	}

	empty := BuildCentroidIndex(nil)
	if c := empty.Center(); c.Lat != 0 || c.Lon != 0 {
		t.Errorf("empty index center = %+v, want origin", c)
	}
}

func TestCentroidIndexNearest(t *testing.T) {
	idx := BuildCentroidIndex(indexRecords())

	location, p, meters, ok := idx.Nearest(53.81, -1.74)
	if !ok {
		t.Fatal("Nearest should succeed on a populated index")
	}
	if location != "Bradford" {
		t.Errorf("nearest location = %q, want %q", location, "Bradford")
	}
	if math.Abs(p.Lat-53.8) > 1e-9 {
		t.Errorf("nearest point = %+v, want the Bradford centroid", p)
	}
	if meters <= 0 || meters > 5000 {
		t.Errorf("distance = %v meters, want a small positive value", meters)
	}

	if _, _, _, ok := BuildCentroidIndex(nil).Nearest(53, -1); ok {
		t.Error("Nearest on an empty index must report not found")
	}
}

func TestHaversineDistance(t *testing.T) {
	// London to Leeds, roughly 272 km
	d := HaversineDistance(51.5074, -0.1278, 53.8008, -1.5491)
	if d < 260000 || d > 285000 {
		t.Errorf("London-Leeds distance = %v meters, want about 272 km", d)
	}

	if d := HaversineDistance(53.5, -1.5, 53.5, -1.5); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}
