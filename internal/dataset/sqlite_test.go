package dataset

import (
	"database/sql"
	"math"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// writeTempDB builds a crime_data fixture with the given column set and rows.
// Numeric cells are passed through as-is, so a nil inserts a NULL.
func writeTempDB(t *testing.T, columns []string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crime.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open fixture database: %v", err)
	}
	defer db.Close()

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = `"` + c + `"`
		placeholders[i] = "?"
	}

	createStmt := "CREATE TABLE crime_data (" + strings.Join(quoted, ", ") + ")"
	if _, err := db.Exec(createStmt); err != nil {
		t.Fatalf("failed to create fixture table: %v", err)
	}

	insertStmt := "INSERT INTO crime_data (" + strings.Join(quoted, ", ") +
		") VALUES (" + strings.Join(placeholders, ", ") + ")"
	for _, row := range rows {
		if _, err := db.Exec(insertStmt, row...); err != nil {
			t.Fatalf("failed to insert fixture row: %v", err)
		}
	}

	return path
}

func fixtureColumns() []string {
	return []string{
		ColCrimeID, ColMonth, ColCrimeType, ColAreaName,
		ColLatitude, ColLongitude, ColDensity,
	}
}

// recordsEqual compares records treating NaN as equal to NaN, which
// reflect.DeepEqual does not
func recordsEqual(a, b models.CrimeRecord) bool {
	floatEqual := func(x, y float64) bool {
		if math.IsNaN(x) || math.IsNaN(y) {
			return math.IsNaN(x) && math.IsNaN(y)
		}
		return x == y
	}
	return a.ID == b.ID &&
		a.Month == b.Month &&
		a.CrimeType == b.CrimeType &&
		a.AreaName == b.AreaName &&
		a.CommonLocation == b.CommonLocation &&
		floatEqual(a.Latitude, b.Latitude) &&
		floatEqual(a.Longitude, b.Longitude) &&
		floatEqual(a.Density, b.Density)
}

// The SQLite source must yield exactly the snapshot the CSV source yields
// for the same data, NULLs mapping to NaN the way blank cells do
func TestLoadSQLiteMatchesCSV(t *testing.T) {
	dbPath := writeTempDB(t, fixtureColumns(), [][]interface{}{
		{"id1", "2025-01", "Burglary", "Leeds 001A", 53.8, -1.5, 10.0},
		{"id2", "2025-01", "Burglary", "Leeds 002B", 53.9, -1.6, nil},
		{"id3", "2025-02", "Theft", "Bradford 010C", nil, nil, 5.0},
	})

	fromDB, err := Load(dbPath)
	if err != nil {
		t.Fatalf("Load(db) returned error: %v", err)
	}
	fromCSV, err := Load(writeTempCSV(t, validCSV))
	if err != nil {
		t.Fatalf("Load(csv) returned error: %v", err)
	}

	if !reflect.DeepEqual(fromDB.Months, fromCSV.Months) {
		t.Errorf("Months = %v, want %v", fromDB.Months, fromCSV.Months)
	}
	if !reflect.DeepEqual(fromDB.CrimeTypes, fromCSV.CrimeTypes) {
		t.Errorf("CrimeTypes = %v, want %v", fromDB.CrimeTypes, fromCSV.CrimeTypes)
	}
	if !reflect.DeepEqual(fromDB.AreaNames, fromCSV.AreaNames) {
		t.Errorf("AreaNames = %v, want %v", fromDB.AreaNames, fromCSV.AreaNames)
	}
	if !reflect.DeepEqual(fromDB.CommonLocations, fromCSV.CommonLocations) {
		t.Errorf("CommonLocations = %v, want %v", fromDB.CommonLocations, fromCSV.CommonLocations)
	}

	if len(fromDB.Records) != len(fromCSV.Records) {
		t.Fatalf("got %d records from db, %d from csv", len(fromDB.Records), len(fromCSV.Records))
	}
	byID := func(records []models.CrimeRecord) func(i, j int) bool {
		return func(i, j int) bool { return records[i].ID < records[j].ID }
	}
	sort.Slice(fromDB.Records, byID(fromDB.Records))
	sort.Slice(fromCSV.Records, byID(fromCSV.Records))
	for i := range fromDB.Records {
		if !recordsEqual(fromDB.Records[i], fromCSV.Records[i]) {
			t.Errorf("record %d differs: db=%+v csv=%+v", i, fromDB.Records[i], fromCSV.Records[i])
		}
	}
}

func TestLoadSQLiteMissingColumn(t *testing.T) {
	columns := []string{ColCrimeID, ColMonth, ColCrimeType, ColLatitude, ColLongitude, ColDensity}
	dbPath := writeTempDB(t, columns, [][]interface{}{
		{"id1", "2025-01", "Burglary", 53.8, -1.5, 10.0},
	})

	_, err := Load(dbPath)
	if err == nil {
		t.Fatal("Load should fail when required columns are missing")
	}
	if !strings.Contains(err.Error(), ColAreaName) {
		t.Errorf("error should name the missing column, got: %v", err)
	}
}

func TestLoadSQLiteMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open fixture database: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE other (x INTEGER)"); err != nil {
		t.Fatalf("failed to create fixture table: %v", err)
	}
	db.Close()

	_, err = Load(path)
	if err == nil {
		t.Fatal("Load should fail when the crime_data table is absent")
	}
	if !strings.Contains(err.Error(), crimeTable) {
		t.Errorf("error should name the missing table, got: %v", err)
	}
}
