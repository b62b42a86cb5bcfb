package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// Column names required in the source dataset. Loading fails if any is
// missing; extra columns are ignored.
const (
	ColCrimeID   = "Crime ID"
	ColMonth     = "Month"
	ColCrimeType = "Crime type"
	ColAreaName  = "LSOA name"
	ColLatitude  = "Latitude"
	ColLongitude = "Longitude"
	ColDensity   = "Population Density (people per km^2)"
)

var requiredColumns = []string{
	ColCrimeID, ColMonth, ColCrimeType, ColAreaName,
	ColLatitude, ColLongitude, ColDensity,
}

// Load reads the merged dataset from path and builds the startup snapshot.
// Paths ending in .db or .sqlite are read as a SQLite database, anything
// else as CSV. Schema errors are fatal to the caller: the process must not
// serve requests over a partial dataset.
func Load(path string) (*Snapshot, error) {
	var (
		records []models.CrimeRecord
		err     error
	)

	if strings.HasSuffix(path, ".db") || strings.HasSuffix(path, ".sqlite") {
		records, err = loadSQLite(path)
	} else {
		records, err = loadCSV(path)
	}
	if err != nil {
		return nil, err
	}

	snapshot, err := BuildSnapshot(records)
	if err != nil {
		return nil, err
	}

	log.Printf("[Dataset] Loaded %d records: %d months, %d crime types, %d areas, %d common locations",
		len(snapshot.Records), len(snapshot.Months), len(snapshot.CrimeTypes),
		len(snapshot.AreaNames), len(snapshot.CommonLocations))

	return snapshot, nil
}

func loadCSV(path string) ([]models.CrimeRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.CrimeRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}
		line++

		record, err := parseRow(row, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// columnIndex maps each required column name to its position in the header
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRow(row []string, cols map[string]int) (models.CrimeRecord, error) {
	lat, err := parseOptionalFloat(row[cols[ColLatitude]])
	if err != nil {
		return models.CrimeRecord{}, fmt.Errorf("invalid latitude %q: %w", row[cols[ColLatitude]], err)
	}
	lon, err := parseOptionalFloat(row[cols[ColLongitude]])
	if err != nil {
		return models.CrimeRecord{}, fmt.Errorf("invalid longitude %q: %w", row[cols[ColLongitude]], err)
	}
	density, err := parseOptionalFloat(row[cols[ColDensity]])
	if err != nil {
		return models.CrimeRecord{}, fmt.Errorf("invalid density %q: %w", row[cols[ColDensity]], err)
	}

	return models.CrimeRecord{
		ID:        row[cols[ColCrimeID]],
		Month:     row[cols[ColMonth]],
		CrimeType: row[cols[ColCrimeType]],
		AreaName:  row[cols[ColAreaName]],
		Latitude:  lat,
		Longitude: lon,
		Density:   density,
	}, nil
}

// parseOptionalFloat parses a numeric cell, mapping blank to NaN. A blank
// cell is a legitimate missing value; a malformed one is a load error.
func parseOptionalFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
