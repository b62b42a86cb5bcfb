package dataset

import (
	"database/sql"
	"fmt"
	"math"
	"strings"

	"github.com/seanwujiw/crime-explorer-go/internal/database"
	"github.com/seanwujiw/crime-explorer-go/internal/models"
)

// crimeTable is the table the merged dataset is expected to live in when
// the dataset is shipped as a SQLite file instead of CSV
const crimeTable = "crime_data"

func loadSQLite(path string) ([]models.CrimeRecord, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := checkTableColumns(db); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT "Crime ID", "Month", "Crime type", "LSOA name",
		       "Latitude", "Longitude", "Population Density (people per km^2)"
		FROM %s
	`, crimeTable)

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset: %w", err)
	}
	defer rows.Close()

	var records []models.CrimeRecord
	for rows.Next() {
		var (
			id        sql.NullString
			month     string
			crimeType string
			areaName  string
			lat       sql.NullFloat64
			lon       sql.NullFloat64
			density   sql.NullFloat64
		)
		if err := rows.Scan(&id, &month, &crimeType, &areaName, &lat, &lon, &density); err != nil {
			return nil, fmt.Errorf("failed to scan dataset row: %w", err)
		}

		records = append(records, models.CrimeRecord{
			ID:        id.String,
			Month:     month,
			CrimeType: crimeType,
			AreaName:  areaName,
			Latitude:  nullableFloat(lat),
			Longitude: nullableFloat(lon),
			Density:   nullableFloat(density),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset rows: %w", err)
	}

	return records, nil
}

// checkTableColumns enforces the same required-column contract as the CSV
// header check
func checkTableColumns(db *sql.DB) error {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", crimeTable))
	if err != nil {
		return fmt.Errorf("failed to inspect dataset schema: %w", err)
	}
	defer rows.Close()

	present := make(map[string]struct{})
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to read dataset schema: %w", err)
		}
		present[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read dataset schema: %w", err)
	}

	if len(present) == 0 {
		return fmt.Errorf("dataset table %q does not exist", crimeTable)
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}

	return nil
}

func nullableFloat(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
