package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// Loader handles loading capacity datasets from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadStatistics loads yearly capacity statistics from a CSV file
func (l *Loader) LoadStatistics(filename string) ([]entities.YearlyStatistic, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("statistics CSV: %w", err)
	}

	expectedHeader := []string{"country", "technology", "fueltype", "set", "year", "capacity_mw"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("statistics CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var stats []entities.YearlyStatistic
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("statistics CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		year, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("statistics CSV row %d: invalid year %q", i+2, record[4])
		}
		capacity, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return nil, fmt.Errorf("statistics CSV row %d: invalid capacity %q", i+2, record[5])
		}

		stats = append(stats, entities.YearlyStatistic{
			Country:    entities.Country(record[0]),
			Technology: entities.Technology(record[1]),
			Fueltype:   entities.Fueltype(record[2]),
			Set:        entities.Set(record[3]),
			Year:       year,
			Capacity:   entities.Megawatt(capacity),
		})
	}
	return stats, nil
}

// LoadPlants loads matched power plant records from a CSV file. The
// project_id column holds source=id pairs separated by semicolons
// (e.g. "OPSD=BNA001;GEO=4622").
func (l *Loader) LoadPlants(filename string) ([]entities.PlantRecord, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("plants CSV: %w", err)
	}

	expectedHeader := []string{"project_id", "name", "country", "fueltype", "technology", "set", "capacity_mw", "year_commissioned"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("plants CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var plants []entities.PlantRecord
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("plants CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		projectIDs, err := parseProjectIDs(record[0])
		if err != nil {
			return nil, fmt.Errorf("plants CSV row %d: %w", i+2, err)
		}
		capacity, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("plants CSV row %d: invalid capacity %q", i+2, record[6])
		}

		year := 0
		if record[7] != "" {
			year, err = strconv.Atoi(record[7])
			if err != nil {
				return nil, fmt.Errorf("plants CSV row %d: invalid commissioning year %q", i+2, record[7])
			}
		}

		plants = append(plants, entities.PlantRecord{
			ProjectIDs:       projectIDs,
			Name:             record[1],
			Country:          entities.Country(record[2]),
			Fueltype:         entities.Fueltype(record[3]),
			Technology:       entities.Technology(record[4]),
			Set:              entities.Set(record[5]),
			Capacity:         entities.Megawatt(capacity),
			YearCommissioned: year,
		})
	}
	return plants, nil
}

// LoadLifetimes loads a fuel type to service life mapping from a CSV file
func (l *Loader) LoadLifetimes(filename string) (entities.LifetimeTable, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("lifetimes CSV: %w", err)
	}

	expectedHeader := []string{"fueltype", "life_years"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("lifetimes CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	table := make(entities.LifetimeTable)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("lifetimes CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		life, err := strconv.Atoi(record[1])
		if err != nil || life <= 0 {
			return nil, fmt.Errorf("lifetimes CSV row %d: invalid service life %q", i+2, record[1])
		}
		table[entities.Fueltype(record[0])] = life
	}
	return table, nil
}

// readAll opens a CSV file and returns its records, requiring a header and
// at least one data row
func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have a header and at least one data row", filename)
	}
	return records, nil
}

// parseProjectIDs splits a "source=id;source=id" cell into a map
func parseProjectIDs(cell string) (map[string]string, error) {
	ids := make(map[string]string)
	if strings.TrimSpace(cell) == "" {
		return ids, nil
	}
	for _, pair := range strings.Split(cell, ";") {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid project_id entry %q (expected source=id)", pair)
		}
		ids[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return ids, nil
}

// validateHeader checks if the actual header matches the expected header,
// ignoring case and surrounding whitespace
func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range actual {
		if !strings.EqualFold(strings.TrimSpace(col), expected[i]) {
			return false
		}
	}
	return true
}
