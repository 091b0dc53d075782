package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// CohortStore persists derived vintage cohorts to a SQLite database so
// downstream models can pick them up without re-running the derivation.
type CohortStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists
func Open(path string) (*CohortStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS vintage_cohorts (
		country TEXT NOT NULL,
		technology TEXT NOT NULL,
		fueltype TEXT NOT NULL,
		set_type TEXT NOT NULL,
		year_commissioned INTEGER NOT NULL,
		capacity_mw REAL NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cohort table: %w", err)
	}
	return &CohortStore{db: db}, nil
}

// SaveCohorts appends cohorts in a single transaction
func (s *CohortStore) SaveCohorts(ctx context.Context, cohorts []entities.VintageCohort) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO vintage_cohorts (country, technology, fueltype, set_type, year_commissioned, capacity_mw)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cohorts {
		if _, err := stmt.ExecContext(ctx,
			string(c.Country), string(c.Technology), string(c.Fueltype), string(c.Set),
			c.YearCommissioned, float64(c.Capacity)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert cohort: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadCohorts reads back every stored cohort
func (s *CohortStore) LoadCohorts(ctx context.Context) ([]entities.VintageCohort, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT country, technology, fueltype, set_type, year_commissioned, capacity_mw FROM vintage_cohorts`)
	if err != nil {
		return nil, fmt.Errorf("select cohorts: %w", err)
	}
	defer rows.Close()

	var cohorts []entities.VintageCohort
	for rows.Next() {
		var (
			country, technology, fueltype, set string
			year                               int
			capacity                           float64
		)
		if err := rows.Scan(&country, &technology, &fueltype, &set, &year, &capacity); err != nil {
			return nil, fmt.Errorf("scan cohort: %w", err)
		}
		cohorts = append(cohorts, entities.VintageCohort{
			Country:          entities.Country(country),
			Technology:       entities.Technology(technology),
			Fueltype:         entities.Fueltype(fueltype),
			Set:              entities.Set(set),
			YearCommissioned: year,
			Capacity:         entities.Megawatt(capacity),
		})
	}
	return cohorts, rows.Err()
}

// TotalsByFueltype returns the stored capacity summed per fuel type
func (s *CohortStore) TotalsByFueltype(ctx context.Context) (map[entities.Fueltype]entities.Megawatt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT fueltype, SUM(capacity_mw) FROM vintage_cohorts GROUP BY fueltype`)
	if err != nil {
		return nil, fmt.Errorf("sum cohorts: %w", err)
	}
	defer rows.Close()

	totals := make(map[entities.Fueltype]entities.Megawatt)
	for rows.Next() {
		var (
			fueltype string
			total    float64
		)
		if err := rows.Scan(&fueltype, &total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals[entities.Fueltype(fueltype)] = entities.Megawatt(total)
	}
	return totals, rows.Err()
}

// Close closes the underlying database
func (s *CohortStore) Close() error {
	return s.db.Close()
}
