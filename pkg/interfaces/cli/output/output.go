package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// Format selects how cohorts are rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// WriteCohorts renders cohorts to w in the requested format. Rows are sorted
// by country, fuel type and commissioning year for stable output.
func WriteCohorts(w io.Writer, cohorts []entities.VintageCohort, format Format) error {
	sorted := make([]entities.VintageCohort, len(cohorts))
	copy(sorted, cohorts)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.Fueltype != b.Fueltype {
			return a.Fueltype < b.Fueltype
		}
		if a.Technology != b.Technology {
			return a.Technology < b.Technology
		}
		return a.YearCommissioned < b.YearCommissioned
	})

	switch format {
	case FormatText:
		return writeText(w, sorted)
	case FormatJSON:
		return writeJSON(w, sorted)
	case FormatCSV:
		return writeCSV(w, sorted)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func writeText(w io.Writer, cohorts []entities.VintageCohort) error {
	var total entities.Megawatt
	for _, c := range cohorts {
		if _, err := fmt.Fprintf(w, "%-4s %-12s %-10s %d  %10.2f MW\n",
			c.Country, c.Fueltype, c.Technology, c.YearCommissioned, float64(c.Capacity)); err != nil {
			return err
		}
		total += c.Capacity
	}
	_, err := fmt.Fprintf(w, "\n%d cohorts, %.2f MW total\n", len(cohorts), float64(total))
	return err
}

func writeJSON(w io.Writer, cohorts []entities.VintageCohort) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cohorts)
}

func writeCSV(w io.Writer, cohorts []entities.VintageCohort) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"country", "technology", "fueltype", "set", "year_commissioned", "capacity_mw"}); err != nil {
		return err
	}
	for _, c := range cohorts {
		record := []string{
			string(c.Country),
			string(c.Technology),
			string(c.Fueltype),
			string(c.Set),
			strconv.Itoa(c.YearCommissioned),
			strconv.FormatFloat(float64(c.Capacity), 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
