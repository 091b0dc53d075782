package output

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

// WritePlantsCSV renders plant records as CSV, including the scaled capacity
// column filled by the rescaling heuristic.
func WritePlantsCSV(w io.Writer, plants []entities.PlantRecord) error {
	cw := csv.NewWriter(w)
	header := []string{"project_id", "name", "country", "fueltype", "technology", "set", "capacity_mw", "scaled_capacity_mw", "year_commissioned"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range plants {
		record := []string{
			formatProjectIDs(p.ProjectIDs),
			p.Name,
			string(p.Country),
			string(p.Fueltype),
			string(p.Technology),
			string(p.Set),
			strconv.FormatFloat(float64(p.Capacity), 'f', 6, 64),
			strconv.FormatFloat(float64(p.ScaledCapacity), 'f', 6, 64),
			formatYear(p.YearCommissioned),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatProjectIDs(ids map[string]string) string {
	pairs := make([]string, 0, len(ids))
	for source, id := range ids {
		pairs = append(pairs, source+"="+id)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ";")
}

func formatYear(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
