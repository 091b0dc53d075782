package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Xiaochen19/powerplantmatching/pkg/application/services/vintage"
	"github.com/Xiaochen19/powerplantmatching/pkg/domain/entities"
)

func main() {
	ctx := context.Background()

	// German onshore wind build-out, cumulative installed capacity in MW
	stats := []entities.YearlyStatistic{
		windStat(2010, 26903),
		windStat(2011, 28712),
		windStat(2012, 30979),
		windStat(2013, 33477),
		windStat(2014, 37620),
		windStat(2015, 41297),
	}

	svc := vintage.NewService(vintage.Config{BaseYear: 2015})

	fmt.Println("Deriving vintage cohorts for DE onshore wind...")
	result, err := svc.DeriveVintageCohorts(ctx, stats)
	if err != nil {
		fmt.Printf("derivation failed: %v\n", err)
		return
	}

	cohorts := result.Cohorts
	sort.Slice(cohorts, func(i, j int) bool {
		return cohorts[i].YearCommissioned < cohorts[j].YearCommissioned
	})

	total := decimal.Zero
	for _, c := range cohorts {
		fmt.Printf("  %d: %10.2f MW\n", c.YearCommissioned, float64(c.Capacity))
		total = total.Add(decimal.NewFromFloat(float64(c.Capacity)))
	}

	fmt.Printf("\n%d cohorts across %d partition(s) in %v\n",
		len(cohorts), result.Partitions, result.Elapsed)
	fmt.Printf("Fleet total at 2015: %s MW (statistics report 41297 MW)\n",
		total.Round(2))
}

func windStat(year int, capacity float64) entities.YearlyStatistic {
	return entities.YearlyStatistic{
		Country:    "DE",
		Technology: "Onshore",
		Fueltype:   entities.Wind,
		Set:        entities.SetPP,
		Year:       year,
		Capacity:   entities.Megawatt(capacity),
	}
}
