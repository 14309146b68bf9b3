package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/dataset"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/engine"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/export"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
	"github.com/Bimsara-Yehan/Data-Analysis/pkg/utils"
)

// churn-report runs one filtered analysis from the command line and prints
// the dashboard numbers as text tables.
func main() {
	var (
		dataPath    = flag.String("data", "./Churn_Modelling.csv", "path to the dataset CSV")
		geographies = flag.String("geographies", "", "comma-separated geographies to include (empty = all)")
		genders     = flag.String("genders", "", "comma-separated genders to include (empty = all)")
		products    = flag.String("products", "", "comma-separated product counts to include (empty = all)")
		minAge      = flag.Float64("min-age", -1, "minimum age (inclusive; -1 = observed minimum)")
		maxAge      = flag.Float64("max-age", -1, "maximum age (inclusive; -1 = observed maximum)")
		minBalance  = flag.Float64("min-balance", -1, "minimum balance (inclusive; -1 = observed minimum)")
		maxBalance  = flag.Float64("max-balance", -1, "maximum balance (inclusive; -1 = observed maximum)")
		activeOnly  = flag.Bool("active-only", false, "include only active members")
		outDir      = flag.String("out", "", "write the filtered subset as CSV under this directory")
		threshold   = flag.Int("threshold", engine.DefaultLowSampleThreshold, "low-sample warning threshold")
	)
	flag.Parse()

	table, err := dataset.Load(*dataPath)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	criteria := model.FilterCriteria{
		Geographies: model.RestrictedTo(splitList(*geographies)...),
		Genders:     model.RestrictedTo(splitList(*genders)...),
		ActiveOnly:  *activeOnly,
	}
	if counts, err := splitIntList(*products); err != nil {
		log.Fatalf("invalid -products: %v", err)
	} else {
		criteria.ProductCount = model.RestrictedToInts(counts...)
	}
	criteria.AgeRange = resolveRange(*minAge, *maxAge, table.AgeBounds)
	criteria.BalanceRange = resolveRange(*minBalance, *maxBalance, table.BalanceBounds)

	filtered := engine.ApplyFilters(table.Records, criteria)
	summary := engine.Summarize(filtered, table.Records, table.Columns(), *threshold)

	fmt.Printf("Customers:      %d of %d\n", summary.TotalCustomers, summary.TotalRows)
	fmt.Printf("Churned:        %d\n", summary.ChurnedCustomers)
	fmt.Printf("Churn rate:     %.2f%% (%+.2f%% vs overall)\n", summary.ChurnRatePercent, summary.DeltaVsOverall)
	if summary.LowSample {
		fmt.Printf("⚠️  Fewer than %d rows match; percentages may be noisy\n", *threshold)
	}

	agg := engine.NewAggregator(*threshold, table.Columns())
	results, err := agg.AggregateAll(filtered, nil)
	if err != nil {
		log.Fatalf("aggregation failed: %v", err)
	}

	for _, result := range results {
		printResult(result)
	}

	if *outDir != "" {
		mgr := export.NewManager(*outDir)
		res, err := mgr.ExportFiltered("report", table.Header, filtered)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Printf("Filtered data written to %s\n", res.Path)
	}
}

func printResult(result model.AggregationResult) {
	fmt.Printf("\nChurn by %s\n", result.Dimension)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tCHURN %\tCOUNT\t")
	for _, cat := range result.Categories {
		note := ""
		if cat.LowSample {
			note = " (low sample)"
		}
		fmt.Fprintf(w, "%s\t%.2f\t%d%s\t\n", cat.Label, utils.RoundPercent(cat.ChurnRatePercent), cat.SampleCount, note)
	}
	w.Flush()
	if result.UnbinnedCount > 0 {
		fmt.Printf("%d records below the lowest bin were not grouped\n", result.UnbinnedCount)
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitIntList(s string) ([]int, error) {
	var out []int
	for _, p := range splitList(s) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// resolveRange turns slider-style min/max flags into a Range, defaulting
// unset bounds to the observed bounds of the full table. Both unset means
// no constraint at all.
func resolveRange(min, max float64, observed model.Range) *model.Range {
	if min < 0 && max < 0 {
		return nil
	}
	r := observed
	if min >= 0 {
		r.Min = min
	}
	if max >= 0 {
		r.Max = max
	}
	return &r
}
