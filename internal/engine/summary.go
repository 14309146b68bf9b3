package engine

import "github.com/Bimsara-Yehan/Data-Analysis/internal/model"

// insightCards are the advisory cards shown under the charts. Fixed copy,
// carried over from the dashboard's recommendations section.
var insightCards = []model.Insight{
	{Title: "High Balance Risk", Detail: "Customers with 100K+ balances show elevated churn"},
	{Title: "Inactive Members", Detail: "Inactive customers are 3x more likely to churn"},
	{Title: "Senior Customers", Detail: "Age 46+ shows 2x higher churn rates"},
}

// featureImpacts is the static feature-impact chart data. Illustrative
// coefficients, not learned from the dataset.
var featureImpacts = []model.FeatureImpact{
	{Feature: "Active Status", Impact: 0.12},
	{Feature: "Products", Impact: 0.18},
	{Feature: "Balance", Impact: 0.31},
	{Feature: "Age", Impact: 0.38},
}

// Summarize computes the KPI cards for a filtered view of the table.
// The delta compares the filtered churn rate against the full table's rate.
func Summarize(filtered, full []model.CustomerRecord, columns []string, threshold int) model.Summary {
	if threshold <= 0 {
		threshold = DefaultLowSampleThreshold
	}

	churned := 0
	for _, rec := range filtered {
		if rec.Exited {
			churned++
		}
	}
	rate := 0.0
	if len(filtered) > 0 {
		rate = float64(churned) / float64(len(filtered)) * 100
	}

	overallChurned := 0
	for _, rec := range full {
		if rec.Exited {
			overallChurned++
		}
	}
	overall := 0.0
	if len(full) > 0 {
		overall = float64(overallChurned) / float64(len(full)) * 100
	}

	return model.Summary{
		TotalCustomers:   len(filtered),
		ChurnedCustomers: churned,
		ChurnRatePercent: rate,
		DeltaVsOverall:   rate - overall,
		Columns:          columns,
		FilteredRows:     len(filtered),
		TotalRows:        len(full),
		LowSample:        len(filtered) < threshold,
		Insights:         Insights(),
	}
}

// Insights returns the advisory cards.
func Insights() []model.Insight {
	out := make([]model.Insight, len(insightCards))
	copy(out, insightCards)
	return out
}

// FeatureImpacts returns the static feature-impact list.
func FeatureImpacts() []model.FeatureImpact {
	out := make([]model.FeatureImpact, len(featureImpacts))
	copy(out, featureImpacts)
	return out
}
