package engine

import (
	"errors"
	"testing"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
)

func category(t *testing.T, result model.AggregationResult, label string) model.CategoryStat {
	t.Helper()
	for _, c := range result.Categories {
		if c.Label == label {
			return c
		}
	}
	t.Fatalf("category %q not found in %v", label, result.Categories)
	return model.CategoryStat{}
}

func TestAggregateAgeBinBoundaries(t *testing.T) {
	agg := NewAggregator(0, nil)
	records := []model.CustomerRecord{
		{Age: 18},
		{Age: 25},
		{Age: 26},
		{Age: 60},
		{Age: 61},
	}

	result, err := agg.Aggregate(records, model.DimAge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := category(t, result, "18-25").SampleCount; got != 2 {
		t.Errorf("18-25 should hold ages 18 and 25, got %d", got)
	}
	if got := category(t, result, "26-35").SampleCount; got != 1 {
		t.Errorf("26-35 should hold age 26, got %d", got)
	}
	if got := category(t, result, "46-60").SampleCount; got != 1 {
		t.Errorf("46-60 should hold age 60, got %d", got)
	}
	if got := category(t, result, "60+").SampleCount; got != 1 {
		t.Errorf("60+ should hold age 61, got %d", got)
	}
}

func TestAggregateBalanceBinBoundaries(t *testing.T) {
	agg := NewAggregator(0, nil)
	records := []model.CustomerRecord{
		{Balance: 0},
		{Balance: 50000},
		{Balance: 50000.01},
		{Balance: 200000},
		{Balance: 250000},
	}

	result, err := agg.Aggregate(records, model.DimBalance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := category(t, result, "0-50K").SampleCount; got != 2 {
		t.Errorf("0-50K should hold 0 and 50000, got %d", got)
	}
	if got := category(t, result, "50-100K").SampleCount; got != 1 {
		t.Errorf("50-100K should hold 50000.01, got %d", got)
	}
	if got := category(t, result, "150-200K").SampleCount; got != 1 {
		t.Errorf("150-200K should hold 200000, got %d", got)
	}
	if got := category(t, result, "200K+").SampleCount; got != 1 {
		t.Errorf("200K+ should hold 250000, got %d", got)
	}
}

func TestAggregateChurnRateExample(t *testing.T) {
	agg := NewAggregator(0, nil)
	records := []model.CustomerRecord{
		{Age: 30, Balance: 60000, Exited: true},
		{Age: 30, Balance: 40000, Exited: false},
	}

	result, err := agg.Aggregate(records, model.DimAge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cat := category(t, result, "26-35")
	if cat.ChurnRatePercent != 50.0 {
		t.Errorf("churn rate = %v, want 50.0", cat.ChurnRatePercent)
	}
	if cat.SampleCount != 2 {
		t.Errorf("sample count = %d, want 2", cat.SampleCount)
	}
}

func TestAggregateEmptyInputKeepsCanonicalLabels(t *testing.T) {
	agg := NewAggregator(0, nil)

	tests := []struct {
		dim    model.Dimension
		labels []string
	}{
		{model.DimActivity, []string{"Inactive", "Active"}},
		{model.DimGeography, []string{"France", "Germany", "Spain"}},
		{model.DimGender, []string{"Female", "Male"}},
		{model.DimAge, []string{"18-25", "26-35", "36-45", "46-60", "60+"}},
		{model.DimBalance, []string{"0-50K", "50-100K", "100-150K", "150-200K", "200K+"}},
	}

	for _, tt := range tests {
		result, err := agg.Aggregate(nil, tt.dim)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.dim, err)
		}
		if len(result.Categories) != len(tt.labels) {
			t.Fatalf("%s: got %d categories, want %d", tt.dim, len(result.Categories), len(tt.labels))
		}
		for i, want := range tt.labels {
			cat := result.Categories[i]
			if cat.Label != want {
				t.Errorf("%s: category %d = %q, want %q (canonical order)", tt.dim, i, cat.Label, want)
			}
			if cat.ChurnRatePercent != 0 || cat.SampleCount != 0 {
				t.Errorf("%s %s: empty group should report 0/0, got %v/%d", tt.dim, cat.Label, cat.ChurnRatePercent, cat.SampleCount)
			}
		}
	}
}

func TestAggregatePartitionsRecords(t *testing.T) {
	agg := NewAggregator(0, nil)
	records := sampleRecords()

	for _, dim := range []model.Dimension{model.DimGeography, model.DimGender, model.DimActivity, model.DimProducts, model.DimAge, model.DimBalance} {
		result, err := agg.Aggregate(records, dim)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", dim, err)
		}
		if got := result.TotalSamples() + result.UnbinnedCount; got != len(records) {
			t.Errorf("%s: %d records accounted for, want %d", dim, got, len(records))
		}
	}
}

func TestAggregateRatesStayInRange(t *testing.T) {
	agg := NewAggregator(0, nil)
	result, err := agg.Aggregate(sampleRecords(), model.DimGeography)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, cat := range result.Categories {
		if cat.ChurnRatePercent < 0 || cat.ChurnRatePercent > 100 {
			t.Errorf("%s: churn rate %v outside [0,100]", cat.Label, cat.ChurnRatePercent)
		}
		if cat.SampleCount == 0 && cat.ChurnRatePercent != 0 {
			t.Errorf("%s: empty group must report rate 0, got %v", cat.Label, cat.ChurnRatePercent)
		}
	}
}

func TestAggregateBelowLowestBinExcluded(t *testing.T) {
	agg := NewAggregator(0, nil)
	records := []model.CustomerRecord{
		{Age: 15, Exited: true},
		{Age: 30},
	}

	result, err := agg.Aggregate(records, model.DimAge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UnbinnedCount != 1 {
		t.Errorf("UnbinnedCount = %d, want 1", result.UnbinnedCount)
	}
	if got := result.TotalSamples(); got != 1 {
		t.Errorf("binned samples = %d, want 1 (age 15 must not fold into 18-25)", got)
	}
	if cat := category(t, result, "18-25"); cat.SampleCount != 0 || cat.ChurnRatePercent != 0 {
		t.Errorf("18-25 = %d/%v, want empty", cat.SampleCount, cat.ChurnRatePercent)
	}
}

func TestAggregateInvalidDimension(t *testing.T) {
	agg := NewAggregator(0, nil)
	_, err := agg.Aggregate(sampleRecords(), model.Dimension("tenure"))
	if !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("got %v, want ErrInvalidDimension", err)
	}
}

func TestAggregateMissingField(t *testing.T) {
	agg := NewAggregator(0, []string{"CustomerId", "Age", "Exited"})
	_, err := agg.Aggregate(sampleRecords(), model.DimGeography)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingFieldError", err)
	}
	if missing.Field != "Geography" {
		t.Errorf("missing field = %q, want Geography", missing.Field)
	}
}

func TestAggregateLowSampleFlag(t *testing.T) {
	agg := NewAggregator(3, nil)
	records := []model.CustomerRecord{
		{Geography: "France"}, {Geography: "France"}, {Geography: "France"},
		{Geography: "Germany"},
	}

	result, err := agg.Aggregate(records, model.DimGeography)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category(t, result, "France").LowSample {
		t.Error("France has 3 samples at threshold 3, should not be flagged")
	}
	if !category(t, result, "Germany").LowSample {
		t.Error("Germany has 1 sample at threshold 3, should be flagged")
	}
}

func TestAggregateAllDefaultsToEveryDimension(t *testing.T) {
	agg := NewAggregator(0, nil)
	results, err := agg.AggregateAll(sampleRecords(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(model.AllDimensions()) {
		t.Fatalf("got %d results, want %d", len(results), len(model.AllDimensions()))
	}
}
