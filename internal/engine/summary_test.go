package engine

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	full := sampleRecords() // 5 records, 2 exited -> 40% overall
	filtered := full[:2]    // 1 exited -> 50%

	s := Summarize(filtered, full, []string{"CustomerId", "Exited"}, 30)

	if s.TotalCustomers != 2 || s.ChurnedCustomers != 1 {
		t.Errorf("counts = %d/%d, want 2/1", s.TotalCustomers, s.ChurnedCustomers)
	}
	if s.ChurnRatePercent != 50 {
		t.Errorf("churn rate = %v, want 50", s.ChurnRatePercent)
	}
	if math.Abs(s.DeltaVsOverall-10) > 1e-9 {
		t.Errorf("delta = %v, want +10", s.DeltaVsOverall)
	}
	if s.TotalRows != 5 || s.FilteredRows != 2 {
		t.Errorf("rows = %d/%d, want 2 of 5", s.FilteredRows, s.TotalRows)
	}
	if !s.LowSample {
		t.Error("2 rows under threshold 30 should be flagged")
	}
	if len(s.Insights) == 0 {
		t.Error("summary should carry insight cards")
	}
}

func TestSummarizeEmptyFiltered(t *testing.T) {
	s := Summarize(nil, sampleRecords(), nil, 30)
	if s.ChurnRatePercent != 0 {
		t.Errorf("empty filtered set must report rate 0, got %v", s.ChurnRatePercent)
	}
	if s.DeltaVsOverall != -40 {
		t.Errorf("delta = %v, want -40", s.DeltaVsOverall)
	}
}

func TestFeatureImpactsAreFixed(t *testing.T) {
	want := map[string]float64{
		"Active Status": 0.12,
		"Products":      0.18,
		"Balance":       0.31,
		"Age":           0.38,
	}
	impacts := FeatureImpacts()
	if len(impacts) != len(want) {
		t.Fatalf("got %d impacts, want %d", len(impacts), len(want))
	}
	for _, fi := range impacts {
		if want[fi.Feature] != fi.Impact {
			t.Errorf("%s = %v, want %v", fi.Feature, fi.Impact, want[fi.Feature])
		}
	}

	// Callers must not be able to mutate the shared list.
	impacts[0].Impact = 99
	if FeatureImpacts()[0].Impact == 99 {
		t.Error("FeatureImpacts returned a shared slice")
	}
}
