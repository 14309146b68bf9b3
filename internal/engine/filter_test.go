package engine

import (
	"testing"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
)

func sampleRecords() []model.CustomerRecord {
	return []model.CustomerRecord{
		{CustomerID: "1", Geography: "France", Gender: "Female", Age: 30, Balance: 60000, NumProducts: 1, IsActive: true, Exited: true},
		{CustomerID: "2", Geography: "Germany", Gender: "Male", Age: 45, Balance: 120000, NumProducts: 2, IsActive: false, Exited: false},
		{CustomerID: "3", Geography: "Spain", Gender: "Female", Age: 52, Balance: 0, NumProducts: 1, IsActive: true, Exited: false},
		{CustomerID: "4", Geography: "Germany", Gender: "Female", Age: 61, Balance: 210000, NumProducts: 3, IsActive: false, Exited: true},
		{CustomerID: "5", Geography: "France", Gender: "Male", Age: 24, Balance: 30000, NumProducts: 2, IsActive: true, Exited: false},
	}
}

func ids(records []model.CustomerRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.CustomerID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFiltersUnconstrainedIsIdentity(t *testing.T) {
	records := sampleRecords()
	got := ApplyFilters(records, model.FilterCriteria{})

	if !equalIDs(ids(got), "1", "2", "3", "4", "5") {
		t.Fatalf("unconstrained filter changed content or order: %v", ids(got))
	}
	if got[0].Balance != records[0].Balance || got[3].Geography != records[3].Geography {
		t.Fatal("unconstrained filter changed field values")
	}
}

func TestApplyFiltersGeography(t *testing.T) {
	criteria := model.FilterCriteria{Geographies: model.RestrictedTo("Germany")}
	got := ApplyFilters(sampleRecords(), criteria)

	if !equalIDs(ids(got), "2", "4") {
		t.Fatalf("expected only Germany rows in input order, got %v", ids(got))
	}
	for _, rec := range got {
		if rec.Geography != "Germany" {
			t.Fatalf("record %s has geography %q", rec.CustomerID, rec.Geography)
		}
	}
}

func TestApplyFiltersEmptySelectionMeansAll(t *testing.T) {
	// An empty inclusion set is "no constraint", never "exclude all".
	criteria := model.FilterCriteria{
		Geographies:  model.RestrictedTo(),
		Genders:      model.RestrictedTo(),
		ProductCount: model.RestrictedToInts(),
	}
	got := ApplyFilters(sampleRecords(), criteria)
	if len(got) != 5 {
		t.Fatalf("empty selections should match all 5 records, got %d", len(got))
	}
}

func TestApplyFiltersCombineWithAnd(t *testing.T) {
	criteria := model.FilterCriteria{
		Geographies: model.RestrictedTo("France", "Germany"),
		ActiveOnly:  true,
	}
	got := ApplyFilters(sampleRecords(), criteria)
	if !equalIDs(ids(got), "1", "5") {
		t.Fatalf("expected active France/Germany rows, got %v", ids(got))
	}
}

func TestApplyFiltersRanges(t *testing.T) {
	tests := []struct {
		name     string
		criteria model.FilterCriteria
		want     []string
	}{
		{
			name:     "age range inclusive bounds",
			criteria: model.FilterCriteria{AgeRange: &model.Range{Min: 30, Max: 52}},
			want:     []string{"1", "2", "3"},
		},
		{
			name:     "balance range",
			criteria: model.FilterCriteria{BalanceRange: &model.Range{Min: 100000, Max: 250000}},
			want:     []string{"2", "4"},
		},
		{
			name:     "min greater than max yields empty",
			criteria: model.FilterCriteria{AgeRange: &model.Range{Min: 60, Max: 20}},
			want:     []string{},
		},
		{
			name:     "range outside domain yields empty",
			criteria: model.FilterCriteria{AgeRange: &model.Range{Min: 200, Max: 300}},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(sampleRecords(), tt.criteria)
			if !equalIDs(ids(got), tt.want...) {
				t.Fatalf("got %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestApplyFiltersProductCount(t *testing.T) {
	criteria := model.FilterCriteria{ProductCount: model.RestrictedToInts(1)}
	got := ApplyFilters(sampleRecords(), criteria)
	if !equalIDs(ids(got), "1", "3") {
		t.Fatalf("expected single-product rows, got %v", ids(got))
	}
}

func TestApplyFiltersOrderIndependent(t *testing.T) {
	// The same predicates must select the same rows no matter how they are
	// combined; criteria fields have no side effects.
	a := model.FilterCriteria{
		Geographies: model.RestrictedTo("France"),
		Genders:     model.RestrictedTo("Male"),
	}
	b := model.FilterCriteria{
		Genders:     model.RestrictedTo("Male"),
		Geographies: model.RestrictedTo("France"),
	}

	if !equalIDs(ids(ApplyFilters(sampleRecords(), a)), ids(ApplyFilters(sampleRecords(), b))...) {
		t.Fatal("filter result depends on criteria construction order")
	}
}
