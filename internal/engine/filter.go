package engine

import "github.com/Bimsara-Yehan/Data-Analysis/internal/model"

// ApplyFilters returns the records matching every predicate in the criteria.
// Predicates are independent and AND-combined; input order is preserved.
// Unconstrained criteria return the records unchanged in content. A range
// with Min > Max, or one entirely outside the data's domain, yields an empty
// result rather than an error.
func ApplyFilters(records []model.CustomerRecord, criteria model.FilterCriteria) []model.CustomerRecord {
	if criteria.IsUnconstrained() {
		out := make([]model.CustomerRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]model.CustomerRecord, 0, len(records))
	for _, rec := range records {
		if matches(rec, criteria) {
			out = append(out, rec)
		}
	}
	return out
}

func matches(rec model.CustomerRecord, c model.FilterCriteria) bool {
	if !c.Geographies.Allows(rec.Geography) {
		return false
	}
	if !c.Genders.Allows(rec.Gender) {
		return false
	}
	if c.ActiveOnly && !rec.IsActive {
		return false
	}
	if c.AgeRange != nil && !c.AgeRange.Contains(float64(rec.Age)) {
		return false
	}
	if c.BalanceRange != nil && !c.BalanceRange.Contains(rec.Balance) {
		return false
	}
	if !c.ProductCount.Allows(rec.NumProducts) {
		return false
	}
	return true
}
