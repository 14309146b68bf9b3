package model

import "encoding/json"

// Selection is a sum type over categorical filter state: either unconstrained
// (match everything) or restricted to an explicit value set. An empty
// selection in the dashboard means "no constraint", never "exclude all".
type Selection struct {
	restricted bool
	values     map[string]bool
}

// Unconstrained returns a selection that allows every value.
func Unconstrained() Selection {
	return Selection{}
}

// RestrictedTo returns a selection allowing only the given values.
// With no values it collapses to Unconstrained, matching the dashboard's
// empty-selection-means-all behavior.
func RestrictedTo(values ...string) Selection {
	if len(values) == 0 {
		return Unconstrained()
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return Selection{restricted: true, values: set}
}

// Unrestricted reports whether the selection allows every value.
func (s Selection) Unrestricted() bool { return !s.restricted }

// Allows reports whether v passes the selection.
func (s Selection) Allows(v string) bool {
	return !s.restricted || s.values[v]
}

// Values returns the allowed values, nil when unconstrained.
func (s Selection) Values() []string {
	if !s.restricted {
		return nil
	}
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	return out
}

// MarshalJSON encodes the selection as a plain value list; unconstrained
// encodes as an empty list.
func (s Selection) MarshalJSON() ([]byte, error) {
	vals := s.Values()
	if vals == nil {
		vals = []string{}
	}
	return json.Marshal(vals)
}

// UnmarshalJSON decodes a value list; null or [] means unconstrained.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var vals []string
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*s = RestrictedTo(vals...)
	return nil
}

// IntSelection is Selection for integer-valued fields (product counts).
type IntSelection struct {
	restricted bool
	values     map[int]bool
}

// UnconstrainedInts returns an integer selection that allows every value.
func UnconstrainedInts() IntSelection {
	return IntSelection{}
}

// RestrictedToInts returns a selection allowing only the given values;
// empty input collapses to unconstrained.
func RestrictedToInts(values ...int) IntSelection {
	if len(values) == 0 {
		return UnconstrainedInts()
	}
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return IntSelection{restricted: true, values: set}
}

// Unrestricted reports whether the selection allows every value.
func (s IntSelection) Unrestricted() bool { return !s.restricted }

// Allows reports whether v passes the selection.
func (s IntSelection) Allows(v int) bool {
	return !s.restricted || s.values[v]
}

// Values returns the allowed values, nil when unconstrained.
func (s IntSelection) Values() []int {
	if !s.restricted {
		return nil
	}
	out := make([]int, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	return out
}

// MarshalJSON encodes the selection as a plain value list.
func (s IntSelection) MarshalJSON() ([]byte, error) {
	vals := s.Values()
	if vals == nil {
		vals = []int{}
	}
	return json.Marshal(vals)
}

// UnmarshalJSON decodes a value list; null or [] means unconstrained.
func (s *IntSelection) UnmarshalJSON(data []byte) error {
	var vals []int
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	*s = RestrictedToInts(vals...)
	return nil
}

// Range is an inclusive numeric range. A nil *Range on FilterCriteria means
// no constraint; a Range with Min > Max matches nothing.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterCriteria is the full set of independent predicates a user can apply.
// All predicates combine with logical AND; each zero-value field is a no-op.
type FilterCriteria struct {
	Geographies  Selection    `json:"geographies"`
	Genders      Selection    `json:"genders"`
	ProductCount IntSelection `json:"productCounts"`
	AgeRange     *Range       `json:"ageRange,omitempty"`
	BalanceRange *Range       `json:"balanceRange,omitempty"`
	ActiveOnly   bool         `json:"activeOnly"`
}

// IsUnconstrained reports whether applying the criteria would be the
// identity on any input.
func (c FilterCriteria) IsUnconstrained() bool {
	return c.Geographies.Unrestricted() &&
		c.Genders.Unrestricted() &&
		c.ProductCount.Unrestricted() &&
		c.AgeRange == nil &&
		c.BalanceRange == nil &&
		!c.ActiveOnly
}
