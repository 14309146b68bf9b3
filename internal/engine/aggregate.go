package engine

import (
	"math"
	"strconv"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
)

// DefaultLowSampleThreshold is the group size under which a churn percentage
// is considered statistically unreliable.
const DefaultLowSampleThreshold = 30

// Canonical label sets. Charts always show every label, so zero-population
// categories are reported with rate 0 and count 0 rather than omitted.
var (
	geographyLabels = []string{"France", "Germany", "Spain"}
	genderLabels    = []string{"Female", "Male"}
	productLabels   = []string{"1", "2", "3", "4"}
	activityLabels  = []string{"Inactive", "Active"}
)

// bin is a numeric interval. The first bin of a dimension is closed
// [Lo, Hi]; every later bin is half-open (Lo, Hi]. Hi may be +Inf.
type bin struct {
	Label string
	Lo    float64
	Hi    float64
}

var ageBins = []bin{
	{"18-25", 18, 25},
	{"26-35", 25, 35},
	{"36-45", 35, 45},
	{"46-60", 45, 60},
	{"60+", 60, math.Inf(1)},
}

var balanceBins = []bin{
	{"0-50K", 0, 50000},
	{"50-100K", 50000, 100000},
	{"100-150K", 100000, 150000},
	{"150-200K", 150000, 200000},
	{"200K+", 200000, math.Inf(1)},
}

// dimensionColumns maps each dimension to the source column it reads.
var dimensionColumns = map[model.Dimension]string{
	model.DimGeography: "Geography",
	model.DimGender:    "Gender",
	model.DimProducts:  "NumOfProducts",
	model.DimActivity:  "IsActiveMember",
	model.DimAge:       "Age",
	model.DimBalance:   "Balance",
}

// Aggregator computes churn aggregations. Every call recomputes from the
// given records; nothing is cached between differing inputs.
type Aggregator struct {
	// LowSampleThreshold marks categories below this population as
	// unreliable. Zero means DefaultLowSampleThreshold.
	LowSampleThreshold int

	// Columns is the input schema, used to reject dimensions whose source
	// column is absent. Nil means the full canonical schema.
	Columns []string
}

// NewAggregator returns an aggregator over the given input schema.
func NewAggregator(threshold int, columns []string) *Aggregator {
	return &Aggregator{LowSampleThreshold: threshold, Columns: columns}
}

func (a *Aggregator) threshold() int {
	if a.LowSampleThreshold > 0 {
		return a.LowSampleThreshold
	}
	return DefaultLowSampleThreshold
}

func (a *Aggregator) hasColumn(name string) bool {
	if a.Columns == nil {
		return true
	}
	for _, c := range a.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Aggregate groups the records by the dimension and computes per-category
// churn rate and population. Categories come back in canonical order; an
// empty input yields every category with rate 0 and count 0. Returns
// ErrInvalidDimension for an unknown dimension and MissingFieldError when
// the dimension's source column is absent from the input schema.
func (a *Aggregator) Aggregate(records []model.CustomerRecord, dim model.Dimension) (model.AggregationResult, error) {
	column, ok := dimensionColumns[dim]
	if !ok {
		return model.AggregationResult{}, ErrInvalidDimension
	}
	if !a.hasColumn(column) {
		return model.AggregationResult{}, &MissingFieldError{Field: column}
	}

	labels := canonicalLabels(dim)
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	sizes := make([]int, len(labels))
	exits := make([]int, len(labels))
	unassigned := 0

	for _, rec := range records {
		label, ok := assign(rec, dim)
		if !ok {
			// Below the lowest bin edge, or a categorical value outside
			// the canonical set. Counted, never folded into a category.
			unassigned++
			continue
		}
		i, ok := index[label]
		if !ok {
			unassigned++
			continue
		}
		sizes[i]++
		if rec.Exited {
			exits[i]++
		}
	}

	categories := make([]model.CategoryStat, len(labels))
	for i, label := range labels {
		rate := 0.0
		if sizes[i] > 0 {
			rate = float64(exits[i]) / float64(sizes[i]) * 100
		}
		categories[i] = model.CategoryStat{
			Label:            label,
			ChurnRatePercent: rate,
			SampleCount:      sizes[i],
			LowSample:        sizes[i] < a.threshold(),
		}
	}

	return model.AggregationResult{
		Dimension:     dim,
		Categories:    categories,
		UnbinnedCount: unassigned,
	}, nil
}

// AggregateAll runs Aggregate for each requested dimension, or for every
// supported dimension when none are named.
func (a *Aggregator) AggregateAll(records []model.CustomerRecord, dims []model.Dimension) ([]model.AggregationResult, error) {
	if len(dims) == 0 {
		dims = model.AllDimensions()
	}
	results := make([]model.AggregationResult, 0, len(dims))
	for _, dim := range dims {
		res, err := a.Aggregate(records, dim)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func canonicalLabels(dim model.Dimension) []string {
	switch dim {
	case model.DimGeography:
		return geographyLabels
	case model.DimGender:
		return genderLabels
	case model.DimProducts:
		return productLabels
	case model.DimActivity:
		return activityLabels
	case model.DimAge:
		return binLabels(ageBins)
	case model.DimBalance:
		return binLabels(balanceBins)
	default:
		return nil
	}
}

func binLabels(bins []bin) []string {
	labels := make([]string, len(bins))
	for i, b := range bins {
		labels[i] = b.Label
	}
	return labels
}

// assign picks the category label for a record, or ok=false when the record
// belongs to no category of the dimension.
func assign(rec model.CustomerRecord, dim model.Dimension) (string, bool) {
	switch dim {
	case model.DimGeography:
		return rec.Geography, rec.Geography != ""
	case model.DimGender:
		return rec.Gender, rec.Gender != ""
	case model.DimProducts:
		return strconv.Itoa(rec.NumProducts), true
	case model.DimActivity:
		if rec.IsActive {
			return "Active", true
		}
		return "Inactive", true
	case model.DimAge:
		return assignBin(ageBins, float64(rec.Age))
	case model.DimBalance:
		return assignBin(balanceBins, rec.Balance)
	default:
		return "", false
	}
}

func assignBin(bins []bin, v float64) (string, bool) {
	if v < bins[0].Lo {
		return "", false
	}
	for _, b := range bins {
		if v <= b.Hi {
			return b.Label, true
		}
	}
	return "", false
}

// DimensionInfos describes every supported dimension for API consumers.
func DimensionInfos() []model.DimensionInfo {
	infos := make([]model.DimensionInfo, 0, len(dimensionColumns))
	for _, dim := range model.AllDimensions() {
		kind := "categorical"
		if dim == model.DimAge || dim == model.DimBalance {
			kind = "binned"
		}
		infos = append(infos, model.DimensionInfo{
			Name:   dim,
			Kind:   kind,
			Labels: canonicalLabels(dim),
		})
	}
	return infos
}
