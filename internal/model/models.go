package model

// CustomerRecord represents a single row of the churn dataset.
// Records are immutable once loaded; every engine operation returns new values.
type CustomerRecord struct {
	RowNumber       int     `json:"rowNumber"`
	CustomerID      string  `json:"customerId"`
	Surname         string  `json:"surname"`
	CreditScore     int     `json:"creditScore"`
	Geography       string  `json:"geography"`
	Gender          string  `json:"gender"`
	Age             int     `json:"age"`
	Tenure          int     `json:"tenure"`
	Balance         float64 `json:"balance"`
	NumProducts     int     `json:"numProducts"`
	HasCreditCard   bool    `json:"hasCreditCard"`
	IsActive        bool    `json:"isActive"`
	EstimatedSalary float64 `json:"estimatedSalary"`
	Exited          bool    `json:"exited"`

	// Raw holds the original CSV cells in input column order, so filtered
	// exports reproduce the source layout byte for byte.
	Raw []string `json:"-"`
}

// Dimension identifies a grouping dimension for aggregation.
type Dimension string

const (
	DimGeography Dimension = "geography"
	DimGender    Dimension = "gender"
	DimProducts  Dimension = "products"
	DimActivity  Dimension = "activity"
	DimAge       Dimension = "age"
	DimBalance   Dimension = "balance"
)

// AllDimensions lists every supported dimension in presentation order.
func AllDimensions() []Dimension {
	return []Dimension{DimAge, DimBalance, DimGeography, DimProducts, DimGender, DimActivity}
}

// DimensionInfo describes a dimension for API consumers: which kind it is
// and the canonical category labels charts should always render.
type DimensionInfo struct {
	Name   Dimension `json:"name"`
	Kind   string    `json:"kind"` // "categorical" or "binned"
	Labels []string  `json:"labels"`
}

// CategoryStat is one category of an aggregation result.
type CategoryStat struct {
	Label            string  `json:"label"`
	ChurnRatePercent float64 `json:"churnRatePercent"`
	SampleCount      int     `json:"sampleCount"`
	// LowSample marks groups below the reliability threshold so the chart
	// layer can warn about noisy percentages.
	LowSample bool `json:"lowSample"`
}

// AggregationResult maps each canonical category of a dimension to its churn
// rate and population. Categories keep the fixed canonical order.
type AggregationResult struct {
	Dimension  Dimension      `json:"dimension"`
	Categories []CategoryStat `json:"categories"`
	// UnbinnedCount counts records falling below the lowest bin edge of a
	// binned dimension. They belong to no bin; a non-zero value signals a
	// data-quality gap in the source file.
	UnbinnedCount int `json:"unbinnedCount,omitempty"`
}

// TotalSamples sums the sample counts across all categories.
func (r AggregationResult) TotalSamples() int {
	total := 0
	for _, c := range r.Categories {
		total += c.SampleCount
	}
	return total
}
