package model

import "time"

// AnalysisRequest is the body for POST /api/v1/analysis.
type AnalysisRequest struct {
	Criteria   FilterCriteria `json:"criteria"`
	Dimensions []Dimension    `json:"dimensions"` // empty = all supported dimensions
}

// Summary carries the dashboard KPI cards plus dataset shape info.
type Summary struct {
	TotalCustomers   int     `json:"totalCustomers"`
	ChurnedCustomers int     `json:"churnedCustomers"`
	ChurnRatePercent float64 `json:"churnRatePercent"`
	// DeltaVsOverall is the filtered churn rate minus the unfiltered one,
	// shown as the "vs overall" delta on the churn rate card.
	DeltaVsOverall float64   `json:"deltaVsOverall"`
	Columns        []string  `json:"columns"`
	FilteredRows   int       `json:"filteredRows"`
	TotalRows      int       `json:"totalRows"`
	LowSample      bool      `json:"lowSample"`
	Insights       []Insight `json:"insights,omitempty"`
}

// Insight is an advisory card rendered under the charts.
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// FeatureImpact is one bar of the feature-impact chart. The coefficients are
// illustrative, not learned from the data.
type FeatureImpact struct {
	Feature string  `json:"feature"`
	Impact  float64 `json:"impact"`
}

// AnalysisSnapshot is a persisted analysis run.
type AnalysisSnapshot struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"createdAt"`
	Request   AnalysisRequest     `json:"request"`
	Summary   Summary             `json:"summary"`
	Results   []AggregationResult `json:"results"`
}

// PredictionInput is the feature tuple for a churn probability estimate.
type PredictionInput struct {
	Age         int     `json:"age"`
	Balance     float64 `json:"balance"`
	NumProducts int     `json:"numProducts"`
	IsActive    bool    `json:"isActive"`
	Gender      string  `json:"gender"`
	Geography   string  `json:"geography"`
}

// PredictionResult is a churn probability in [0,1] and the scorer that
// produced it ("heuristic" or "external").
type PredictionResult struct {
	Probability float64 `json:"probability"`
	Source      string  `json:"source"`
}

// ExportResult describes a filtered-subset export written to disk.
type ExportResult struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	DownloadURL string    `json:"downloadUrl"`
	RecordCount int       `json:"recordCount"`
	ExportedAt  time.Time `json:"exportedAt"`
}
