package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/dataset"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/engine"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/export"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/store"
)

// Handler serves the churn analytics API.
type Handler struct {
	Data               *dataset.Holder
	Predictor          *engine.Predictor
	Exports            *export.Manager
	LowSampleThreshold int
}

// New creates a handler over the loaded dataset.
func New(data *dataset.Holder, predictor *engine.Predictor, exports *export.Manager, threshold int) *Handler {
	return &Handler{
		Data:               data,
		Predictor:          predictor,
		Exports:            exports,
		LowSampleThreshold: threshold,
	}
}

// Analyze runs a filtered churn analysis
// @Summary Run a churn analysis
// @Description Apply filter criteria to the customer table and aggregate churn rates per requested dimension. The snapshot is persisted and returned.
// @Tags analysis
// @Accept json
// @Produce json
// @Param analysis body model.AnalysisRequest true "Filter criteria and dimensions"
// @Success 200 {object} model.AnalysisSnapshot "Analysis snapshot"
// @Failure 400 {object} map[string]interface{} "Invalid request payload or dimension"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analysis [post]
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	table := h.Data.Table()
	filtered := engine.ApplyFilters(table.Records, req.Criteria)

	agg := engine.NewAggregator(h.LowSampleThreshold, table.Columns())
	results, err := agg.AggregateAll(filtered, req.Dimensions)
	if err != nil {
		var missing *engine.MissingFieldError
		switch {
		case errors.Is(err, engine.ErrInvalidDimension):
			http.Error(w, "Unsupported dimension", http.StatusBadRequest)
		case errors.As(err, &missing):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Aggregation failed", http.StatusInternalServerError)
		}
		return
	}

	snap := model.AnalysisSnapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Request:   req,
		Summary:   engine.Summarize(filtered, table.Records, table.Columns(), h.LowSampleThreshold),
		Results:   results,
	}

	if err := store.SaveAnalysis(snap); err != nil {
		http.Error(w, "Failed to save analysis", http.StatusInternalServerError)
		return
	}

	respondJSON(w, snap)
}

// ListAnalyses retrieves recent analysis snapshots
// @Summary List analyses
// @Description Get recent analysis snapshots with their criteria and summaries
// @Tags analysis
// @Produce json
// @Success 200 {array} map[string]interface{} "List of analyses"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analysis [get]
func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	analyses, err := store.ListAnalyses(50)
	if err != nil {
		http.Error(w, "Failed to fetch analyses", http.StatusInternalServerError)
		return
	}
	respondJSON(w, analyses)
}

// GetAnalysis retrieves a specific analysis snapshot
// @Summary Get analysis
// @Description Retrieve a full analysis snapshot by ID
// @Tags analysis
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} model.AnalysisSnapshot "Analysis snapshot"
// @Failure 404 {object} map[string]interface{} "Analysis not found"
// @Router /analysis/{id} [get]
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := pathSuffix(r.URL.Path, "/api/v1/analysis/")
	if id == "" {
		http.Error(w, "Analysis ID is required", http.StatusBadRequest)
		return
	}

	snap, err := store.GetAnalysis(id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Analysis not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to fetch analysis", http.StatusInternalServerError)
		return
	}
	respondJSON(w, snap)
}

// Dimensions lists supported dimensions
// @Summary List dimensions
// @Description Supported grouping dimensions with canonical labels, plus the observed age and balance bounds for defaulting range filters
// @Tags analysis
// @Produce json
// @Success 200 {object} map[string]interface{} "Dimension specs"
// @Router /dimensions [get]
func (h *Handler) Dimensions(w http.ResponseWriter, r *http.Request) {
	table := h.Data.Table()
	respondJSON(w, map[string]interface{}{
		"dimensions":    engine.DimensionInfos(),
		"ageBounds":     table.AgeBounds,
		"balanceBounds": table.BalanceBounds,
	})
}

// Summary returns unfiltered dataset KPIs
// @Summary Dataset summary
// @Description KPI cards for the full, unfiltered table
// @Tags analysis
// @Produce json
// @Success 200 {object} model.Summary "Dataset summary"
// @Router /summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	table := h.Data.Table()
	respondJSON(w, engine.Summarize(table.Records, table.Records, table.Columns(), h.LowSampleThreshold))
}

// Impacts returns the feature-impact chart data
// @Summary Feature impacts
// @Description Static feature-impact coefficients for the impact chart. Illustrative values, not learned from the data
// @Tags analysis
// @Produce json
// @Success 200 {array} model.FeatureImpact "Feature impacts"
// @Router /impacts [get]
func (h *Handler) Impacts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, engine.FeatureImpacts())
}

// Predict estimates churn probability for a hypothetical customer
// @Summary Predict churn
// @Description Score a feature tuple. Uses the configured external scorer when available, degrading to the built-in heuristic on any failure
// @Tags prediction
// @Accept json
// @Produce json
// @Param input body model.PredictionInput true "Feature tuple"
// @Success 200 {object} model.PredictionResult "Churn probability"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	var in model.PredictionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	result, err := h.Predictor.Predict(r.Context(), in)
	if err != nil {
		http.Error(w, "Prediction failed", http.StatusInternalServerError)
		return
	}

	// Audit trail only; a write failure must not break the flow.
	if err := store.SavePrediction(in, result); err != nil {
		log.Printf("failed to save prediction: %v", err)
	}

	respondJSON(w, result)
}

// Export writes a filtered subset to disk
// @Summary Export filtered data
// @Description Apply filter criteria and write the matching rows as CSV in the source column layout. Returns a download URL
// @Tags export
// @Accept json
// @Produce json
// @Param criteria body model.FilterCriteria true "Filter criteria"
// @Success 200 {object} model.ExportResult "Export location"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /export [post]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var criteria model.FilterCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	table := h.Data.Table()
	filtered := engine.ApplyFilters(table.Records, criteria)

	result, err := h.Exports.ExportFiltered(uuid.New().String(), table.Header, filtered)
	if err != nil {
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}
	respondJSON(w, result)
}

// Download serves an exported file
// @Summary Download export
// @Description Download a previously exported file
// @Tags export
// @Produce text/csv
// @Param id path string true "Export ID"
// @Param file path string true "File name"
// @Success 200 {file} file "CSV content"
// @Failure 404 {object} map[string]interface{} "File not found"
// @Router /download/{id}/{file} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	rest := pathSuffix(r.URL.Path, "/api/v1/download/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.Error(w, "Export ID and file name are required", http.StatusBadRequest)
		return
	}

	path, err := h.Exports.FilePath(parts[0], parts[1])
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, path)
}

// Reload reloads the dataset from disk
// @Summary Reload dataset
// @Description Re-read the source CSV and swap the in-memory table
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]interface{} "Reload status"
// @Failure 500 {object} map[string]interface{} "Reload failed"
// @Router /reload [post]
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.Data.Load(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	table := h.Data.Table()
	respondJSON(w, map[string]interface{}{
		"message":  "Dataset reloaded",
		"rows":     len(table.Records),
		"loadedAt": table.LoadedAt,
	})
}

// Health reports service status
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	table := h.Data.Table()
	respondJSON(w, map[string]interface{}{
		"status":   "ok",
		"rows":     len(table.Records),
		"loadedAt": table.LoadedAt,
	})
}

func respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func pathSuffix(path, prefix string) string {
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	return strings.TrimPrefix(path, prefix)
}
