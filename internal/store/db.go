package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the history database and creates tables if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	analysesTable := `
	CREATE TABLE IF NOT EXISTS analyses (
		id TEXT PRIMARY KEY,
		request TEXT,
		summary TEXT,
		results TEXT,
		created_at DATETIME
	);
	`
	predictionsTable := `
	CREATE TABLE IF NOT EXISTS predictions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT,
		probability REAL,
		source TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(analysesTable); err != nil {
		return err
	}
	if _, err := db.Exec(predictionsTable); err != nil {
		return err
	}

	return nil
}

// SaveAnalysis stores a completed analysis snapshot.
func SaveAnalysis(snap model.AnalysisSnapshot) error {
	requestJSON, err := json.Marshal(snap.Request)
	if err != nil {
		return err
	}
	summaryJSON, err := json.Marshal(snap.Summary)
	if err != nil {
		return err
	}
	resultsJSON, err := json.Marshal(snap.Results)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO analyses (id, request, summary, results, created_at) VALUES (?, ?, ?, ?, ?)`,
		snap.ID, requestJSON, summaryJSON, resultsJSON, snap.CreatedAt)
	return err
}

// ListAnalyses returns recent snapshots with request and summary, newest
// first. Full results are fetched per snapshot via GetAnalysis.
func ListAnalyses(limit int) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, request, summary, created_at FROM analyses ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []map[string]interface{}
	for rows.Next() {
		var id, requestJSON, summaryJSON string
		var createdAt time.Time
		if err := rows.Scan(&id, &requestJSON, &summaryJSON, &createdAt); err != nil {
			return nil, err
		}

		var request model.AnalysisRequest
		if err := json.Unmarshal([]byte(requestJSON), &request); err != nil {
			return nil, err
		}
		var summary model.Summary
		if err := json.Unmarshal([]byte(summaryJSON), &summary); err != nil {
			return nil, err
		}

		analyses = append(analyses, map[string]interface{}{
			"id":        id,
			"request":   request,
			"summary":   summary,
			"createdAt": createdAt,
		})
	}
	return analyses, rows.Err()
}

// GetAnalysis fetches a full snapshot by ID.
func GetAnalysis(id string) (*model.AnalysisSnapshot, error) {
	var requestJSON, summaryJSON, resultsJSON string
	var createdAt time.Time

	err := db.QueryRow(`SELECT request, summary, results, created_at FROM analyses WHERE id = ?`, id).
		Scan(&requestJSON, &summaryJSON, &resultsJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	snap := &model.AnalysisSnapshot{ID: id, CreatedAt: createdAt}
	if err := json.Unmarshal([]byte(requestJSON), &snap.Request); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(summaryJSON), &snap.Summary); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(resultsJSON), &snap.Results); err != nil {
		return nil, err
	}
	return snap, nil
}

// SavePrediction records a prediction request and its outcome.
func SavePrediction(in model.PredictionInput, result model.PredictionResult) error {
	inputJSON, err := json.Marshal(in)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT INTO predictions (input, probability, source, created_at) VALUES (?, ?, ?, ?)`,
		inputJSON, result.Probability, result.Source, time.Now().UTC())
	return err
}
