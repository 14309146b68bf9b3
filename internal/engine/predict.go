package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Bimsara-Yehan/Data-Analysis/internal/model"
)

// Scorer estimates a churn probability in [0,1] for a feature tuple.
type Scorer interface {
	Score(ctx context.Context, in model.PredictionInput) (float64, error)
}

// HeuristicScorer is the built-in closed-form estimator. The coefficients
// are illustrative, not fitted, and must stay exactly as the dashboard
// documents them.
type HeuristicScorer struct{}

// Score applies the heuristic: a linear score over the features passed
// through the logistic function, clamped to [0,1].
func (HeuristicScorer) Score(_ context.Context, in model.PredictionInput) (float64, error) {
	score := 0.0
	score += float64(in.Age-40) * 0.02
	score += (in.Balance - 50000) / 200000.0
	score += float64(in.NumProducts-1) * 0.15
	if in.IsActive {
		score -= 0.1
	} else {
		score += 0.4
	}
	if strings.EqualFold(in.Geography, "Germany") {
		score += 0.1
	}
	if strings.EqualFold(in.Gender, "Male") {
		score += 0.05
	}

	prob := 1 / (1 + math.Exp(-score))
	return clamp01(prob), nil
}

// ExternalScorer calls a user-supplied scoring endpoint. The endpoint gets
// the feature tuple as JSON and must answer {"probability": <0..1>}.
type ExternalScorer struct {
	URL    string
	Client *http.Client
}

// NewExternalScorer returns a scorer for the given endpoint.
func NewExternalScorer(url string) *ExternalScorer {
	return &ExternalScorer{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *ExternalScorer) Score(ctx context.Context, in model.PredictionInput) (float64, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	var out struct {
		Probability float64 `json:"probability"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("scorer response: %w", err)
	}
	return clamp01(out.Probability), nil
}

// Predictor answers prediction requests, preferring the external scorer and
// degrading to the heuristic on any failure so the user-facing flow never
// aborts.
type Predictor struct {
	External Scorer // optional
	Fallback Scorer
}

// NewPredictor builds a predictor. scorerURL may be empty, in which case
// only the heuristic is used.
func NewPredictor(scorerURL string) *Predictor {
	p := &Predictor{Fallback: HeuristicScorer{}}
	if scorerURL != "" {
		p.External = NewExternalScorer(scorerURL)
	}
	return p
}

// Predict returns the probability and which scorer produced it.
func (p *Predictor) Predict(ctx context.Context, in model.PredictionInput) (model.PredictionResult, error) {
	if p.External != nil {
		if prob, err := p.External.Score(ctx, in); err == nil {
			return model.PredictionResult{Probability: prob, Source: "external"}, nil
		}
	}
	prob, err := p.Fallback.Score(ctx, in)
	if err != nil {
		return model.PredictionResult{}, err
	}
	return model.PredictionResult{Probability: prob, Source: "heuristic"}, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
