// internal/models/analysis.go
package models

import "time"

// Analysis sources. Both produce the exact same result shape, so consumers
// never branch on which path ran.
const (
	SourceAI          = "ai"
	SourceAlgorithmic = "algorithmic"
)

// Fit categories, derived from a match's score relative to the best score in
// the batch.
const (
	CategoryBestFit     = "best_fit"
	CategoryStrongFit   = "strong_fit"
	CategoryPossibleFit = "possible_fit"
	CategoryPoorFit     = "poor_fit"
)

// MatchResult is one scored user-to-business-model pairing. Immutable after
// assembly; the ranked list is sorted descending by FitScore with catalog
// order preserved on ties.
type MatchResult struct {
	ModelID     string   `json:"modelId"`
	ModelName   string   `json:"modelName"`
	FitScore    int      `json:"fitScore"` // 40-95 after presentation rescale
	FitCategory string   `json:"fitCategory"`
	Reasoning   string   `json:"reasoning"`
	Strengths   []string `json:"strengths"`
	Challenges  []string `json:"challenges"`
	Confidence  float64  `json:"confidence"` // 0-1
}

// PersonalityProfile is the qualitative side of the report: nine 0-100 trait
// scores plus derived narrative fields.
type PersonalityProfile struct {
	TraitScores      map[string]int `json:"traitScores"`
	Strengths        []string       `json:"strengths"`
	DevelopmentAreas []string       `json:"developmentAreas"`
	WorkStyle        string         `json:"workStyle"`
	RiskProfile      string         `json:"riskProfile"`
}

// ComprehensiveFitAnalysis is the full report payload: ranked matches against
// the whole catalog, the personality profile, and free-text recommendations.
type ComprehensiveFitAnalysis struct {
	AnalysisID      string             `json:"analysisId"`
	TopMatches      []MatchResult      `json:"topMatches"`
	Personality     PersonalityProfile `json:"personality"`
	Recommendations []string           `json:"recommendations"`
	Source          string             `json:"source"` // ai | algorithmic
	GeneratedAt     time.Time          `json:"generatedAt"`
}
