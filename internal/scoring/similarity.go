// internal/scoring/similarity.go
package scoring

import (
	"math"

	"bizfit-workers/pkg/catalog"
)

// Presentation rescale: raw 0-100 compresses into 40-95 so nobody sees a
// demoralizing 12% or an overselling 99%, while relative ranking is
// preserved.
const (
	scoreFloor = 40.0
	scoreSpan  = 55.0
)

// band is one segment of the piecewise similarity curve. A trait difference
// d in (prev.upper, upper] maps linearly from high (at the band's lower edge)
// down to low (at upper).
type band struct {
	upper float64 // inclusive upper bound on the difference
	low   float64 // similarity at d == upper
	high  float64 // similarity just above the previous band's upper bound
}

// similarityBands stretches the tails aggressively: near-identical trait
// values score almost perfectly, divergent ones collapse toward zero. A
// plain linear inversion clustered most real users around 80%, which made
// every archetype look the same.
var similarityBands = []band{
	{upper: 0.05, low: 0.98, high: 1.00},
	{upper: 0.15, low: 0.90, high: 0.98},
	{upper: 0.25, low: 0.75, high: 0.90},
	{upper: 0.35, low: 0.55, high: 0.75},
	{upper: 0.45, low: 0.30, high: 0.55},
	{upper: 0.55, low: 0.10, high: 0.30},
	{upper: 1.00, low: 0.00, high: 0.10},
}

// traitSimilarity maps an absolute trait difference in [0,1] to a similarity
// in [0,1] using the first band whose upper bound is not exceeded.
func traitSimilarity(difference float64) float64 {
	d := clamp01(difference)
	prevUpper := 0.0
	for _, b := range similarityBands {
		if d <= b.upper {
			span := b.upper - prevUpper
			frac := (d - prevUpper) / span
			return math.Max(0, b.high-(b.high-b.low)*frac)
		}
		prevUpper = b.upper
	}
	return 0
}

// TraitMatch is the per-trait breakdown behind a fit score, kept for
// strengths/challenges derivation.
type TraitMatch struct {
	Trait      string
	UserValue  float64
	IdealValue float64
	Similarity float64
	Weight     float64
}

// ScoreResult is the outcome of scoring one user vector against one profile.
type ScoreResult struct {
	FitScore  int // 40-95
	RawScore  float64
	Breakdown []TraitMatch
}

// Scorer computes weighted band-similarity fit scores against catalog
// profiles. Stateless; safe for concurrent use.
type Scorer struct {
	weights TraitWeights
}

func NewScorer(weights TraitWeights) *Scorer {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Score compares a normalized user vector with a profile's ideal vector. The
// weight table defines which traits are scored; values absent from either
// side count as 0 so a sparse vector is penalized, not skipped.
func (s *Scorer) Score(user NormalizedTraits, profile *catalog.Profile) ScoreResult {
	var totalWeighted, totalWeight float64
	breakdown := make([]TraitMatch, 0, len(s.weights))

	for _, trait := range TraitKeys {
		weight, scored := s.weights[trait]
		if !scored {
			continue
		}
		userVal := user[trait]
		idealVal := profile.IdealTraits[trait]

		sim := traitSimilarity(math.Abs(userVal - idealVal))
		totalWeighted += sim * weight
		totalWeight += weight

		breakdown = append(breakdown, TraitMatch{
			Trait:      trait,
			UserValue:  userVal,
			IdealValue: idealVal,
			Similarity: sim,
			Weight:     weight,
		})
	}

	raw := 0.0
	if totalWeight > 0 {
		raw = 100 * totalWeighted / totalWeight
	}

	scaled := scoreFloor + (raw/100)*scoreSpan

	return ScoreResult{
		FitScore:  int(math.Round(scaled)),
		RawScore:  raw,
		Breakdown: breakdown,
	}
}
