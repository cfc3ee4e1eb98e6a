// internal/scoring/insights_test.go
package scoring

import (
	"testing"

	"bizfit-workers/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchWith(trait string, sim, ideal, weight float64) TraitMatch {
	return TraitMatch{Trait: trait, Similarity: sim, IdealValue: ideal, Weight: weight}
}

func TestStrengths(t *testing.T) {
	result := ScoreResult{Breakdown: []TraitMatch{
		matchWith(TraitSelfMotivation, 0.95, 0.9, 1.5),
		matchWith(TraitConsistency, 0.98, 0.8, 1.4),
		matchWith(TraitRiskTolerance, 0.92, 0.7, 1.3),
		matchWith(TraitPatience, 0.91, 0.6, 1.2),
		matchWith(TraitCreativity, 0.95, 0.3, 0.9),  // ideal below floor, not a demand
		matchWith(TraitTechComfort, 0.80, 0.9, 1.2), // similarity below cutoff
	}}

	got := Strengths(result)

	// Capped at three, ordered by similarity x weight.
	require.Len(t, got, 3)
	assert.Equal(t, "self-motivation", got[0])
	assert.Equal(t, "consistency", got[1])
	assert.Equal(t, "risk tolerance", got[2])
}

func TestStrengths_NoneQualify(t *testing.T) {
	result := ScoreResult{Breakdown: []TraitMatch{
		matchWith(TraitSelfMotivation, 0.5, 0.9, 1.5),
	}}
	assert.Empty(t, Strengths(result))
}

func TestChallenges(t *testing.T) {
	result := ScoreResult{Breakdown: []TraitMatch{
		matchWith(TraitSelfMotivation, 0.10, 0.9, 1.5),
		matchWith(TraitConsistency, 0.30, 0.8, 1.4),
		matchWith(TraitRiskTolerance, 0.50, 0.7, 1.3),
		matchWith(TraitPatience, 0.20, 0.6, 1.2),
		matchWith(TraitWritingInterest, 0.05, 0.5, 0.8), // weight below floor
		matchWith(TraitTechComfort, 0.70, 0.9, 1.2),     // similarity above cutoff
	}}

	got := Challenges(result)

	// Capped at three, ordered by divergence x weight.
	require.Len(t, got, 3)
	assert.Equal(t, "self-motivation", got[0])
	assert.Equal(t, "consistency", got[1])
	assert.Equal(t, "patience for results", got[2])
}

func TestReasoning_Bands(t *testing.T) {
	profile := &catalog.Profile{
		Name:               "Freelancing",
		BestFitPersonality: "Self-directed doers.",
	}

	tests := []struct {
		name     string
		raw      float64
		contains string
	}{
		{name: "close match", raw: 85, contains: "lines up closely"},
		{name: "workable match", raw: 60, contains: "workable fit"},
		{name: "weak match", raw: 30, contains: "different profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Reasoning(profile, ScoreResult{RawScore: tt.raw})
			assert.Contains(t, text, "Freelancing")
			assert.Contains(t, text, tt.contains)
		})
	}
}

func TestConfidence(t *testing.T) {
	assert.InDelta(t, 1.0, Confidence(ScoreResult{RawScore: 100}), 1e-9)
	assert.InDelta(t, 0.75, Confidence(ScoreResult{RawScore: 50}), 1e-9)
	assert.InDelta(t, 0.5, Confidence(ScoreResult{RawScore: 0}), 1e-9)
}
