// internal/scoring/normalizer_test.go
package scoring

import (
	"testing"

	"bizfit-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createCompleteAnswers() *models.QuizAnswers {
	return &models.QuizAnswers{
		Motivation:              "passion",
		GrowthAmbition:          "scaling",
		IncomeGoal:              7500,
		Timeline:                "6-12 months",
		WeeklyHours:             20,
		UpfrontInvestment:       "$250-$1000",
		WorkStructure:           "flexible",
		CollaborationStyle:      "solo",
		WillingToLearnTools:     "yes",
		SelfMotivation:          5,
		RiskComfort:             4,
		TechSkill:               4,
		Consistency:             3,
		Creativity:              5,
		SocialMediaComfort:      2,
		SalesComfort:            1,
		CommunicationConfidence: 3,
		FeedbackResilience:      4,
		FocusAbility:            4,
		SelfDirection:           5,
		ContentCreationInterest: 5,
		WritingInterest:         4,
		VideoComfort:            2,
		AnalyticalThinking:      3,
		OrganizationSkill:       3,
		HelpingOthers:           4,
		MarketingComfort:        3,
	}
}

// ==========================
// Totality Tests
// ==========================

func TestNormalize_EmitsEveryTraitKey(t *testing.T) {
	tests := []struct {
		name    string
		answers *models.QuizAnswers
	}{
		{name: "nil answers", answers: nil},
		{name: "empty answers", answers: &models.QuizAnswers{}},
		{name: "complete answers", answers: createCompleteAnswers()},
		{
			name: "partial answers",
			answers: &models.QuizAnswers{
				RiskComfort: 5,
				WeeklyHours: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := Normalize(tt.answers)

			assert.Len(t, traits, len(TraitKeys))
			for _, key := range TraitKeys {
				value, ok := traits[key]
				assert.True(t, ok, "missing trait %s", key)
				assert.GreaterOrEqual(t, value, 0.0, "trait %s below 0", key)
				assert.LessOrEqual(t, value, 1.0, "trait %s above 1", key)
			}
		})
	}
}

func TestNormalize_EmptyAnswersDefaults(t *testing.T) {
	traits := Normalize(&models.QuizAnswers{})

	// Unanswered Likert ratings count as the neutral 3.
	assert.InDelta(t, 0.5, traits[TraitRiskTolerance], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitSelfMotivation], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitMarketingComfort], 1e-9)

	// Categorical answers fall back to their midpoints.
	assert.InDelta(t, 0.5, traits[TraitStructurePreference], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitCollaborationPreference], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitPatience], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitPassionAlignment], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitUpfrontInvestmentTolerance], 1e-9)
	assert.InDelta(t, 0.5, traits[TraitTimeCommitment], 1e-9)

	// Income ambition blends an absent goal (0) with the neutral ambition
	// lookup (0.5), so its default sits at 0.25.
	assert.InDelta(t, 0.25, traits[TraitIncomeAmbition], 1e-9)

	// The binary trait requires an explicit yes.
	assert.InDelta(t, 0.0, traits[TraitToolLearningWillingness], 1e-9)
}

// ==========================
// Field Mapping Tests
// ==========================

func TestNormalize_LikertScaling(t *testing.T) {
	tests := []struct {
		name     string
		rating   int
		expected float64
	}{
		{name: "minimum rating", rating: 1, expected: 0.0},
		{name: "rating two", rating: 2, expected: 0.25},
		{name: "neutral rating", rating: 3, expected: 0.5},
		{name: "rating four", rating: 4, expected: 0.75},
		{name: "maximum rating", rating: 5, expected: 1.0},
		{name: "unanswered defaults to neutral", rating: 0, expected: 0.5},
		{name: "out of range defaults to neutral", rating: 9, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := Normalize(&models.QuizAnswers{RiskComfort: tt.rating})
			assert.InDelta(t, tt.expected, traits[TraitRiskTolerance], 1e-9)
		})
	}
}

func TestNormalize_IncomeAmbition(t *testing.T) {
	tests := []struct {
		name     string
		goal     float64
		ambition string
		expected float64
	}{
		{name: "empire with goal above ceiling", goal: 30000, ambition: "empire", expected: 1.0},
		{name: "half goal with side income", goal: 7500, ambition: "side-income", expected: 0.35},
		{name: "goal only", goal: 15000, ambition: "", expected: 0.75},
		{name: "negative goal clamped", goal: -500, ambition: "full-time", expected: 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := Normalize(&models.QuizAnswers{IncomeGoal: tt.goal, GrowthAmbition: tt.ambition})
			assert.InDelta(t, tt.expected, traits[TraitIncomeAmbition], 1e-9)
		})
	}
}

func TestNormalize_WeeklyHours(t *testing.T) {
	tests := []struct {
		name     string
		hours    int
		expected float64
	}{
		{name: "ten hours", hours: 10, expected: 0.25},
		{name: "twenty hours", hours: 20, expected: 0.5},
		{name: "full time", hours: 40, expected: 1.0},
		{name: "above ceiling clamped", hours: 60, expected: 1.0},
		{name: "unanswered defaults to neutral", hours: 0, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := Normalize(&models.QuizAnswers{WeeklyHours: tt.hours})
			assert.InDelta(t, tt.expected, traits[TraitTimeCommitment], 1e-9)
		})
	}
}

func TestNormalize_UpfrontInvestment(t *testing.T) {
	tests := []struct {
		name     string
		answer   interface{}
		expected float64
	}{
		{name: "zero bucket", answer: "$0", expected: 0.0},
		{name: "low bucket", answer: "under $250", expected: 0.25},
		{name: "mid bucket", answer: "$250-$1000", expected: 0.6},
		{name: "top bucket", answer: "$1000+", expected: 1.0},
		{name: "bucket is case insensitive", answer: " Under $250 ", expected: 0.25},
		{name: "unknown bucket defaults", answer: "maybe later", expected: 0.5},
		{name: "legacy numeric", answer: 500.0, expected: 0.5},
		{name: "legacy numeric above ceiling", answer: 2500.0, expected: 1.0},
		{name: "legacy numeric int", answer: 250, expected: 0.25},
		{name: "legacy negative clamped", answer: -100.0, expected: 0.0},
		{name: "unanswered", answer: nil, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := Normalize(&models.QuizAnswers{UpfrontInvestment: tt.answer})
			assert.InDelta(t, tt.expected, traits[TraitUpfrontInvestmentTolerance], 1e-9)
		})
	}
}

func TestNormalize_CategoricalScales(t *testing.T) {
	answers := createCompleteAnswers()
	traits := Normalize(answers)

	assert.InDelta(t, 0.0, traits[TraitStructurePreference], 1e-9, "flexible")
	assert.InDelta(t, 0.0, traits[TraitCollaborationPreference], 1e-9, "solo")
	assert.InDelta(t, 0.7, traits[TraitPatience], 1e-9, "6-12 months")
	assert.InDelta(t, 1.0, traits[TraitPassionAlignment], 1e-9, "passion")
	assert.InDelta(t, 1.0, traits[TraitToolLearningWillingness], 1e-9)
}

func TestNormalize_ToolLearningRequiresExplicitYes(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected float64
	}{
		{name: "yes", answer: "yes", expected: 1.0},
		{name: "yes with whitespace and caps", answer: " YES ", expected: 1.0},
		{name: "no", answer: "no", expected: 0.0},
		{name: "unanswered", answer: "", expected: 0.0},
		{name: "anything else", answer: "sure", expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := Normalize(&models.QuizAnswers{WillingToLearnTools: tt.answer})
			assert.InDelta(t, tt.expected, traits[TraitToolLearningWillingness], 1e-9)
		})
	}
}
