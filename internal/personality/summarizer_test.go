// internal/personality/summarizer_test.go
package personality

import (
	"testing"

	"bizfit-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestSummarizer() *Summarizer {
	return NewSummarizer(DefaultCoefficients())
}

// ==========================
// Trait Score Tests
// ==========================

func TestTraitScores_NeutralAnswersStayAtBaseline(t *testing.T) {
	s := newTestSummarizer()

	tests := []struct {
		name    string
		answers *models.QuizAnswers
	}{
		{name: "empty answers", answers: &models.QuizAnswers{}},
		{
			name: "all neutral ratings",
			answers: &models.QuizAnswers{
				SelfMotivation:          3,
				RiskComfort:             3,
				TechSkill:               3,
				Consistency:             3,
				Creativity:              3,
				SocialMediaComfort:      3,
				SalesComfort:            3,
				CommunicationConfidence: 3,
				FeedbackResilience:      3,
				FocusAbility:            3,
				ContentCreationInterest: 3,
				WritingInterest:         3,
				VideoComfort:            3,
				OrganizationSkill:       3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := s.TraitScores(tt.answers)

			require.Len(t, scores, len(TraitNames))
			for _, trait := range TraitNames {
				assert.Equal(t, 50, scores[trait], "trait %s", trait)
			}
		})
	}
}

func TestTraitScores_Composition(t *testing.T) {
	s := newTestSummarizer()

	tests := []struct {
		name     string
		answers  *models.QuizAnswers
		trait    string
		expected int
	}{
		{
			name: "social comfort clamps at 100",
			answers: &models.QuizAnswers{
				SocialMediaComfort:      5,
				CommunicationConfidence: 4,
				CollaborationStyle:      "team",
			},
			trait:    TraitSocialComfort,
			expected: 100, // 50 + 24 + 10 + 20, clamped
		},
		{
			name: "solo style lowers social comfort",
			answers: &models.QuizAnswers{
				SocialMediaComfort: 2,
				CollaborationStyle: "solo",
			},
			trait:    TraitSocialComfort,
			expected: 23, // 50 - 12 - 15
		},
		{
			name: "risk drops with low comfort and zero budget",
			answers: &models.QuizAnswers{
				RiskComfort:       1,
				UpfrontInvestment: "$0",
			},
			trait:    TraitRiskTolerance,
			expected: 4, // 50 - 36 - 10
		},
		{
			name: "risk rises with top bucket",
			answers: &models.QuizAnswers{
				RiskComfort:       5,
				UpfrontInvestment: "$1000+",
			},
			trait:    TraitRiskTolerance,
			expected: 96, // 50 + 36 + 10
		},
		{
			name: "legacy numeric investment gets the same bonus",
			answers: &models.QuizAnswers{
				RiskComfort:       3,
				UpfrontInvestment: 1500.0,
			},
			trait:    TraitRiskTolerance,
			expected: 60,
		},
		{
			name: "tool bonus is capped",
			answers: &models.QuizAnswers{
				TechSkill:           4,
				FamiliarTools:       []string{"canva", "shopify", "wordpress", "notion", "figma", "zapier"},
				WillingToLearnTools: "yes",
			},
			trait:    TraitTechComfort,
			expected: 90, // 50 + 15 + min(18,15) + 10
		},
		{
			name: "side income ambition lowers motivation",
			answers: &models.QuizAnswers{
				SelfMotivation: 2,
				GrowthAmbition: "side-income",
			},
			trait:    TraitMotivation,
			expected: 27, // 50 - 18 - 5
		},
		{
			name: "feedback resilience floors near zero",
			answers: &models.QuizAnswers{
				FeedbackResilience: 1,
			},
			trait:    TraitFeedbackResilience,
			expected: 10, // 50 - 40
		},
		{
			name: "structured preference",
			answers: &models.QuizAnswers{
				OrganizationSkill: 4,
				WorkStructure:     "structured",
			},
			trait:    TraitStructurePreference,
			expected: 85, // 50 + 10 + 25
		},
		{
			name: "flexible preference",
			answers: &models.QuizAnswers{
				OrganizationSkill: 2,
				WorkStructure:     "flexible",
			},
			trait:    TraitStructurePreference,
			expected: 20, // 50 - 10 - 20
		},
		{
			name: "communication blends video and sales",
			answers: &models.QuizAnswers{
				CommunicationConfidence: 5,
				VideoComfort:            2,
				SalesComfort:            4,
			},
			trait:    TraitCommunicationConfidence,
			expected: 80, // 50 + 32 - 8 + 6
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := s.TraitScores(tt.answers)
			assert.Equal(t, tt.expected, scores[tt.trait])
		})
	}
}

func TestTraitScores_AlwaysInRange(t *testing.T) {
	s := newTestSummarizer()

	extremes := []*models.QuizAnswers{
		{
			SocialMediaComfort: 5, CommunicationConfidence: 5, CollaborationStyle: "team",
			Consistency: 5, OrganizationSkill: 5, WorkStructure: "structured",
			RiskComfort: 5, UpfrontInvestment: "$1000+",
			TechSkill: 5, FamiliarTools: []string{"a", "b", "c", "d", "e", "f", "g"}, WillingToLearnTools: "yes",
			SelfMotivation: 5, FocusAbility: 5, GrowthAmbition: "empire",
			FeedbackResilience: 5, SalesComfort: 5,
			Creativity: 5, ContentCreationInterest: 5, WritingInterest: 5,
			VideoComfort: 5,
		},
		{
			SocialMediaComfort: 1, CommunicationConfidence: 1, CollaborationStyle: "solo",
			Consistency: 1, OrganizationSkill: 1, WorkStructure: "flexible",
			RiskComfort: 1, UpfrontInvestment: "$0",
			TechSkill: 1,
			SelfMotivation: 1, FocusAbility: 1, GrowthAmbition: "side-income",
			FeedbackResilience: 1, SalesComfort: 1,
			Creativity: 1, ContentCreationInterest: 1, WritingInterest: 1,
			VideoComfort: 1,
		},
	}

	for _, answers := range extremes {
		scores := s.TraitScores(answers)
		for trait, score := range scores {
			assert.GreaterOrEqual(t, score, 0, "trait %s", trait)
			assert.LessOrEqual(t, score, 100, "trait %s", trait)
		}
	}
}

// ==========================
// Profile Assembly Tests
// ==========================

func TestSummarize_NilAnswers(t *testing.T) {
	profile := newTestSummarizer().Summarize(nil)

	require.Len(t, profile.TraitScores, len(TraitNames))
	assert.Empty(t, profile.Strengths)
	assert.Empty(t, profile.DevelopmentAreas)
	assert.NotEmpty(t, profile.WorkStyle)
	assert.NotEmpty(t, profile.RiskProfile)
}

func TestSummarize_NarrativesFollowScores(t *testing.T) {
	profile := newTestSummarizer().Summarize(&models.QuizAnswers{
		SelfMotivation: 5,
		FocusAbility:   5,
		GrowthAmbition: "empire",
		RiskComfort:    1,
		UpfrontInvestment: "$0",
		WorkStructure:  "structured",
		OrganizationSkill: 4,
	})

	assert.GreaterOrEqual(t, profile.TraitScores[TraitMotivation], highCutoff)
	assert.LessOrEqual(t, profile.TraitScores[TraitRiskTolerance], lowCutoff)

	assert.Contains(t, profile.Strengths, strengthText[TraitMotivation])
	assert.Contains(t, profile.DevelopmentAreas, developmentText[TraitRiskTolerance])
	assert.Equal(t, workStyle(profile.TraitScores[TraitStructurePreference]), profile.WorkStyle)
	assert.Equal(t, riskProfile(profile.TraitScores[TraitRiskTolerance]), profile.RiskProfile)
}
