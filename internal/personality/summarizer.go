// internal/personality/summarizer.go
package personality

import (
	"math"
	"strings"

	"bizfit-workers/internal/models"
)

// The nine report traits, each scored 0-100.
const (
	TraitSocialComfort           = "socialComfort"
	TraitConsistency             = "consistency"
	TraitRiskTolerance           = "riskTolerance"
	TraitTechComfort             = "techComfort"
	TraitMotivation              = "motivation"
	TraitFeedbackResilience      = "feedbackResilience"
	TraitStructurePreference     = "structurePreference"
	TraitCreativity              = "creativity"
	TraitCommunicationConfidence = "communicationConfidence"
)

// TraitNames lists the report traits in presentation order.
var TraitNames = []string{
	TraitSocialComfort,
	TraitConsistency,
	TraitRiskTolerance,
	TraitTechComfort,
	TraitMotivation,
	TraitFeedbackResilience,
	TraitStructurePreference,
	TraitCreativity,
	TraitCommunicationConfidence,
}

const baseline = 50.0

// Coefficients holds the per-point Likert weights and categorical bonuses
// behind each trait score. These are tuned product values, kept replaceable
// so retuning doesn't mean a code change.
type Coefficients struct {
	SocialMediaPerPoint   float64
	SocialCommsPerPoint   float64
	TeamCollabBonus       float64
	SoloCollabPenalty     float64

	ConsistencyPerPoint   float64
	OrganizationPerPoint  float64
	StructuredBonus       float64

	RiskComfortPerPoint   float64
	HighInvestmentBonus   float64
	ZeroInvestmentPenalty float64

	TechSkillPerPoint     float64
	PerToolBonus          float64
	ToolBonusCap          float64
	LearnToolsBonus       float64

	SelfMotivationPerPoint float64
	FocusPerPoint          float64
	EmpireAmbitionBonus    float64
	SideIncomePenalty      float64

	FeedbackPerPoint  float64
	SalesPerPoint     float64

	StructuredPrefBonus  float64
	FlexiblePrefPenalty  float64
	StructureOrgPerPoint float64

	CreativityPerPoint float64
	ContentPerPoint    float64
	WritingPerPoint    float64

	CommsPerPoint float64
	VideoPerPoint float64
	CommsSalesPerPoint float64
}

// DefaultCoefficients returns the production tuning.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		SocialMediaPerPoint: 12, SocialCommsPerPoint: 10,
		TeamCollabBonus: 20, SoloCollabPenalty: -15,

		ConsistencyPerPoint: 18, OrganizationPerPoint: 10, StructuredBonus: 10,

		RiskComfortPerPoint: 18, HighInvestmentBonus: 10, ZeroInvestmentPenalty: -10,

		TechSkillPerPoint: 15, PerToolBonus: 3, ToolBonusCap: 15, LearnToolsBonus: 10,

		SelfMotivationPerPoint: 18, FocusPerPoint: 8,
		EmpireAmbitionBonus: 10, SideIncomePenalty: -5,

		FeedbackPerPoint: 20, SalesPerPoint: 5,

		StructuredPrefBonus: 25, FlexiblePrefPenalty: -20, StructureOrgPerPoint: 10,

		CreativityPerPoint: 18, ContentPerPoint: 8, WritingPerPoint: 4,

		CommsPerPoint: 16, VideoPerPoint: 8, CommsSalesPerPoint: 6,
	}
}

// Summarizer produces the deterministic personality profile from raw quiz
// answers. Stateless; safe for concurrent use.
type Summarizer struct {
	coeff Coefficients
}

func NewSummarizer(coeff Coefficients) *Summarizer {
	return &Summarizer{coeff: coeff}
}

// Summarize computes all nine trait scores and the derived narrative fields.
func (s *Summarizer) Summarize(a *models.QuizAnswers) models.PersonalityProfile {
	if a == nil {
		a = &models.QuizAnswers{}
	}
	scores := s.TraitScores(a)
	return models.PersonalityProfile{
		TraitScores:      scores,
		Strengths:        strengths(scores),
		DevelopmentAreas: developmentAreas(scores),
		WorkStyle:        workStyle(scores[TraitStructurePreference]),
		RiskProfile:      riskProfile(scores[TraitRiskTolerance]),
	}
}

// TraitScores computes the nine 0-100 scores. Every trait starts at the
// 50 baseline, adds (rating-3) x per-point weight for each contributing
// Likert answer plus fixed categorical adjustments, then clamps and rounds.
func (s *Summarizer) TraitScores(a *models.QuizAnswers) map[string]int {
	c := s.coeff
	collab := strings.ToLower(strings.TrimSpace(a.CollaborationStyle))
	structure := strings.ToLower(strings.TrimSpace(a.WorkStructure))
	ambition := strings.ToLower(strings.TrimSpace(a.GrowthAmbition))

	social := baseline +
		likertDelta(a.SocialMediaComfort)*c.SocialMediaPerPoint +
		likertDelta(a.CommunicationConfidence)*c.SocialCommsPerPoint
	switch collab {
	case "team":
		social += c.TeamCollabBonus
	case "solo":
		social += c.SoloCollabPenalty
	}

	consistency := baseline +
		likertDelta(a.Consistency)*c.ConsistencyPerPoint +
		likertDelta(a.OrganizationSkill)*c.OrganizationPerPoint
	if structure == "structured" {
		consistency += c.StructuredBonus
	}

	risk := baseline + likertDelta(a.RiskComfort)*c.RiskComfortPerPoint
	switch bucket := a.UpfrontInvestment.(type) {
	case string:
		switch strings.ToLower(strings.TrimSpace(bucket)) {
		case "$1000+":
			risk += c.HighInvestmentBonus
		case "$0":
			risk += c.ZeroInvestmentPenalty
		}
	case float64:
		if bucket >= 1000 {
			risk += c.HighInvestmentBonus
		} else if bucket <= 0 {
			risk += c.ZeroInvestmentPenalty
		}
	}

	tech := baseline +
		likertDelta(a.TechSkill)*c.TechSkillPerPoint +
		math.Min(float64(len(a.FamiliarTools))*c.PerToolBonus, c.ToolBonusCap)
	if strings.EqualFold(strings.TrimSpace(a.WillingToLearnTools), "yes") {
		tech += c.LearnToolsBonus
	}

	motivation := baseline +
		likertDelta(a.SelfMotivation)*c.SelfMotivationPerPoint +
		likertDelta(a.FocusAbility)*c.FocusPerPoint
	switch ambition {
	case "empire":
		motivation += c.EmpireAmbitionBonus
	case "side-income":
		motivation += c.SideIncomePenalty
	}

	feedback := baseline +
		likertDelta(a.FeedbackResilience)*c.FeedbackPerPoint +
		likertDelta(a.SalesComfort)*c.SalesPerPoint

	structPref := baseline + likertDelta(a.OrganizationSkill)*c.StructureOrgPerPoint
	switch structure {
	case "structured":
		structPref += c.StructuredPrefBonus
	case "flexible":
		structPref += c.FlexiblePrefPenalty
	}

	creativity := baseline +
		likertDelta(a.Creativity)*c.CreativityPerPoint +
		likertDelta(a.ContentCreationInterest)*c.ContentPerPoint +
		likertDelta(a.WritingInterest)*c.WritingPerPoint

	comms := baseline +
		likertDelta(a.CommunicationConfidence)*c.CommsPerPoint +
		likertDelta(a.VideoComfort)*c.VideoPerPoint +
		likertDelta(a.SalesComfort)*c.CommsSalesPerPoint

	return map[string]int{
		TraitSocialComfort:           clampScore(social),
		TraitConsistency:             clampScore(consistency),
		TraitRiskTolerance:           clampScore(risk),
		TraitTechComfort:             clampScore(tech),
		TraitMotivation:              clampScore(motivation),
		TraitFeedbackResilience:      clampScore(feedback),
		TraitStructurePreference:     clampScore(structPref),
		TraitCreativity:              clampScore(creativity),
		TraitCommunicationConfidence: clampScore(comms),
	}
}

// likertDelta is (rating - 3) with the unanswered default applied, so
// neutral answers contribute nothing.
func likertDelta(rating int) float64 {
	return float64(models.LikertOrDefault(rating) - 3)
}

func clampScore(v float64) int {
	return int(math.Round(math.Min(math.Max(v, 0), 100)))
}
