// internal/scoring/normalizer.go
package scoring

import (
	"math"
	"strings"

	"bizfit-workers/internal/models"
)

// Per-field ceilings for the clamp-and-scale rules.
const (
	incomeGoalCeiling  = 15000.0 // monthly USD; everything above counts the same
	weeklyHoursCeiling = 40.0
	investmentCeiling  = 1000.0 // numeric legacy answers, USD
)

// growthAmbitionScale maps the growth-ambition answer to an ambition level.
var growthAmbitionScale = map[string]float64{
	"side-income": 0.2,
	"full-time":   0.5,
	"scaling":     0.8,
	"empire":      1.0,
}

// timelineScale: longer acceptable timelines mean more patience.
var timelineScale = map[string]float64{
	"asap":        0.1,
	"3-6 months":  0.4,
	"6-12 months": 0.7,
	"1-2 years":   1.0,
}

var workStructureScale = map[string]float64{
	"structured": 1.0,
	"balanced":   0.5,
	"flexible":   0.0,
}

var collaborationScale = map[string]float64{
	"team":  1.0,
	"mixed": 0.5,
	"solo":  0.0,
}

var motivationScale = map[string]float64{
	"passion":   1.0,
	"freedom":   0.7,
	"money":     0.5,
	"necessity": 0.3,
}

// investmentBuckets maps the current quiz's string answers for upfront
// investment. Legacy numeric answers are scaled against investmentCeiling
// instead.
var investmentBuckets = map[string]float64{
	"$0":         0.0,
	"under $250": 0.25,
	"$250-$1000": 0.6,
	"$1000+":     1.0,
}

// Normalize converts a raw quiz submission into the full trait vector. It is
// total: every key in TraitKeys is always present, any missing or unmapped
// answer falls back to its documented default, and all outputs land in [0,1].
func Normalize(a *models.QuizAnswers) NormalizedTraits {
	if a == nil {
		a = &models.QuizAnswers{}
	}

	t := make(NormalizedTraits, len(TraitKeys))

	// incomeAmbition blends the concrete income goal with the stated growth
	// ambition. An unanswered goal contributes 0, so the neutral default for
	// this trait is 0.25, not 0.5.
	goal := clamp01(math.Min(math.Max(a.IncomeGoal, 0), incomeGoalCeiling) / incomeGoalCeiling)
	t[TraitIncomeAmbition] = (goal + lookupScale(growthAmbitionScale, a.GrowthAmbition, 0.5)) / 2

	t[TraitRiskTolerance] = likert(a.RiskComfort)
	t[TraitTimeCommitment] = weeklyHours(a.WeeklyHours)
	t[TraitUpfrontInvestmentTolerance] = upfrontInvestment(a.UpfrontInvestment)

	t[TraitSelfMotivation] = likert(a.SelfMotivation)
	t[TraitTechComfort] = likert(a.TechSkill)
	t[TraitConsistency] = likert(a.Consistency)
	t[TraitCreativity] = likert(a.Creativity)
	t[TraitSocialMediaComfort] = likert(a.SocialMediaComfort)
	t[TraitSalesComfort] = likert(a.SalesComfort)
	t[TraitCommunicationConfidence] = likert(a.CommunicationConfidence)
	t[TraitFeedbackResilience] = likert(a.FeedbackResilience)
	t[TraitFocusAbility] = likert(a.FocusAbility)
	t[TraitIndependence] = likert(a.SelfDirection)
	t[TraitAudienceBuildingInterest] = likert(a.ContentCreationInterest)
	t[TraitWritingInterest] = likert(a.WritingInterest)
	t[TraitVideoComfort] = likert(a.VideoComfort)
	t[TraitAnalyticalThinking] = likert(a.AnalyticalThinking)
	t[TraitOrganizationSkill] = likert(a.OrganizationSkill)
	t[TraitCustomerServiceOrientation] = likert(a.HelpingOthers)
	t[TraitMarketingComfort] = likert(a.MarketingComfort)

	t[TraitStructurePreference] = lookupScale(workStructureScale, a.WorkStructure, 0.5)
	t[TraitCollaborationPreference] = lookupScale(collaborationScale, a.CollaborationStyle, 0.5)
	t[TraitPatience] = lookupScale(timelineScale, a.Timeline, 0.5)
	t[TraitPassionAlignment] = lookupScale(motivationScale, a.Motivation, 0.5)

	// Binary: only an explicit "yes" counts.
	if strings.EqualFold(strings.TrimSpace(a.WillingToLearnTools), "yes") {
		t[TraitToolLearningWillingness] = 1.0
	} else {
		t[TraitToolLearningWillingness] = 0.0
	}

	return t
}

// likert rescales a 1-5 rating to [0,1]; unanswered ratings count as the
// neutral 3, yielding 0.5.
func likert(rating int) float64 {
	return float64(models.LikertOrDefault(rating)-1) / 4.0
}

// weeklyHours scales available hours against a 40h ceiling. Zero means
// unanswered and defaults to neutral, since a genuine zero-hours answer is
// not a valid quiz submission.
func weeklyHours(hours int) float64 {
	if hours <= 0 {
		return 0.5
	}
	return clamp01(float64(hours) / weeklyHoursCeiling)
}

// upfrontInvestment handles the string-bucket / legacy-numeric duality.
func upfrontInvestment(raw interface{}) float64 {
	switch v := raw.(type) {
	case string:
		return lookupScale(investmentBuckets, v, 0.5)
	case float64:
		return clamp01(math.Max(v, 0) / investmentCeiling)
	case int:
		return clamp01(math.Max(float64(v), 0) / investmentCeiling)
	default:
		return 0.5
	}
}

func lookupScale(table map[string]float64, key string, def float64) float64 {
	if v, ok := table[strings.ToLower(strings.TrimSpace(key))]; ok {
		return v
	}
	return def
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
