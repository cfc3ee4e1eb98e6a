// internal/scoring/insights.go
package scoring

import (
	"fmt"
	"sort"

	"bizfit-workers/pkg/catalog"
)

// traitLabels are the human-readable names used in report text.
var traitLabels = map[string]string{
	TraitIncomeAmbition:             "income ambition",
	TraitRiskTolerance:              "risk tolerance",
	TraitTimeCommitment:             "available time",
	TraitUpfrontInvestmentTolerance: "investment capacity",
	TraitSelfMotivation:             "self-motivation",
	TraitTechComfort:                "tech comfort",
	TraitConsistency:                "consistency",
	TraitCreativity:                 "creativity",
	TraitSocialMediaComfort:         "social media comfort",
	TraitSalesComfort:               "sales comfort",
	TraitCommunicationConfidence:    "communication confidence",
	TraitStructurePreference:        "preference for structure",
	TraitCollaborationPreference:    "collaboration style",
	TraitToolLearningWillingness:    "willingness to learn tools",
	TraitPatience:                   "patience for results",
	TraitFeedbackResilience:         "resilience to feedback",
	TraitFocusAbility:               "focus",
	TraitIndependence:               "independence",
	TraitAudienceBuildingInterest:   "interest in audience building",
	TraitWritingInterest:            "writing interest",
	TraitVideoComfort:               "on-camera comfort",
	TraitAnalyticalThinking:         "analytical thinking",
	TraitOrganizationSkill:          "organization",
	TraitCustomerServiceOrientation: "customer orientation",
	TraitPassionAlignment:           "passion alignment",
	TraitMarketingComfort:           "marketing comfort",
}

// Similarity cutoffs for calling a trait an aligned strength or a gap.
const (
	strengthSimilarity  = 0.90
	strengthIdealFloor  = 0.6 // only traits the model actually demands
	challengeSimilarity = 0.55
	challengeWeightFloor = 0.9 // only traits that matter for the score
	maxInsights          = 3
)

// Strengths returns up to three trait names where the user closely matches a
// demand of the profile, strongest alignment first.
func Strengths(r ScoreResult) []string {
	picks := make([]TraitMatch, 0, len(r.Breakdown))
	for _, m := range r.Breakdown {
		if m.Similarity >= strengthSimilarity && m.IdealValue >= strengthIdealFloor {
			picks = append(picks, m)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Similarity*picks[i].Weight > picks[j].Similarity*picks[j].Weight
	})
	return labelTop(picks)
}

// Challenges returns up to three heavily weighted traits where the user
// diverges most from the profile's ideal.
func Challenges(r ScoreResult) []string {
	picks := make([]TraitMatch, 0, len(r.Breakdown))
	for _, m := range r.Breakdown {
		if m.Similarity <= challengeSimilarity && m.Weight >= challengeWeightFloor {
			picks = append(picks, m)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return (1-picks[i].Similarity)*picks[i].Weight > (1-picks[j].Similarity)*picks[j].Weight
	})
	return labelTop(picks)
}

func labelTop(picks []TraitMatch) []string {
	out := make([]string, 0, maxInsights)
	for _, m := range picks {
		if len(out) == maxInsights {
			break
		}
		if label, ok := traitLabels[m.Trait]; ok {
			out = append(out, label)
		}
	}
	return out
}

// Reasoning builds the one-paragraph fallback explanation for a match.
func Reasoning(profile *catalog.Profile, r ScoreResult) string {
	switch {
	case r.RawScore >= 80:
		return fmt.Sprintf("Your profile lines up closely with what %s rewards: %s", profile.Name, profile.BestFitPersonality)
	case r.RawScore >= 55:
		return fmt.Sprintf("%s is a workable fit for you, though a few traits pull in a different direction. %s", profile.Name, profile.BestFitPersonality)
	default:
		return fmt.Sprintf("%s asks for a different profile than yours in several areas that matter for this model.", profile.Name)
	}
}

// Confidence maps the raw (pre-rescale) score into a 0-1 confidence for the
// deterministic path.
func Confidence(r ScoreResult) float64 {
	return clamp01(0.5 + r.RawScore/200)
}
