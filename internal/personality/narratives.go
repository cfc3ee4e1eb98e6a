// internal/personality/narratives.go
package personality

// Universal high/low cutoffs for narrative derivation. A score at or above
// highCutoff reads as a strength; at or below lowCutoff as a development
// area.
const (
	highCutoff = 70
	lowCutoff  = 40
)

// strengthText and developmentText phrase each trait for the report. Only
// traits with an entry can appear in the respective list.
var strengthText = map[string]string{
	TraitMotivation:              "Self-motivated and able to push projects forward without external pressure",
	TraitConsistency:             "Consistent: shows up and executes even when results are slow",
	TraitRiskTolerance:           "Comfortable taking calculated risks",
	TraitTechComfort:             "Quick to pick up new tools and platforms",
	TraitSocialComfort:           "At ease engaging people publicly and online",
	TraitFeedbackResilience:      "Handles criticism and rejection without losing momentum",
	TraitCreativity:              "Generates original ideas and content angles",
	TraitCommunicationConfidence: "Communicates clearly and persuasively",
	TraitStructurePreference:     "Thrives on process and well-defined systems",
}

var developmentText = map[string]string{
	TraitMotivation:              "Building self-driven work habits",
	TraitConsistency:             "Sticking with routines long enough to compound",
	TraitRiskTolerance:           "Getting comfortable with uncertainty and calculated risk",
	TraitTechComfort:             "Confidence with digital tools",
	TraitSocialComfort:           "Comfort with visibility and public engagement",
	TraitFeedbackResilience:      "Resilience to criticism and rejection",
	TraitCreativity:              "Creative idea generation",
	TraitCommunicationConfidence: "Confidence in written and spoken communication",
}

func strengths(scores map[string]int) []string {
	out := []string{}
	for _, trait := range TraitNames {
		if scores[trait] >= highCutoff {
			if text, ok := strengthText[trait]; ok {
				out = append(out, text)
			}
		}
	}
	return out
}

func developmentAreas(scores map[string]int) []string {
	out := []string{}
	for _, trait := range TraitNames {
		if scores[trait] <= lowCutoff {
			if text, ok := developmentText[trait]; ok {
				out = append(out, text)
			}
		}
	}
	return out
}

func workStyle(structureScore int) string {
	switch {
	case structureScore >= highCutoff:
		return "You work best inside clear structure: fixed routines, checklists, and defined milestones keep you productive."
	case structureScore <= lowCutoff:
		return "You work best with autonomy and flexibility, adapting your approach day to day rather than following rigid plans."
	default:
		return "You balance structure and flexibility: light planning with room to adjust suits you better than either extreme."
	}
}

func riskProfile(riskScore int) string {
	switch {
	case riskScore >= highCutoff:
		return "Risk-embracing: you are willing to invest money and time on uncertain bets when the upside justifies it."
	case riskScore <= lowCutoff:
		return "Risk-cautious: you prefer low-investment, proven paths and steady progress over big swings."
	default:
		return "Risk-balanced: you will take measured chances once you have validated the basics."
	}
}

// Recommendations derives free-text next-step suggestions from the profile.
func Recommendations(scores map[string]int) []string {
	recs := []string{}
	if scores[TraitMotivation] >= highCutoff && scores[TraitConsistency] >= highCutoff {
		recs = append(recs, "Your discipline profile supports models with delayed payoff, so don't rule out the slower-compounding options.")
	}
	if scores[TraitRiskTolerance] <= lowCutoff {
		recs = append(recs, "Start with a low-investment model and reinvest early revenue instead of committing capital up front.")
	}
	if scores[TraitTechComfort] <= lowCutoff {
		recs = append(recs, "Block out time for tooling basics first; most models reward even modest technical fluency.")
	}
	if scores[TraitSocialComfort] >= highCutoff {
		recs = append(recs, "Lean into audience-facing channels early; visibility is a multiplier for your top matches.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Pick your top match and commit to a 30-day validation sprint before evaluating alternatives.")
	}
	return recs
}
