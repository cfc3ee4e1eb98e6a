// internal/analysis/prompt.go
package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"bizfit-workers/internal/models"
	"bizfit-workers/internal/personality"
	"bizfit-workers/internal/scoring"
	"bizfit-workers/pkg/catalog"
)

const systemPrompt = `You are an experienced business-model advisor for aspiring online entrepreneurs.
You receive a user's questionnaire answers (raw and normalized) and a catalog of business models.
Score the user's fit against EVERY catalog model and summarize their entrepreneurial personality.

Respond with ONLY a JSON object of this exact shape:
{
  "matches": [
    {
      "modelId": "<id from the catalog>",
      "fitScore": <integer 40-95>,
      "reasoning": "<2-3 sentences, specific to this user>",
      "strengths": ["<aligned trait>", ...],
      "challenges": ["<gap to watch>", ...],
      "confidence": <number 0-1>
    }
  ],
  "personality": {
    "traitScores": {"socialComfort": <0-100>, "consistency": <0-100>, "riskTolerance": <0-100>,
      "techComfort": <0-100>, "motivation": <0-100>, "feedbackResilience": <0-100>,
      "structurePreference": <0-100>, "creativity": <0-100>, "communicationConfidence": <0-100>},
    "strengths": ["..."],
    "developmentAreas": ["..."],
    "workStyle": "...",
    "riskProfile": "..."
  },
  "recommendations": ["<actionable next step>", ...]
}

Rules: include one match entry per catalog model, use only catalog ids, keep fitScore between 40 and 95,
and never invent models that are not in the catalog.`

// buildUserPrompt embeds the human-readable answers, the normalized trait
// vector, and the full catalog so the model grades against the same data the
// deterministic path uses.
func buildUserPrompt(a *models.QuizAnswers, traits scoring.NormalizedTraits, cat *catalog.Catalog) string {
	var parts []string

	parts = append(parts, "User questionnaire answers:")
	parts = append(parts, describeAnswers(a))

	traitJSON, _ := json.MarshalIndent(traits, "", "  ")
	parts = append(parts, "\nNormalized trait vector (0 = weakest, 1 = strongest):")
	parts = append(parts, string(traitJSON))

	parts = append(parts, "\nBusiness model catalog:")
	for _, p := range cat.Profiles {
		entry := map[string]interface{}{
			"id":                 p.ID,
			"name":               p.Name,
			"description":        p.Description,
			"difficulty":         p.Difficulty,
			"timeToProfit":       p.TimeToProfit,
			"startupCost":        p.StartupCost,
			"potentialIncome":    p.PotentialIncome,
			"skills":             p.Skills,
			"bestFitPersonality": p.BestFitPersonality,
		}
		entryJSON, _ := json.Marshal(entry)
		parts = append(parts, string(entryJSON))
	}

	parts = append(parts, fmt.Sprintf("\nExpected personality trait keys: %s", strings.Join(personality.TraitNames, ", ")))

	return strings.Join(parts, "\n")
}

// describeAnswers renders the answered fields as readable lines. Unanswered
// fields are omitted rather than shown as zero values, so the model doesn't
// mistake skips for extreme answers.
func describeAnswers(a *models.QuizAnswers) string {
	var lines []string
	addStr := func(label, v string) {
		if v != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", label, v))
		}
	}
	addRating := func(label string, v int) {
		if v >= 1 && v <= 5 {
			lines = append(lines, fmt.Sprintf("- %s: %d/5", label, v))
		}
	}

	addStr("Primary motivation", a.Motivation)
	addStr("Growth ambition", a.GrowthAmbition)
	if a.IncomeGoal > 0 {
		lines = append(lines, fmt.Sprintf("- Monthly income goal: $%.0f", a.IncomeGoal))
	}
	addStr("Timeline to profit", a.Timeline)
	addStr("Definition of success", a.SuccessDefinition)
	addStr("Biggest fear", a.BiggestFear)
	if a.WeeklyHours > 0 {
		lines = append(lines, fmt.Sprintf("- Hours available per week: %d", a.WeeklyHours))
	}
	if a.UpfrontInvestment != nil {
		lines = append(lines, fmt.Sprintf("- Upfront investment capacity: %v", a.UpfrontInvestment))
	}
	addStr("Current employment", a.CurrentEmployment)
	addStr("Previous business experience", a.PreviousBusiness)
	addStr("Education", a.Education)
	addStr("Preferred work structure", a.WorkStructure)
	addStr("Collaboration style", a.CollaborationStyle)
	addStr("Learning preference", a.LearningPreference)
	addStr("Willing to learn new tools", a.WillingToLearnTools)

	addRating("Self-motivation", a.SelfMotivation)
	addRating("Risk comfort", a.RiskComfort)
	addRating("Tech skill", a.TechSkill)
	addRating("Consistency", a.Consistency)
	addRating("Creativity", a.Creativity)
	addRating("Social media comfort", a.SocialMediaComfort)
	addRating("Sales comfort", a.SalesComfort)
	addRating("Communication confidence", a.CommunicationConfidence)
	addRating("Feedback resilience", a.FeedbackResilience)
	addRating("Focus ability", a.FocusAbility)
	addRating("Self-direction", a.SelfDirection)
	addRating("Content creation interest", a.ContentCreationInterest)
	addRating("Writing interest", a.WritingInterest)
	addRating("On-camera comfort", a.VideoComfort)
	addRating("Analytical thinking", a.AnalyticalThinking)
	addRating("Organization skill", a.OrganizationSkill)
	addRating("Enjoys helping others", a.HelpingOthers)
	addRating("Marketing comfort", a.MarketingComfort)
	addRating("Stress tolerance", a.StressTolerance)
	addRating("Patience", a.PatienceRating)

	if len(a.FamiliarTools) > 0 {
		lines = append(lines, fmt.Sprintf("- Familiar tools: %s", strings.Join(a.FamiliarTools, ", ")))
	}

	if len(lines) == 0 {
		return "- (no questions answered)"
	}
	return strings.Join(lines, "\n")
}
