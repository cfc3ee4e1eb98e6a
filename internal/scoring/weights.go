// internal/scoring/weights.go
package scoring

// TraitWeights maps trait keys to positive relative-importance weights. The
// weight table defines the scored trait set: traits missing from either
// vector are treated as 0, never skipped.
type TraitWeights map[string]float64

// DefaultWeights is the tuned production weight table (range 0.5-1.5). The
// values are product behavior carried over release to release, not derived
// constants; override via configuration, don't edit casually.
func DefaultWeights() TraitWeights {
	return TraitWeights{
		TraitIncomeAmbition:             1.0,
		TraitRiskTolerance:              1.3,
		TraitTimeCommitment:             1.2,
		TraitUpfrontInvestmentTolerance: 1.3,
		TraitSelfMotivation:             1.5,
		TraitTechComfort:                1.2,
		TraitConsistency:                1.4,
		TraitCreativity:                 0.9,
		TraitSocialMediaComfort:         1.0,
		TraitSalesComfort:               1.1,
		TraitCommunicationConfidence:    1.0,
		TraitStructurePreference:        0.7,
		TraitCollaborationPreference:    0.7,
		TraitToolLearningWillingness:    0.8,
		TraitPatience:                   1.2,
		TraitFeedbackResilience:         0.9,
		TraitFocusAbility:               1.0,
		TraitIndependence:               0.9,
		TraitAudienceBuildingInterest:   1.0,
		TraitWritingInterest:            0.8,
		TraitVideoComfort:               0.8,
		TraitAnalyticalThinking:         1.1,
		TraitOrganizationSkill:          0.9,
		TraitCustomerServiceOrientation: 0.9,
		TraitPassionAlignment:           0.8,
		TraitMarketingComfort:           1.0,
	}
}

// Merge returns a copy of w with the given overrides applied. Unknown keys
// and non-positive weights are ignored.
func (w TraitWeights) Merge(overrides map[string]float64) TraitWeights {
	merged := make(TraitWeights, len(w))
	for k, v := range w {
		merged[k] = v
	}
	for k, v := range overrides {
		if _, known := merged[k]; known && v > 0 {
			merged[k] = v
		}
	}
	return merged
}
