// internal/scoring/traits.go
package scoring

// NormalizedTraits maps trait keys to values in [0,1]. The normalizer always
// emits every key in TraitKeys. Polarity is uniform: 0 = weakest/most-averse,
// 1 = strongest/most-open for whatever the key names.
type NormalizedTraits map[string]float64

// Trait keys. The same key set is used by user vectors, catalog ideal
// vectors, and the weight table.
const (
	TraitIncomeAmbition             = "incomeAmbition"             // 1 = aiming for empire-scale income
	TraitRiskTolerance              = "riskTolerance"              // 1 = fully comfortable with risk
	TraitTimeCommitment             = "timeCommitment"             // 1 = 40+ hours/week available
	TraitUpfrontInvestmentTolerance = "upfrontInvestmentTolerance" // 1 = willing to invest $1000+
	TraitSelfMotivation             = "selfMotivation"
	TraitTechComfort                = "techComfort"
	TraitConsistency                = "consistency"
	TraitCreativity                 = "creativity"
	TraitSocialMediaComfort         = "socialMediaComfort"
	TraitSalesComfort               = "salesComfort"
	TraitCommunicationConfidence    = "communicationConfidence"
	TraitStructurePreference        = "structurePreference" // 1 = wants fixed structure, 0 = wants full flexibility
	TraitCollaborationPreference    = "collaborationPreference" // 1 = team-oriented, 0 = solo
	TraitToolLearningWillingness    = "toolLearningWillingness" // binary: 1 = willing to learn new tools
	TraitPatience                   = "patience"                // 1 = fine waiting 1-2 years for profit
	TraitFeedbackResilience         = "feedbackResilience"
	TraitFocusAbility               = "focusAbility"
	TraitIndependence               = "independence"
	TraitAudienceBuildingInterest   = "audienceBuildingInterest"
	TraitWritingInterest            = "writingInterest"
	TraitVideoComfort               = "videoComfort"
	TraitAnalyticalThinking         = "analyticalThinking"
	TraitOrganizationSkill          = "organizationSkill"
	TraitCustomerServiceOrientation = "customerServiceOrientation"
	TraitPassionAlignment           = "passionAlignment" // 1 = motivated by passion rather than necessity
	TraitMarketingComfort           = "marketingComfort"
)

// TraitKeys lists every trait the normalizer emits, in presentation order.
var TraitKeys = []string{
	TraitIncomeAmbition,
	TraitRiskTolerance,
	TraitTimeCommitment,
	TraitUpfrontInvestmentTolerance,
	TraitSelfMotivation,
	TraitTechComfort,
	TraitConsistency,
	TraitCreativity,
	TraitSocialMediaComfort,
	TraitSalesComfort,
	TraitCommunicationConfidence,
	TraitStructurePreference,
	TraitCollaborationPreference,
	TraitToolLearningWillingness,
	TraitPatience,
	TraitFeedbackResilience,
	TraitFocusAbility,
	TraitIndependence,
	TraitAudienceBuildingInterest,
	TraitWritingInterest,
	TraitVideoComfort,
	TraitAnalyticalThinking,
	TraitOrganizationSkill,
	TraitCustomerServiceOrientation,
	TraitPassionAlignment,
	TraitMarketingComfort,
}
