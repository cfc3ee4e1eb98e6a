// internal/models/quiz.go
package models

// QuizAnswers is the raw questionnaire submission as captured by the funnel
// UI. Every field is optional: the quiz allows skipping, and partial
// submissions still get analyzed. Likert fields use 1-5; zero means
// unanswered. String fields use "" for unanswered. The normalizer owns the
// per-field defaults, so QuizAnswers is never validated for completeness.
type QuizAnswers struct {
	// Motivation and goals
	Motivation      string  `json:"motivation,omitempty"`      // passion | freedom | money | necessity
	GrowthAmbition  string  `json:"growthAmbition,omitempty"`  // side-income | full-time | scaling | empire
	IncomeGoal      float64 `json:"incomeGoal,omitempty"`      // target monthly income, USD
	Timeline        string  `json:"timeline,omitempty"`        // asap | 3-6 months | 6-12 months | 1-2 years
	SuccessDefinition string `json:"successDefinition,omitempty"` // free text, prompt context only
	BiggestFear     string  `json:"biggestFear,omitempty"`     // free text, prompt context only

	// Capacity and investment
	WeeklyHours       int `json:"weeklyHours,omitempty"` // hours available per week
	// UpfrontInvestment is a string bucket ("$0", "under $250", "$250-$1000",
	// "$1000+") in current quiz versions and a plain dollar number in legacy
	// submissions. The normalizer handles both.
	UpfrontInvestment interface{} `json:"upfrontInvestment,omitempty"`

	// Situation
	CurrentEmployment  string `json:"currentEmployment,omitempty"`  // employed | self-employed | student | unemployed
	PreviousBusiness   string `json:"previousBusiness,omitempty"`   // yes | no
	Education          string `json:"education,omitempty"`          // prompt context only

	// Work preferences (categorical)
	WorkStructure      string `json:"workStructure,omitempty"`      // structured | balanced | flexible
	CollaborationStyle string `json:"collaborationStyle,omitempty"` // team | mixed | solo
	LearningPreference string `json:"learningPreference,omitempty"` // hands-on | reading | video | course
	WillingToLearnTools string `json:"willingToLearnTools,omitempty"` // yes | no

	// Self ratings, 1-5 Likert
	SelfMotivation          int `json:"selfMotivation,omitempty"`
	RiskComfort             int `json:"riskComfort,omitempty"`
	TechSkill               int `json:"techSkill,omitempty"`
	Consistency             int `json:"consistency,omitempty"`
	Creativity              int `json:"creativity,omitempty"`
	SocialMediaComfort      int `json:"socialMediaComfort,omitempty"`
	SalesComfort            int `json:"salesComfort,omitempty"`
	CommunicationConfidence int `json:"communicationConfidence,omitempty"`
	FeedbackResilience      int `json:"feedbackResilience,omitempty"`
	FocusAbility            int `json:"focusAbility,omitempty"`
	SelfDirection           int `json:"selfDirection,omitempty"`
	ContentCreationInterest int `json:"contentCreationInterest,omitempty"`
	WritingInterest         int `json:"writingInterest,omitempty"`
	VideoComfort            int `json:"videoComfort,omitempty"`
	AnalyticalThinking      int `json:"analyticalThinking,omitempty"`
	OrganizationSkill       int `json:"organizationSkill,omitempty"`
	HelpingOthers           int `json:"helpingOthers,omitempty"`
	MarketingComfort        int `json:"marketingComfort,omitempty"`
	StressTolerance         int `json:"stressTolerance,omitempty"`
	PatienceRating          int `json:"patienceRating,omitempty"`

	// Tools the user already knows (Canva, Shopify, WordPress, ...)
	FamiliarTools []string `json:"familiarTools,omitempty"`
}

// LikertOrDefault returns the rating if it is a valid 1-5 answer, otherwise
// the neutral rating 3.
func LikertOrDefault(rating int) int {
	if rating < 1 || rating > 5 {
		return 3
	}
	return rating
}
