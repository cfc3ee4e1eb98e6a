// pkg/catalog/default.go
package catalog

// Default returns the built-in archetype catalog. Ideal trait values are
// hand-curated product data tuned against real funnel traffic; treat them as
// configuration, not derived constants.
func Default() *Catalog {
	return &Catalog{
		Version: "2.4",
		Profiles: []Profile{
			{
				ID:                 "freelancing",
				Name:               "Freelancing",
				Description:        "Sell an existing skill directly to clients on a project basis.",
				Difficulty:         "beginner",
				TimeToProfit:       "0-1 months",
				StartupCost:        "$0-$100",
				PotentialIncome:    "$1k-$10k/month",
				Skills:             []string{"client communication", "time management", "a marketable skill"},
				BestFitPersonality: "Self-directed doers who want income fast and are comfortable talking to clients.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.5, "riskTolerance": 0.4, "timeCommitment": 0.6,
					"upfrontInvestmentTolerance": 0.1, "selfMotivation": 0.8, "techComfort": 0.5,
					"consistency": 0.7, "creativity": 0.5, "socialMediaComfort": 0.4,
					"salesComfort": 0.6, "communicationConfidence": 0.8, "structurePreference": 0.5,
					"collaborationPreference": 0.3, "toolLearningWillingness": 1.0, "patience": 0.3,
					"feedbackResilience": 0.6, "focusAbility": 0.7, "independence": 0.9,
					"audienceBuildingInterest": 0.2, "writingInterest": 0.5, "videoComfort": 0.3,
					"analyticalThinking": 0.5, "organizationSkill": 0.7, "customerServiceOrientation": 0.8,
					"passionAlignment": 0.6, "marketingComfort": 0.4,
				},
			},
			{
				ID:                 "ecommerce",
				Name:               "E-commerce",
				Description:        "Sell physical products through an online storefront.",
				Difficulty:         "intermediate",
				TimeToProfit:       "3-6 months",
				StartupCost:        "$500-$5000",
				PotentialIncome:    "$2k-$50k/month",
				Skills:             []string{"product research", "paid ads", "logistics"},
				BestFitPersonality: "Analytical risk-takers with capital to test products and patience to iterate.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.8, "riskTolerance": 0.8, "timeCommitment": 0.7,
					"upfrontInvestmentTolerance": 0.9, "selfMotivation": 0.7, "techComfort": 0.6,
					"consistency": 0.6, "creativity": 0.5, "socialMediaComfort": 0.6,
					"salesComfort": 0.7, "communicationConfidence": 0.4, "structurePreference": 0.6,
					"collaborationPreference": 0.4, "toolLearningWillingness": 1.0, "patience": 0.7,
					"feedbackResilience": 0.7, "focusAbility": 0.6, "independence": 0.7,
					"audienceBuildingInterest": 0.5, "writingInterest": 0.3, "videoComfort": 0.3,
					"analyticalThinking": 0.9, "organizationSkill": 0.7, "customerServiceOrientation": 0.6,
					"passionAlignment": 0.4, "marketingComfort": 0.9,
				},
			},
			{
				ID:                 "saas",
				Name:               "SaaS / Micro-software",
				Description:        "Build and sell subscription software solving a niche problem.",
				Difficulty:         "advanced",
				TimeToProfit:       "6-18 months",
				StartupCost:        "$100-$2000",
				PotentialIncome:    "$1k-$100k/month",
				Skills:             []string{"programming or no-code", "product design", "customer discovery"},
				BestFitPersonality: "Patient technical builders who enjoy deep problems and delayed payoff.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.9, "riskTolerance": 0.7, "timeCommitment": 0.8,
					"upfrontInvestmentTolerance": 0.5, "selfMotivation": 0.9, "techComfort": 1.0,
					"consistency": 0.8, "creativity": 0.7, "socialMediaComfort": 0.3,
					"salesComfort": 0.4, "communicationConfidence": 0.4, "structurePreference": 0.7,
					"collaborationPreference": 0.4, "toolLearningWillingness": 1.0, "patience": 1.0,
					"feedbackResilience": 0.8, "focusAbility": 0.9, "independence": 0.8,
					"audienceBuildingInterest": 0.3, "writingInterest": 0.4, "videoComfort": 0.2,
					"analyticalThinking": 1.0, "organizationSkill": 0.7, "customerServiceOrientation": 0.5,
					"passionAlignment": 0.7, "marketingComfort": 0.4,
				},
			},
			{
				ID:                 "content-creation",
				Name:               "Content Creation",
				Description:        "Build an audience around a topic and monetize through ads, sponsors and products.",
				Difficulty:         "intermediate",
				TimeToProfit:       "6-12 months",
				StartupCost:        "$0-$500",
				PotentialIncome:    "$500-$50k/month",
				Skills:             []string{"writing or video", "consistency", "audience empathy"},
				BestFitPersonality: "Creative, consistent people who like being visible and can wait for compounding growth.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.6, "riskTolerance": 0.5, "timeCommitment": 0.6,
					"upfrontInvestmentTolerance": 0.2, "selfMotivation": 0.8, "techComfort": 0.5,
					"consistency": 1.0, "creativity": 1.0, "socialMediaComfort": 1.0,
					"salesComfort": 0.3, "communicationConfidence": 0.8, "structurePreference": 0.3,
					"collaborationPreference": 0.2, "toolLearningWillingness": 1.0, "patience": 0.9,
					"feedbackResilience": 0.9, "focusAbility": 0.6, "independence": 0.8,
					"audienceBuildingInterest": 1.0, "writingInterest": 0.8, "videoComfort": 0.9,
					"analyticalThinking": 0.4, "organizationSkill": 0.5, "customerServiceOrientation": 0.4,
					"passionAlignment": 0.9, "marketingComfort": 0.6,
				},
			},
			{
				ID:                 "coaching-consulting",
				Name:               "Coaching & Consulting",
				Description:        "Package expertise into 1:1 or group advisory engagements.",
				Difficulty:         "beginner",
				TimeToProfit:       "1-3 months",
				StartupCost:        "$0-$300",
				PotentialIncome:    "$2k-$30k/month",
				Skills:             []string{"domain expertise", "listening", "positioning"},
				BestFitPersonality: "Strong communicators who genuinely enjoy helping people improve.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.6, "riskTolerance": 0.4, "timeCommitment": 0.5,
					"upfrontInvestmentTolerance": 0.1, "selfMotivation": 0.7, "techComfort": 0.3,
					"consistency": 0.6, "creativity": 0.4, "socialMediaComfort": 0.6,
					"salesComfort": 0.8, "communicationConfidence": 1.0, "structurePreference": 0.5,
					"collaborationPreference": 0.8, "toolLearningWillingness": 0.0, "patience": 0.4,
					"feedbackResilience": 0.6, "focusAbility": 0.5, "independence": 0.6,
					"audienceBuildingInterest": 0.6, "writingInterest": 0.4, "videoComfort": 0.7,
					"analyticalThinking": 0.5, "organizationSkill": 0.6, "customerServiceOrientation": 1.0,
					"passionAlignment": 0.9, "marketingComfort": 0.6,
				},
			},
			{
				ID:                 "digital-agency",
				Name:               "Digital Agency",
				Description:        "Run a small team delivering marketing or development services to businesses.",
				Difficulty:         "advanced",
				TimeToProfit:       "3-6 months",
				StartupCost:        "$500-$3000",
				PotentialIncome:    "$5k-$100k/month",
				Skills:             []string{"sales", "delegation", "service delivery"},
				BestFitPersonality: "Organized leaders comfortable selling and managing people under pressure.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 1.0, "riskTolerance": 0.7, "timeCommitment": 0.9,
					"upfrontInvestmentTolerance": 0.6, "selfMotivation": 0.9, "techComfort": 0.6,
					"consistency": 0.8, "creativity": 0.5, "socialMediaComfort": 0.5,
					"salesComfort": 1.0, "communicationConfidence": 0.9, "structurePreference": 0.8,
					"collaborationPreference": 1.0, "toolLearningWillingness": 1.0, "patience": 0.5,
					"feedbackResilience": 0.8, "focusAbility": 0.7, "independence": 0.5,
					"audienceBuildingInterest": 0.4, "writingInterest": 0.3, "videoComfort": 0.5,
					"analyticalThinking": 0.7, "organizationSkill": 1.0, "customerServiceOrientation": 0.8,
					"passionAlignment": 0.5, "marketingComfort": 0.9,
				},
			},
			{
				ID:                 "affiliate-marketing",
				Name:               "Affiliate Marketing",
				Description:        "Earn commissions recommending other companies' products through content and SEO.",
				Difficulty:         "beginner",
				TimeToProfit:       "6-12 months",
				StartupCost:        "$50-$500",
				PotentialIncome:    "$200-$20k/month",
				Skills:             []string{"SEO", "copywriting", "niche research"},
				BestFitPersonality: "Patient solo writers who prefer working behind the scenes.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.5, "riskTolerance": 0.4, "timeCommitment": 0.4,
					"upfrontInvestmentTolerance": 0.3, "selfMotivation": 0.7, "techComfort": 0.6,
					"consistency": 0.8, "creativity": 0.6, "socialMediaComfort": 0.3,
					"salesComfort": 0.2, "communicationConfidence": 0.3, "structurePreference": 0.4,
					"collaborationPreference": 0.1, "toolLearningWillingness": 1.0, "patience": 0.9,
					"feedbackResilience": 0.5, "focusAbility": 0.7, "independence": 1.0,
					"audienceBuildingInterest": 0.7, "writingInterest": 1.0, "videoComfort": 0.1,
					"analyticalThinking": 0.8, "organizationSkill": 0.6, "customerServiceOrientation": 0.2,
					"passionAlignment": 0.5, "marketingComfort": 0.8,
				},
			},
			{
				ID:                 "local-services",
				Name:               "Local Services",
				Description:        "Offer an in-person service business in your area, from cleaning to photography.",
				Difficulty:         "beginner",
				TimeToProfit:       "0-2 months",
				StartupCost:        "$100-$2000",
				PotentialIncome:    "$1k-$15k/month",
				Skills:             []string{"reliability", "local marketing", "customer service"},
				BestFitPersonality: "Practical, dependable people who prefer real-world work over screens.",
				IdealTraits: map[string]float64{
					"incomeAmbition": 0.4, "riskTolerance": 0.3, "timeCommitment": 0.7,
					"upfrontInvestmentTolerance": 0.6, "selfMotivation": 0.7, "techComfort": 0.2,
					"consistency": 0.9, "creativity": 0.3, "socialMediaComfort": 0.3,
					"salesComfort": 0.6, "communicationConfidence": 0.7, "structurePreference": 0.8,
					"collaborationPreference": 0.6, "toolLearningWillingness": 0.0, "patience": 0.3,
					"feedbackResilience": 0.6, "focusAbility": 0.6, "independence": 0.6,
					"audienceBuildingInterest": 0.1, "writingInterest": 0.1, "videoComfort": 0.2,
					"analyticalThinking": 0.4, "organizationSkill": 0.8, "customerServiceOrientation": 1.0,
					"passionAlignment": 0.4, "marketingComfort": 0.5,
				},
			},
		},
	}
}
