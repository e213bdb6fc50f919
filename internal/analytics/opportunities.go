package analytics

import "pulsecheck/internal/model"

// opportunityRule pairs a trigger predicate with its fixed recommendation.
// Rules are independent: every rule is evaluated and any number can fire.
type opportunityRule struct {
	trigger func(responses []model.Response) bool
	result  model.Opportunity
}

var opportunityRules = []opportunityRule{
	{
		// Readiness outpaces actual usage
		trigger: func(responses []model.Response) bool {
			total := float64(len(responses))
			var highInterest, lowAdoption int
			for _, r := range responses {
				if r.ReadinessToAdopt == model.ReadinessVeryReady || r.ReadinessToAdopt == model.ReadinessSomewhat {
					highInterest++
				}
				if r.CurrentAiUsage == model.UsageNever || r.CurrentAiUsage == model.UsageRarely {
					lowAdoption++
				}
			}
			return float64(highInterest)/total > 0.6 && float64(lowAdoption)/total > 0.4
		},
		result: model.Opportunity{
			Title:       "High Interest, Low Adoption",
			Description: "Significant gap between readiness and actual usage suggests opportunity for quick wins",
			Impact:      "High",
			Effort:      "Medium",
		},
	},
	{
		// Low confidence across a meaningful share of respondents.
		// "Not confident at all" is carried over from the source rules even
		// though the confidence question never produces it.
		trigger: func(responses []model.Response) bool {
			var lowConfidence int
			for _, r := range responses {
				if r.AiSkillsConfidence == model.ConfidenceNotVery || r.AiSkillsConfidence == "Not confident at all" {
					lowConfidence++
				}
			}
			return float64(lowConfidence)/float64(len(responses)) > 0.3
		},
		result: model.Opportunity{
			Title:       "Skills Development Opportunity",
			Description: "Investment in training could significantly boost adoption",
			Impact:      "High",
			Effort:      "Medium",
		},
	},
	{
		// Heavy repetitive-task load
		trigger: func(responses []model.Response) bool {
			var timeSpent int
			for _, r := range responses {
				if r.TimeOnRepetitiveTasks == "25-50%" || r.TimeOnRepetitiveTasks == "50%+" {
					timeSpent++
				}
			}
			return float64(timeSpent)/float64(len(responses)) > 0.4
		},
		result: model.Opportunity{
			Title:       "Automation Potential",
			Description: "High time spent on repetitive tasks indicates strong ROI potential",
			Impact:      "Very High",
			Effort:      "Medium",
		},
	},
}

// IdentifyOpportunities evaluates every threshold rule over the population
func IdentifyOpportunities(responses []model.Response) []model.Opportunity {
	opportunities := []model.Opportunity{}
	if len(responses) == 0 {
		return opportunities
	}
	for _, rule := range opportunityRules {
		if rule.trigger(responses) {
			opportunities = append(opportunities, rule.result)
		}
	}
	return opportunities
}
