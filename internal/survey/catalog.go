// Package survey holds the static questionnaire definition served to the
// branded survey UI.
package survey

import "pulsecheck/internal/model"

// ReferenceTools is the awareness question's option list. Its length is the
// denominator of the awareness score, so additions change scoring.
var ReferenceTools = []string{
	"Microsoft Copilot",
	"ChatGPT",
	"Google Gemini",
	"Claude",
	"Perplexity",
	"Midjourney",
	"DALL-E",
	"ElevenLabs",
}

// BarrierOptions is the adoption-barriers option list. The persona
// classifier matches these phrases by substring ("technical skills",
// "privacy", "time", "current methods", ...); keep wording in sync or
// classification silently degrades to the default persona.
var BarrierOptions = []string{
	"Lack of technical skills",
	"Don't know where to start",
	"Data privacy concerns",
	"Ethical concerns",
	"Concerns about accuracy and quality",
	"No time to learn new tools",
	"Integration challenges",
	"Too many options",
	"Happy with current methods",
	"Job security concerns",
}

var defaultDepartments = []string{
	"Sales", "Marketing", "Creative/Design", "Content/Communications",
	"Engineering", "Product", "Operations", "Finance", "Human Resources",
	"Customer Success/Support", "IT", "Other",
}

var defaultLocations = []string{
	"Sydney", "Melbourne", "Brisbane", "Perth", "Remote", "Other",
}

func options(values []string) []model.Option {
	opts := make([]model.Option, len(values))
	for i, v := range values {
		opts[i] = model.Option{Value: v, Label: v}
	}
	return opts
}

// Sections returns the questionnaire for one client. Department and
// location options fall back to the defaults when the client has not
// customized them.
func Sections(client *model.Client) []model.Section {
	departments := defaultDepartments
	if client != nil && len(client.Departments) > 0 {
		departments = client.Departments
	}
	locations := defaultLocations
	if client != nil && len(client.Locations) > 0 {
		locations = client.Locations
	}

	return []model.Section{
		{
			Number:  1,
			Title:   "About You",
			Purpose: "Segmentation and prioritisation analysis",
			Questions: []model.Question{
				{
					ID: 1, Section: "About You", Prompt: "What is your role level?",
					Type: model.QuestionSingleSelect, Field: "roleLevel", Required: true,
					Options: options([]string{
						"Individual Contributor", "Team Lead", "Manager",
						"Senior Manager", "Director", "Executive",
					}),
				},
				{
					ID: 2, Section: "About You", Prompt: "Which department do you work in?",
					Type: model.QuestionSingleSelect, Field: "department", Required: true,
					Options: options(departments),
				},
				{
					ID: 3, Section: "About You", Prompt: "How long have you been with the organisation?",
					Type: model.QuestionSingleSelect, Field: "tenure", Required: true,
					Options: options([]string{
						"Less than 1 year", "1-3 years", "3-5 years", "5+ years",
					}),
				},
				{
					ID: 4, Section: "About You", Prompt: "Which location/office are you based in?",
					Type: model.QuestionSingleSelect, Field: "location", Required: true,
					Options: options(locations),
				},
			},
		},
		{
			Number:  2,
			Title:   "Current AI Adoption",
			Purpose: "Establishes baseline adoption and awareness",
			Questions: []model.Question{
				{
					ID: 5, Section: "Current AI Adoption", Prompt: "How frequently do you use AI tools for work-related tasks?",
					Type: model.QuestionSingleSelect, Field: "currentAiUsage", Required: true,
					Options: options([]string{
						model.UsageNever, model.UsageRarely, model.UsageMonthly,
						model.UsageWeekly, model.UsageDaily,
					}),
				},
				{
					ID: 6, Section: "Current AI Adoption", Prompt: "Which of these AI tools do you recognize?",
					Type: model.QuestionMultiSelect, Field: "aiToolsAwareness", Required: false,
					Options: options(ReferenceTools),
				},
			},
		},
		{
			Number:  3,
			Title:   "Readiness & Barriers",
			Purpose: "Measures appetite for adoption and what stands in the way",
			Questions: []model.Question{
				{
					ID: 7, Section: "Readiness & Barriers", Prompt: "How ready do you feel to adopt AI tools in your daily work?",
					Type: model.QuestionSingleSelect, Field: "readinessToAdopt", Required: true,
					Options: options([]string{
						model.ReadinessNotVeryReady, model.ReadinessNeutral,
						model.ReadinessSomewhat, model.ReadinessVeryReady,
					}),
				},
				{
					ID: 8, Section: "Readiness & Barriers", Prompt: "What barriers, if any, hold you back from using AI more?",
					Type: model.QuestionMultiSelect, Field: "adoptionBarriers", Required: false,
					Options: options(BarrierOptions),
				},
				{
					ID: 9, Section: "Readiness & Barriers", Prompt: "How confident are you in your AI skills?",
					Type: model.QuestionSingleSelect, Field: "aiSkillsConfidence", Required: true,
					Options: options([]string{
						model.ConfidenceNotVery, model.ConfidenceNeutral,
						model.ConfidenceSomewhat, model.ConfidenceVery,
					}),
				},
				{
					ID: 10, Section: "Readiness & Barriers", Prompt: "How interested are you in AI training?",
					Type: model.QuestionSingleSelect, Field: "trainingInterest", Required: false,
					Options: options([]string{
						"Not interested", "Neutral", "Somewhat interested", "Very interested",
					}),
				},
			},
		},
		{
			Number:  4,
			Title:   "Time & Productivity",
			Purpose: "Quantifies opportunity for the executive business case",
			Questions: []model.Question{
				{
					ID: 11, Section: "Time & Productivity", Prompt: "What share of your week goes to repetitive tasks?",
					Type: model.QuestionSingleSelect, Field: "timeOnRepetitiveTasks", Required: false,
					Options: options([]string{"0-10%", "10-25%", "25-50%", "50%+"}),
				},
			},
		},
	}
}
