package analytics

import (
	"fmt"

	"pulsecheck/internal/model"
)

// maturityInsight picks exactly one overall-maturity insight by score band
func maturityInsight(overallScore int) model.Insight {
	switch {
	case overallScore >= 75:
		return model.Insight{
			Type:        "positive",
			Title:       "Advanced AI Readiness",
			Description: "Your organization shows strong AI readiness across multiple dimensions",
		}
	case overallScore >= 50:
		return model.Insight{
			Type:        "neutral",
			Title:       "Moderate AI Readiness",
			Description: "Good foundation with clear opportunities for improvement",
		}
	default:
		return model.Insight{
			Type:        "warning",
			Title:       "Early Stage AI Readiness",
			Description: "Significant opportunity to build AI capabilities and culture",
		}
	}
}

// GenerateInsights produces the ordered narrative list: maturity first, then
// early adopters, then leadership engagement (each conditionally present).
func GenerateInsights(responses []model.Response, overallScore int) []model.Insight {
	insights := []model.Insight{maturityInsight(overallScore)}

	var earlyAdopters int
	for _, r := range responses {
		if r.CurrentAiUsage == model.UsageDaily {
			earlyAdopters++
		}
	}
	if earlyAdopters > 0 {
		insights = append(insights, model.Insight{
			Type:        "positive",
			Title:       fmt.Sprintf("%d Early Adopters Identified", earlyAdopters),
			Description: "Leverage these power users as champions and trainers",
		})
	}

	var leadership []model.Response
	for _, r := range responses {
		if r.RoleLevel == "Executive" || r.RoleLevel == "Director" {
			leadership = append(leadership, r)
		}
	}
	if len(leadership) > 0 && AdoptionScore(leadership) > 70 {
		insights = append(insights, model.Insight{
			Type:        "positive",
			Title:       "Strong Leadership Engagement",
			Description: "Executive team shows high AI adoption, setting tone from the top",
		})
	}

	return insights
}
