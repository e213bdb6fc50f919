package analytics

import (
	"math"

	"pulsecheck/internal/model"
)

// toolCatalogSize is the number of entries in the reference AI tool list;
// awareness is scored against it.
const toolCatalogSize = 8

// usageScore maps a currentAiUsage answer to 0-100.
// Unknown or missing values score zero.
func usageScore(usage string) float64 {
	switch usage {
	case model.UsageDaily:
		return 100
	case model.UsageWeekly:
		return 75
	case model.UsageMonthly:
		return 50
	case model.UsageRarely:
		return 25
	}
	return 0
}

// readinessScore maps a readinessToAdopt answer to 0-100
func readinessScore(readiness string) float64 {
	switch readiness {
	case model.ReadinessVeryReady:
		return 100
	case model.ReadinessSomewhat:
		return 75
	case model.ReadinessNeutral:
		return 50
	case model.ReadinessNotVeryReady:
		return 25
	}
	return 0
}

// confidenceScore maps an aiSkillsConfidence answer to 0-100
func confidenceScore(confidence string) float64 {
	switch confidence {
	case model.ConfidenceVery:
		return 100
	case model.ConfidenceSomewhat:
		return 75
	case model.ConfidenceNeutral:
		return 50
	case model.ConfidenceNotVery:
		return 25
	}
	return 0
}

// AdoptionScore averages usage scores across all responses
func AdoptionScore(responses []model.Response) int {
	if len(responses) == 0 {
		return 0
	}
	var sum float64
	for _, r := range responses {
		sum += usageScore(r.CurrentAiUsage)
	}
	return round(sum / float64(len(responses)))
}

// AwarenessScore averages tool-awareness scores across all responses.
// Each respondent scores proportionally to how many reference tools they
// recognize, capped at 100.
func AwarenessScore(responses []model.Response) int {
	if len(responses) == 0 {
		return 0
	}
	var sum float64
	for _, r := range responses {
		sum += math.Min(100, float64(len(r.AiToolsAwareness))/toolCatalogSize*100)
	}
	return round(sum / float64(len(responses)))
}

// ReadinessScore averages readiness scores across all responses
func ReadinessScore(responses []model.Response) int {
	if len(responses) == 0 {
		return 0
	}
	var sum float64
	for _, r := range responses {
		sum += readinessScore(r.ReadinessToAdopt)
	}
	return round(sum / float64(len(responses)))
}

// SkillsScore averages confidence scores across all responses
func SkillsScore(responses []model.Response) int {
	if len(responses) == 0 {
		return 0
	}
	var sum float64
	for _, r := range responses {
		sum += confidenceScore(r.AiSkillsConfidence)
	}
	return round(sum / float64(len(responses)))
}

// BarriersScore is inverted: fewer reported barriers scores higher.
// An average of 8 or more barriers per respondent floors the score at 0.
func BarriersScore(responses []model.Response) int {
	if len(responses) == 0 {
		return 0
	}
	var total int
	for _, r := range responses {
		total += len(r.AdoptionBarriers)
	}
	avg := float64(total) / float64(len(responses))
	return round(math.Max(0, 100-avg*12.5))
}

// Fixed category weights for the overall readiness score. Sum to 1.0.
const (
	weightAdoption  = 0.25
	weightAwareness = 0.20
	weightReadiness = 0.30
	weightSkills    = 0.15
	weightBarriers  = 0.10
)

// OverallScore combines the five category scores under the fixed weights
func OverallScore(scores model.CategoryScores) int {
	return round(float64(scores.Adoption)*weightAdoption +
		float64(scores.Awareness)*weightAwareness +
		float64(scores.Readiness)*weightReadiness +
		float64(scores.Skills)*weightSkills +
		float64(scores.Barriers)*weightBarriers)
}

func round(v float64) int {
	return int(math.Round(v))
}
