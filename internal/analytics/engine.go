// Package analytics turns a batch of survey responses into the computed
// readiness report: category scores, segment breakdowns, barrier rankings,
// opportunities, insights, and persona classification. It performs no I/O
// and holds no state; every call recomputes from the input slice.
package analytics

import "pulsecheck/internal/model"

// Build computes the full analytics report for one client's responses.
// Returns nil for an empty batch; callers map that to model.EmptyReport.
func Build(responses []model.Response) *model.AnalyticsReport {
	if len(responses) == 0 {
		return nil
	}

	scores := model.CategoryScores{
		Adoption:  AdoptionScore(responses),
		Awareness: AwarenessScore(responses),
		Readiness: ReadinessScore(responses),
		Barriers:  BarriersScore(responses),
		Skills:    SkillsScore(responses),
	}
	overall := OverallScore(scores)

	return &model.AnalyticsReport{
		TotalResponses: len(responses),
		OverallScore:   overall,
		CategoryScores: scores,
		Segmentation: model.Segmentation{
			ByDepartment: SegmentBy(responses, ByDepartment),
			ByRoleLevel:  SegmentBy(responses, ByRoleLevel),
			ByLocation:   SegmentBy(responses, ByLocation),
			ByTenure:     SegmentBy(responses, ByTenure),
		},
		Barriers:          AnalyzeBarriers(responses),
		Opportunities:     IdentifyOpportunities(responses),
		Insights:          GenerateInsights(responses, overall),
		Personas:          ClassifyPersonas(responses),
		ParticipationRate: ParticipationRate(responses),
	}
}
