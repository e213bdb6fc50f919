package analytics

import (
	"testing"

	"pulsecheck/internal/model"
)

func hasOpportunity(opportunities []model.Opportunity, title string) bool {
	for _, o := range opportunities {
		if o.Title == title {
			return true
		}
	}
	return false
}

// Both ratios must exceed their thresholds; low adoption alone is not enough
func TestHighInterestLowAdoptionConjunctive(t *testing.T) {
	// 10 non-users, 7 of them ready: both conditions hold
	var triggering []model.Response
	for i := 0; i < 10; i++ {
		r := model.Response{CurrentAiUsage: "Never"}
		if i < 7 {
			r.ReadinessToAdopt = "Very ready"
		}
		triggering = append(triggering, r)
	}
	got := IdentifyOpportunities(triggering)
	if !hasOpportunity(got, "High Interest, Low Adoption") {
		t.Error("expected High Interest, Low Adoption to trigger")
	}

	// Same 10 non-users but nobody ready: readiness ratio 0 <= 0.6
	var nonTriggering []model.Response
	for i := 0; i < 10; i++ {
		nonTriggering = append(nonTriggering, model.Response{CurrentAiUsage: "Never"})
	}
	got = IdentifyOpportunities(nonTriggering)
	if hasOpportunity(got, "High Interest, Low Adoption") {
		t.Error("expected High Interest, Low Adoption not to trigger without readiness")
	}
}

func TestSkillsGapThreshold(t *testing.T) {
	responses := []model.Response{
		{AiSkillsConfidence: "Not very confident"},
		{AiSkillsConfidence: "Not very confident"},
		{AiSkillsConfidence: "Very confident"},
		{AiSkillsConfidence: "Very confident"},
		{AiSkillsConfidence: "Very confident"},
	}
	// 2/5 = 0.4 > 0.3
	got := IdentifyOpportunities(responses)
	if !hasOpportunity(got, "Skills Development Opportunity") {
		t.Error("expected Skills Development Opportunity to trigger")
	}

	// exactly 0.3 does not trigger (strict >)
	responses = []model.Response{
		{AiSkillsConfidence: "Not very confident"},
		{AiSkillsConfidence: "Not very confident"},
		{AiSkillsConfidence: "Not very confident"},
		{}, {}, {}, {}, {}, {}, {},
	}
	got = IdentifyOpportunities(responses)
	if hasOpportunity(got, "Skills Development Opportunity") {
		t.Error("expected Skills Development Opportunity not to trigger at exactly 0.3")
	}
}

func TestAutomationPotential(t *testing.T) {
	responses := []model.Response{
		{TimeOnRepetitiveTasks: "25-50%"},
		{TimeOnRepetitiveTasks: "50%+"},
		{TimeOnRepetitiveTasks: "50%+"},
		{TimeOnRepetitiveTasks: "0-10%"},
		{TimeOnRepetitiveTasks: "0-10%"},
	}
	// 3/5 = 0.6 > 0.4
	got := IdentifyOpportunities(responses)
	if !hasOpportunity(got, "Automation Potential") {
		t.Error("expected Automation Potential to trigger")
	}

	opp := got[len(got)-1]
	if opp.Impact != "Very High" || opp.Effort != "Medium" {
		t.Errorf("Automation Potential impact/effort = %s/%s", opp.Impact, opp.Effort)
	}
}

// All rules are evaluated independently; several can fire at once
func TestOpportunitiesIndependent(t *testing.T) {
	var responses []model.Response
	for i := 0; i < 10; i++ {
		responses = append(responses, model.Response{
			CurrentAiUsage:        "Never",
			ReadinessToAdopt:      "Very ready",
			AiSkillsConfidence:    "Not very confident",
			TimeOnRepetitiveTasks: "50%+",
		})
	}
	got := IdentifyOpportunities(responses)
	if len(got) != 3 {
		t.Fatalf("expected all 3 opportunities, got %d: %+v", len(got), got)
	}
}

func TestOpportunitiesEmptyInput(t *testing.T) {
	if got := IdentifyOpportunities(nil); len(got) != 0 {
		t.Errorf("expected no opportunities for empty input, got %+v", got)
	}
}
