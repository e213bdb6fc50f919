package analytics

import (
	"testing"

	"pulsecheck/internal/model"
)

func TestSegmentByDepartment(t *testing.T) {
	responses := []model.Response{
		{Department: "Sales", CurrentAiUsage: "Daily", ReadinessToAdopt: "Very ready"},
		{Department: "Sales", CurrentAiUsage: "Never", ReadinessToAdopt: "Neutral"},
		{Department: "Engineering", CurrentAiUsage: "Weekly", ReadinessToAdopt: "Somewhat ready"},
		{CurrentAiUsage: "Monthly"}, // no department
	}

	segments := SegmentBy(responses, ByDepartment)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}

	sales := segments["Sales"]
	if sales.Count != 2 {
		t.Errorf("Sales count = %d, want 2", sales.Count)
	}
	if sales.AdoptionScore != 50 { // (100+0)/2
		t.Errorf("Sales adoption = %d, want 50", sales.AdoptionScore)
	}
	if sales.ReadinessScore != 75 { // (100+50)/2
		t.Errorf("Sales readiness = %d, want 75", sales.ReadinessScore)
	}

	if _, ok := segments["Not specified"]; !ok {
		t.Error("missing Not specified bucket")
	}
}

// Segment scores must match the scorers applied to the filtered subset directly
func TestSegmentConsistencyWithScorers(t *testing.T) {
	responses := []model.Response{
		{Department: "Sales", CurrentAiUsage: "Daily", ReadinessToAdopt: "Very ready"},
		{Department: "Sales", CurrentAiUsage: "Rarely", ReadinessToAdopt: "Not very ready"},
		{Department: "Finance", CurrentAiUsage: "Weekly"},
	}

	var sales []model.Response
	for _, r := range responses {
		if r.Department == "Sales" {
			sales = append(sales, r)
		}
	}

	segments := SegmentBy(responses, ByDepartment)
	if segments["Sales"].AdoptionScore != AdoptionScore(sales) {
		t.Errorf("segment adoption %d != direct %d", segments["Sales"].AdoptionScore, AdoptionScore(sales))
	}
	if segments["Sales"].ReadinessScore != ReadinessScore(sales) {
		t.Errorf("segment readiness %d != direct %d", segments["Sales"].ReadinessScore, ReadinessScore(sales))
	}
}

func TestSegmentByOtherFields(t *testing.T) {
	responses := []model.Response{
		{RoleLevel: "Manager", Location: "Sydney", Tenure: "1-3 years"},
		{RoleLevel: "Manager", Location: "Remote"},
	}

	if got := SegmentBy(responses, ByRoleLevel)["Manager"].Count; got != 2 {
		t.Errorf("role segment count = %d, want 2", got)
	}
	if got := SegmentBy(responses, ByLocation)["Sydney"].Count; got != 1 {
		t.Errorf("location segment count = %d, want 1", got)
	}
	if got := SegmentBy(responses, ByTenure)["Not specified"].Count; got != 1 {
		t.Errorf("tenure Not specified count = %d, want 1", got)
	}
}

func TestParticipationRate(t *testing.T) {
	responses := []model.Response{
		{Department: "Sales", RoleLevel: "Manager"},
		{Department: "Sales", RoleLevel: "Executive"},
		{},
	}

	p := ParticipationRate(responses)
	if p.Total != 3 {
		t.Errorf("Total = %d, want 3", p.Total)
	}
	if p.ByDepartment["Sales"] != 2 || p.ByDepartment["Not specified"] != 1 {
		t.Errorf("ByDepartment = %v", p.ByDepartment)
	}
	if p.ByRoleLevel["Manager"] != 1 || p.ByRoleLevel["Not specified"] != 1 {
		t.Errorf("ByRoleLevel = %v", p.ByRoleLevel)
	}
}
