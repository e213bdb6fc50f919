package analytics

import (
	"testing"

	"pulsecheck/internal/model"
)

func TestBuildEmptyInput(t *testing.T) {
	if report := Build(nil); report != nil {
		t.Errorf("Build(nil) = %+v, want nil", report)
	}
	if report := Build([]model.Response{}); report != nil {
		t.Errorf("Build(empty) = %+v, want nil", report)
	}
}

func TestBuildFullReport(t *testing.T) {
	responses := []model.Response{
		{
			Department:         "Engineering",
			RoleLevel:          "Executive",
			Location:           "Sydney",
			Tenure:             "3-5 years",
			CurrentAiUsage:     "Daily",
			ReadinessToAdopt:   "Very ready",
			AiSkillsConfidence: "Very confident",
			AiToolsAwareness:   []string{"Copilot", "ChatGPT", "Claude"},
			Email:              "exec@acme.example",
		},
		{
			Department:       "Sales",
			RoleLevel:        "Manager",
			CurrentAiUsage:   "Never",
			ReadinessToAdopt: "Not very ready",
			AdoptionBarriers: []string{"Happy with current methods", "Data privacy concerns"},
		},
		{
			Department:            "Sales",
			CurrentAiUsage:        "Rarely",
			ReadinessToAdopt:      "Somewhat ready",
			AdoptionBarriers:      []string{"No time to learn new tools"},
			TimeOnRepetitiveTasks: "50%+",
		},
	}

	report := Build(responses)
	if report == nil {
		t.Fatal("Build returned nil for non-empty input")
	}

	if report.TotalResponses != 3 {
		t.Errorf("TotalResponses = %d, want 3", report.TotalResponses)
	}

	if report.OverallScore < 0 || report.OverallScore > 100 {
		t.Errorf("OverallScore out of range: %d", report.OverallScore)
	}
	if want := OverallScore(report.CategoryScores); report.OverallScore != want {
		t.Errorf("OverallScore = %d, want weighted %d", report.OverallScore, want)
	}

	// Category scores match the standalone scorers
	if report.CategoryScores.Adoption != AdoptionScore(responses) {
		t.Error("adoption score mismatch with scorer")
	}
	if report.CategoryScores.Barriers != BarriersScore(responses) {
		t.Error("barriers score mismatch with scorer")
	}

	// Persona distribution covers every respondent
	var classified int
	for _, n := range report.Personas.Distribution {
		classified += n
	}
	if classified != len(responses) || report.Personas.TotalClassified != len(responses) {
		t.Errorf("personas classified %d/%d, total %d",
			classified, len(responses), report.Personas.TotalClassified)
	}

	// Segmentation covers all four attributes
	if report.Segmentation.ByDepartment["Sales"].Count != 2 {
		t.Errorf("Sales segment count = %d", report.Segmentation.ByDepartment["Sales"].Count)
	}
	if _, ok := report.Segmentation.ByRoleLevel["Not specified"]; !ok {
		t.Error("missing Not specified role segment")
	}
	if len(report.Segmentation.ByLocation) == 0 || len(report.Segmentation.ByTenure) == 0 {
		t.Error("location/tenure segmentation missing")
	}

	if report.ParticipationRate.Total != 3 {
		t.Errorf("participation total = %d", report.ParticipationRate.Total)
	}

	// Insights always start with the maturity band
	if len(report.Insights) == 0 {
		t.Fatal("no insights generated")
	}
	switch report.Insights[0].Type {
	case "positive", "neutral", "warning":
	default:
		t.Errorf("unexpected insight type %q", report.Insights[0].Type)
	}

	// Barriers ranked by count descending
	for i := 1; i < len(report.Barriers); i++ {
		if report.Barriers[i].Count > report.Barriers[i-1].Count {
			t.Errorf("barriers not sorted at %d: %+v", i, report.Barriers)
		}
	}
}

// The report for identical input is identical, sub-computation by
// sub-computation (no hidden state)
func TestBuildDeterministic(t *testing.T) {
	responses := []model.Response{
		{CurrentAiUsage: "Weekly", ReadinessToAdopt: "Neutral", AdoptionBarriers: []string{"x", "y"}},
		{CurrentAiUsage: "Never", AiToolsAwareness: []string{"a"}},
	}

	a := Build(responses)
	b := Build(responses)
	if a.OverallScore != b.OverallScore {
		t.Errorf("overall differs: %d vs %d", a.OverallScore, b.OverallScore)
	}
	if len(a.Barriers) != len(b.Barriers) {
		t.Errorf("barrier lists differ")
	}
	for i := range a.Barriers {
		if a.Barriers[i] != b.Barriers[i] {
			t.Errorf("barrier %d differs: %+v vs %+v", i, a.Barriers[i], b.Barriers[i])
		}
	}
}
