package analytics

import (
	"testing"

	"pulsecheck/internal/model"
)

func TestClassifyPrincipalPat(t *testing.T) {
	r := model.Response{
		CurrentAiUsage:     "Daily",
		ReadinessToAdopt:   "Very ready",
		AiSkillsConfidence: "Very confident",
		AiToolsAwareness:   []string{"Copilot", "ChatGPT", "Claude"},
	}
	if got := ClassifyPersona(r); got != PersonaPrincipalPat {
		t.Errorf("persona = %q, want Principal Pat", got)
	}
}

func TestClassifyEnthusiasticEmma(t *testing.T) {
	// gap = 100 - 0 = 100 >= 40, skill barrier, training interest
	r := model.Response{
		CurrentAiUsage:   "Never",
		ReadinessToAdopt: "Very ready",
		AdoptionBarriers: []string{"Lack of technical skills"},
		TrainingInterest: "Very interested",
	}
	if got := ClassifyPersona(r); got != PersonaEnthusiasticEmma {
		t.Errorf("persona = %q, want Enthusiastic Emma", got)
	}
}

func TestClassifyTraditionalistTim(t *testing.T) {
	tests := []struct {
		name string
		r    model.Response
	}{
		{"resistance barrier", model.Response{
			ReadinessToAdopt: "Not very ready",
			AdoptionBarriers: []string{"Happy with current methods"},
		}},
		{"zero usage", model.Response{
			ReadinessToAdopt: "Not very ready",
			CurrentAiUsage:   "Never",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPersona(tt.r); got != PersonaTraditionalist {
				t.Errorf("persona = %q, want Traditionalist Tim", got)
			}
		})
	}
}

func TestClassifyCautiousClara(t *testing.T) {
	r := model.Response{
		CurrentAiUsage:   "Monthly",
		ReadinessToAdopt: "Neutral", // 50 >= 40
		AdoptionBarriers: []string{"Data privacy concerns"},
	}
	if got := ClassifyPersona(r); got != PersonaCautiousClara {
		t.Errorf("persona = %q, want Cautious Clara", got)
	}
}

func TestClassifyOverwhelmedOwen(t *testing.T) {
	r := model.Response{
		CurrentAiUsage:   "Rarely",         // 25 < 40
		ReadinessToAdopt: "Somewhat ready", // 75 >= 60
		AdoptionBarriers: []string{"No time to learn new tools"},
	}
	if got := ClassifyPersona(r); got != PersonaOverwhelmedOwen {
		t.Errorf("persona = %q, want Overwhelmed Owen", got)
	}
}

func TestClassifyDefaultsToCuriousChris(t *testing.T) {
	if got := ClassifyPersona(model.Response{CurrentAiUsage: "Monthly", ReadinessToAdopt: "Neutral"}); got != PersonaCuriousChris {
		t.Errorf("persona = %q, want Curious Chris", got)
	}
	// an all-empty record lands on Tim, not the default: readiness 0 < 40
	// and usage 0 satisfy rule 3 before the cascade falls through
	if got := ClassifyPersona(model.Response{}); got != PersonaTraditionalist {
		t.Errorf("empty record persona = %q, want Traditionalist Tim", got)
	}
}

// Cascade order matters: a record matching both Pat and Clara is Pat
func TestCascadeFirstMatchWins(t *testing.T) {
	r := model.Response{
		CurrentAiUsage:     "Daily",
		ReadinessToAdopt:   "Very ready",
		AiSkillsConfidence: "Very confident",
		AiToolsAwareness:   []string{"a", "b", "c"},
		AdoptionBarriers:   []string{"Data privacy concerns"},
	}
	if got := ClassifyPersona(r); got != PersonaPrincipalPat {
		t.Errorf("persona = %q, want Principal Pat (rule order)", got)
	}
}

// Classification is a pure function of one record
func TestClassificationPure(t *testing.T) {
	r := model.Response{
		CurrentAiUsage:   "Never",
		ReadinessToAdopt: "Very ready",
		AdoptionBarriers: []string{"Lack of technical skills"},
		TrainingInterest: "Somewhat interested",
	}
	first := ClassifyPersona(r)
	for i := 0; i < 5; i++ {
		if got := ClassifyPersona(r); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", got, first)
		}
	}
}

func TestClassifyPersonasAggregate(t *testing.T) {
	responses := []model.Response{
		{CurrentAiUsage: "Daily", AiSkillsConfidence: "Very confident", AiToolsAwareness: []string{"a", "b", "c"}, Department: "Eng", Email: "p1@x"},
		{CurrentAiUsage: "Daily", AiSkillsConfidence: "Very confident", AiToolsAwareness: []string{"a", "b", "c"}, Department: "Eng", Email: "p2@x"},
		{CurrentAiUsage: "Daily", AiSkillsConfidence: "Very confident", AiToolsAwareness: []string{"a", "b", "c"}, Department: "Eng", Email: "p3@x"},
		{CurrentAiUsage: "Daily", AiSkillsConfidence: "Very confident", AiToolsAwareness: []string{"a", "b", "c"}, Department: "Eng", Email: "p4@x"},
		{CurrentAiUsage: "Monthly", ReadinessToAdopt: "Neutral"},
	}

	summary := ClassifyPersonas(responses)
	if summary.TotalClassified != 5 {
		t.Errorf("TotalClassified = %d, want 5", summary.TotalClassified)
	}

	var sum int
	for _, n := range summary.Distribution {
		sum += n
	}
	if sum != len(responses) {
		t.Errorf("distribution sum = %d, want %d", sum, len(responses))
	}

	if summary.Distribution[PersonaPrincipalPat] != 4 {
		t.Errorf("Pat count = %d, want 4", summary.Distribution[PersonaPrincipalPat])
	}

	// Examples cap at 3 and preserve first-seen order
	examples := summary.Examples[PersonaPrincipalPat]
	if len(examples) != 3 {
		t.Fatalf("Pat examples = %d, want 3", len(examples))
	}
	if examples[0].Email != "p1@x" || examples[2].Email != "p3@x" {
		t.Errorf("examples out of order: %+v", examples)
	}
}

func TestPersonaCatalogComplete(t *testing.T) {
	catalog := PersonaCatalog()
	want := map[string]struct {
		priority string
		approach string
	}{
		PersonaPrincipalPat:     {"High", "Leverage as Champions"},
		PersonaEnthusiasticEmma: {"High", "Intensive Support"},
		PersonaCuriousChris:     {"Medium", "Guided Exploration"},
		PersonaCautiousClara:    {"Medium", "Address Concerns"},
		PersonaTraditionalist:   {"Low", "Cultural Change"},
		PersonaOverwhelmedOwen:  {"High", "Remove Barriers"},
	}
	if len(catalog) != len(want) {
		t.Fatalf("catalog has %d personas, want %d", len(catalog), len(want))
	}
	for name, exp := range want {
		detail, ok := catalog[name]
		if !ok {
			t.Errorf("missing persona %q", name)
			continue
		}
		if detail.Priority != exp.priority {
			t.Errorf("%s priority = %q, want %q", name, detail.Priority, exp.priority)
		}
		if detail.Approach != exp.approach {
			t.Errorf("%s approach = %q, want %q", name, detail.Approach, exp.approach)
		}
		if detail.Description == "" || len(detail.Characteristics) == 0 || len(detail.Recommendations) == 0 {
			t.Errorf("%s detail incomplete: %+v", name, detail)
		}
	}
}
