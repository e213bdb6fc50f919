package analytics

import (
	"testing"

	"pulsecheck/internal/model"
)

func TestAdoptionScoreMapping(t *testing.T) {
	tests := []struct {
		usage string
		want  int
	}{
		{"Daily", 100},
		{"Weekly", 75},
		{"Monthly", 50},
		{"Rarely", 25},
		{"Never", 0},
		{"", 0},
		{"garbage value", 0},
	}
	for _, tt := range tests {
		got := AdoptionScore([]model.Response{{CurrentAiUsage: tt.usage}})
		if got != tt.want {
			t.Errorf("AdoptionScore(%q) = %d, want %d", tt.usage, got, tt.want)
		}
	}
}

func TestAdoptionScoreAverages(t *testing.T) {
	responses := []model.Response{
		{CurrentAiUsage: "Daily"},  // 100
		{CurrentAiUsage: "Weekly"}, // 75
		{CurrentAiUsage: "Never"},  // 0
	}
	// (100+75+0)/3 = 58.33 -> 58
	if got := AdoptionScore(responses); got != 58 {
		t.Errorf("AdoptionScore = %d, want 58", got)
	}
}

func TestAwarenessScoreRounding(t *testing.T) {
	// 3 of 8 reference tools: 37.5 -> 38, not 100
	responses := []model.Response{
		{AiToolsAwareness: []string{"Copilot", "ChatGPT", "Claude"}},
	}
	if got := AwarenessScore(responses); got != 38 {
		t.Errorf("AwarenessScore = %d, want 38", got)
	}
}

func TestAwarenessScoreCapped(t *testing.T) {
	tools := make([]string, 12)
	for i := range tools {
		tools[i] = "tool"
	}
	if got := AwarenessScore([]model.Response{{AiToolsAwareness: tools}}); got != 100 {
		t.Errorf("AwarenessScore with 12 tools = %d, want 100", got)
	}
}

func TestAwarenessScoreMissing(t *testing.T) {
	if got := AwarenessScore([]model.Response{{}}); got != 0 {
		t.Errorf("AwarenessScore with no tools = %d, want 0", got)
	}
}

func TestReadinessScoreMapping(t *testing.T) {
	tests := []struct {
		readiness string
		want      int
	}{
		{"Very ready", 100},
		{"Somewhat ready", 75},
		{"Neutral", 50},
		{"Not very ready", 25},
		{"", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got := ReadinessScore([]model.Response{{ReadinessToAdopt: tt.readiness}})
		if got != tt.want {
			t.Errorf("ReadinessScore(%q) = %d, want %d", tt.readiness, got, tt.want)
		}
	}
}

func TestSkillsScoreMapping(t *testing.T) {
	tests := []struct {
		confidence string
		want       int
	}{
		{"Very confident", 100},
		{"Somewhat confident", 75},
		{"Neutral", 50},
		{"Not very confident", 25},
		{"", 0},
	}
	for _, tt := range tests {
		got := SkillsScore([]model.Response{{AiSkillsConfidence: tt.confidence}})
		if got != tt.want {
			t.Errorf("SkillsScore(%q) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}

func TestBarriersScoreInverted(t *testing.T) {
	tests := []struct {
		name     string
		barriers [][]string
		want     int
	}{
		{"no barriers", [][]string{nil}, 100},
		{"two each", [][]string{{"a", "b"}, {"c", "d"}}, 75},
		{"floors at zero", [][]string{{"a", "b", "c", "d", "e", "f", "g", "h", "i"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var responses []model.Response
			for _, b := range tt.barriers {
				responses = append(responses, model.Response{AdoptionBarriers: b})
			}
			if got := BarriersScore(responses); got != tt.want {
				t.Errorf("BarriersScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScorersEmptyInput(t *testing.T) {
	var empty []model.Response
	if got := AdoptionScore(empty); got != 0 {
		t.Errorf("AdoptionScore(empty) = %d", got)
	}
	if got := AwarenessScore(empty); got != 0 {
		t.Errorf("AwarenessScore(empty) = %d", got)
	}
	if got := ReadinessScore(empty); got != 0 {
		t.Errorf("ReadinessScore(empty) = %d", got)
	}
	if got := SkillsScore(empty); got != 0 {
		t.Errorf("SkillsScore(empty) = %d", got)
	}
	if got := BarriersScore(empty); got != 0 {
		t.Errorf("BarriersScore(empty) = %d", got)
	}
}

func TestOverallScoreWeights(t *testing.T) {
	scores := model.CategoryScores{
		Adoption:  100,
		Awareness: 100,
		Readiness: 100,
		Skills:    100,
		Barriers:  100,
	}
	if got := OverallScore(scores); got != 100 {
		t.Errorf("OverallScore(all 100) = %d, want 100", got)
	}

	scores = model.CategoryScores{Adoption: 80, Awareness: 60, Readiness: 40, Skills: 20, Barriers: 100}
	// 80*.25 + 60*.20 + 40*.30 + 20*.15 + 100*.10 = 20+12+12+3+10 = 57
	if got := OverallScore(scores); got != 57 {
		t.Errorf("OverallScore = %d, want 57", got)
	}
}
