package analytics

import (
	"strings"

	"pulsecheck/internal/model"
)

// Persona archetype names
const (
	PersonaPrincipalPat     = "Principal Pat"
	PersonaEnthusiasticEmma = "Enthusiastic Emma"
	PersonaCuriousChris     = "Curious Chris"
	PersonaCautiousClara    = "Cautious Clara"
	PersonaTraditionalist   = "Traditionalist Tim"
	PersonaOverwhelmedOwen  = "Overwhelmed Owen"
)

// personaTraits are the per-respondent scalars the cascade evaluates
type personaTraits struct {
	usageScore       float64
	readinessScore   float64
	confidenceScore  float64
	awarenessCount   int
	trainingInterest bool
	interestUsageGap float64

	hasSkillBarriers      bool
	hasConcernBarriers    bool
	hasTimeBarriers       bool
	hasResistanceBarriers bool
}

func anyBarrierContains(barriers []string, substrings ...string) bool {
	for _, b := range barriers {
		for _, s := range substrings {
			if strings.Contains(b, s) {
				return true
			}
		}
	}
	return false
}

func deriveTraits(r model.Response) personaTraits {
	t := personaTraits{
		usageScore:      usageScore(r.CurrentAiUsage),
		readinessScore:  readinessScore(r.ReadinessToAdopt),
		confidenceScore: confidenceScore(r.AiSkillsConfidence),
		awarenessCount:  len(r.AiToolsAwareness),
		trainingInterest: r.TrainingInterest == "Very interested" ||
			r.TrainingInterest == "Somewhat interested",
	}
	t.interestUsageGap = t.readinessScore - t.usageScore

	// Substring matches are a contract with the survey's barrier option
	// catalog; changing option wording silently degrades classification.
	t.hasSkillBarriers = anyBarrierContains(r.AdoptionBarriers, "technical skills", "where to start")
	t.hasConcernBarriers = anyBarrierContains(r.AdoptionBarriers, "privacy", "ethical", "accuracy", "quality")
	t.hasTimeBarriers = anyBarrierContains(r.AdoptionBarriers, "time", "Integration challenges", "Too many options")
	t.hasResistanceBarriers = anyBarrierContains(r.AdoptionBarriers, "current methods", "job security")
	return t
}

// personaRules is the ordered classification cascade: first match wins,
// and a respondent matching nothing defaults to Curious Chris.
var personaRules = []struct {
	name  string
	match func(t personaTraits) bool
}{
	{PersonaPrincipalPat, func(t personaTraits) bool {
		return t.usageScore >= 75 && t.confidenceScore >= 75 && t.awarenessCount >= 3
	}},
	{PersonaEnthusiasticEmma, func(t personaTraits) bool {
		return t.interestUsageGap >= 40 && t.hasSkillBarriers && t.trainingInterest
	}},
	{PersonaTraditionalist, func(t personaTraits) bool {
		return t.readinessScore < 40 && (t.hasResistanceBarriers || t.usageScore == 0)
	}},
	{PersonaCautiousClara, func(t personaTraits) bool {
		return t.hasConcernBarriers && t.readinessScore >= 40
	}},
	{PersonaOverwhelmedOwen, func(t personaTraits) bool {
		return t.readinessScore >= 60 && t.usageScore < 40 && t.hasTimeBarriers
	}},
}

// ClassifyPersona assigns one respondent to exactly one archetype
func ClassifyPersona(r model.Response) string {
	t := deriveTraits(r)
	for _, rule := range personaRules {
		if rule.match(t) {
			return rule.name
		}
	}
	return PersonaCuriousChris
}

// ClassifyPersonas classifies every respondent and aggregates the
// distribution, first-three examples per persona, and the static catalog.
func ClassifyPersonas(responses []model.Response) model.PersonaSummary {
	distribution := make(map[string]int)
	examples := make(map[string][]model.PersonaExample)

	for _, r := range responses {
		persona := ClassifyPersona(r)
		distribution[persona]++
		if len(examples[persona]) < 3 {
			examples[persona] = append(examples[persona], model.PersonaExample{
				Department: r.Department,
				RoleLevel:  r.RoleLevel,
				Email:      r.Email,
			})
		}
	}

	return model.PersonaSummary{
		Distribution:    distribution,
		Examples:        examples,
		Details:         PersonaCatalog(),
		TotalClassified: len(responses),
	}
}

// PersonaCatalog returns the static descriptive metadata for all six
// archetypes. Content is fixed, not computed.
func PersonaCatalog() map[string]model.PersonaDetail {
	return map[string]model.PersonaDetail{
		PersonaPrincipalPat: {
			Description:     "Power users already thriving with AI - leverage as champions and trainers",
			Characteristics: []string{"Daily AI usage", "High confidence", "Multiple tools known"},
			Priority:        "High",
			Approach:        "Leverage as Champions",
			Recommendations: []string{
				"Invite to become AI champions and peer trainers",
				"Have them share success stories and use cases",
				"Create a community of practice led by this group",
				"Ask them to mentor Enthusiastic Emmas",
			},
		},
		PersonaEnthusiasticEmma: {
			Description:     "Really excited about AI but loses steam when things don't work - needs someone to come alongside",
			Characteristics: []string{"High interest", "Low-medium usage", "Skill barriers"},
			Priority:        "High",
			Approach:        "Intensive Support",
			Recommendations: []string{
				"Provide 1:1 coaching and troubleshooting sessions",
				"Create \"office hours\" for hands-on help",
				"Pair with Principal Pats as mentors",
				"Send quick-win tutorials for immediate success",
				"Check in regularly to maintain momentum",
			},
		},
		PersonaCuriousChris: {
			Description:     "Interested and exploring but hasn't committed yet - needs clear use cases",
			Characteristics: []string{"Medium readiness", "Exploring usage", "Needs direction"},
			Priority:        "Medium",
			Approach:        "Guided Exploration",
			Recommendations: []string{
				"Provide role-specific use case examples",
				"Offer structured learning paths",
				"Share quick wins from their department",
				"Host \"lunch and learn\" sessions",
				"Give them small challenges to try",
			},
		},
		PersonaCautiousClara: {
			Description:     "Has reservations about AI - needs reassurance and concerns addressed",
			Characteristics: []string{"Privacy/quality concerns", "Conditional interest"},
			Priority:        "Medium",
			Approach:        "Address Concerns",
			Recommendations: []string{
				"Share detailed privacy and security policies",
				"Provide case studies on quality control",
				"Host ethical AI discussion sessions",
				"Demonstrate responsible AI practices",
				"Connect with compliance/security teams",
			},
		},
		PersonaTraditionalist: {
			Description:     "Resistant to change, prefers established methods - needs culture shift",
			Characteristics: []string{"Low interest", "Prefers current methods", "Low usage"},
			Priority:        "Low",
			Approach:        "Cultural Change",
			Recommendations: []string{
				"Focus on enhancing (not replacing) their expertise",
				"Show AI as a tool, not a threat",
				"Start with optional, low-pressure introductions",
				"Respect their perspective and timeline",
				"Let early wins from others create curiosity",
			},
		},
		PersonaOverwhelmedOwen: {
			Description:     "Wants to adopt but blocked by time or organizational constraints",
			Characteristics: []string{"High interest", "Low usage", "Time/resource barriers"},
			Priority:        "High",
			Approach:        "Remove Barriers",
			Recommendations: []string{
				"Provide pre-built templates and shortcuts",
				"Integrate AI into existing workflows",
				"Allocate dedicated learning time",
				"Simplify tool selection with recommendations",
				"Address organizational blockers",
			},
		},
	}
}
