package model

import "time"

// Usage frequency values for the currentAiUsage question
const (
	UsageNever   = "Never"
	UsageRarely  = "Rarely"
	UsageMonthly = "Monthly"
	UsageWeekly  = "Weekly"
	UsageDaily   = "Daily"
)

// Readiness values for the readinessToAdopt question
const (
	ReadinessVeryReady    = "Very ready"
	ReadinessSomewhat     = "Somewhat ready"
	ReadinessNeutral      = "Neutral"
	ReadinessNotVeryReady = "Not very ready"
)

// Confidence values for the aiSkillsConfidence question
const (
	ConfidenceVery     = "Very confident"
	ConfidenceSomewhat = "Somewhat confident"
	ConfidenceNeutral  = "Neutral"
	ConfidenceNotVery  = "Not very confident"
)

// Response is one respondent's full answer set for a client survey.
// Categorical fields are optional: an empty string or nil slice means the
// respondent skipped the question, and the analytics engine scores it as zero.
type Response struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	ClientID string `json:"clientId" bson:"clientId"`

	// Segmentation
	Department string `json:"department,omitempty" bson:"department,omitempty"`
	RoleLevel  string `json:"roleLevel,omitempty" bson:"roleLevel,omitempty"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
	Tenure     string `json:"tenure,omitempty" bson:"tenure,omitempty"`

	// Adoption & awareness
	CurrentAiUsage   string   `json:"currentAiUsage,omitempty" bson:"currentAiUsage,omitempty"`
	AiToolsAwareness []string `json:"aiToolsAwareness,omitempty" bson:"aiToolsAwareness,omitempty"`

	// Readiness & skills
	ReadinessToAdopt   string   `json:"readinessToAdopt,omitempty" bson:"readinessToAdopt,omitempty"`
	AdoptionBarriers   []string `json:"adoptionBarriers,omitempty" bson:"adoptionBarriers,omitempty"`
	AiSkillsConfidence string   `json:"aiSkillsConfidence,omitempty" bson:"aiSkillsConfidence,omitempty"`
	TrainingInterest   string   `json:"trainingInterest,omitempty" bson:"trainingInterest,omitempty"`

	// Productivity
	TimeOnRepetitiveTasks string `json:"timeOnRepetitiveTasks,omitempty" bson:"timeOnRepetitiveTasks,omitempty"`

	// Identity (set by the submit endpoint, never by the respondent)
	Email         string `json:"email,omitempty" bson:"email,omitempty"`
	M365TenantID  string `json:"m365TenantId,omitempty" bson:"m365TenantId,omitempty"`
	AuthMethod    string `json:"authMethod,omitempty" bson:"authMethod,omitempty"` // "m365" or "anonymous"
	CompletionSec int    `json:"completionTimeSeconds,omitempty" bson:"completionTimeSeconds,omitempty"`

	SubmittedAt time.Time `json:"submittedAt" bson:"submittedAt"`
}
