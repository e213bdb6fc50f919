package model

// CategoryScores holds the five 0-100 readiness subscores
type CategoryScores struct {
	Adoption  int `json:"adoption" bson:"adoption"`
	Awareness int `json:"awareness" bson:"awareness"`
	Readiness int `json:"readiness" bson:"readiness"`
	Barriers  int `json:"barriers" bson:"barriers"`
	Skills    int `json:"skills" bson:"skills"`
}

// Segment is one group of respondents sharing a categorical attribute value
type Segment struct {
	Count          int `json:"count" bson:"count"`
	AdoptionScore  int `json:"adoptionScore" bson:"adoptionScore"`
	ReadinessScore int `json:"readinessScore" bson:"readinessScore"`
}

// Segmentation breaks responses down by each segmentation attribute
type Segmentation struct {
	ByDepartment map[string]Segment `json:"byDepartment" bson:"byDepartment"`
	ByRoleLevel  map[string]Segment `json:"byRoleLevel" bson:"byRoleLevel"`
	ByLocation   map[string]Segment `json:"byLocation" bson:"byLocation"`
	ByTenure     map[string]Segment `json:"byTenure" bson:"byTenure"`
}

// BarrierStat is one adoption barrier with its occurrence count
type BarrierStat struct {
	Barrier    string `json:"barrier" bson:"barrier"`
	Count      int    `json:"count" bson:"count"`
	Percentage int    `json:"percentage" bson:"percentage"` // % of respondents who selected it
}

// Opportunity is a fixed-text strategic recommendation triggered by a
// threshold rule over aggregate ratios
type Opportunity struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Impact      string `json:"impact" bson:"impact"`
	Effort      string `json:"effort" bson:"effort"`
}

// Insight is a narrative observation over the response population.
// Type is one of "positive", "neutral", "warning".
type Insight struct {
	Type        string `json:"type" bson:"type"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// PersonaExample identifies one respondent classified under a persona
type PersonaExample struct {
	Department string `json:"department,omitempty" bson:"department,omitempty"`
	RoleLevel  string `json:"roleLevel,omitempty" bson:"roleLevel,omitempty"`
	Email      string `json:"email,omitempty" bson:"email,omitempty"`
}

// PersonaDetail is the static descriptive metadata for one archetype
type PersonaDetail struct {
	Description     string   `json:"description" bson:"description"`
	Characteristics []string `json:"characteristics" bson:"characteristics"`
	Priority        string   `json:"priority" bson:"priority"`
	Approach        string   `json:"approach" bson:"approach"`
	Recommendations []string `json:"recommendations" bson:"recommendations"`
}

// PersonaSummary aggregates the per-respondent persona classification
type PersonaSummary struct {
	Distribution    map[string]int              `json:"distribution" bson:"distribution"`
	Examples        map[string][]PersonaExample `json:"examples" bson:"examples"`
	Details         map[string]PersonaDetail    `json:"details" bson:"details"`
	TotalClassified int                         `json:"totalClassified" bson:"totalClassified"`
}

// Participation counts submissions by department and role level
type Participation struct {
	Total        int            `json:"total" bson:"total"`
	ByDepartment map[string]int `json:"byDepartment" bson:"byDepartment"`
	ByRoleLevel  map[string]int `json:"byRoleLevel" bson:"byRoleLevel"`
}

// AnalyticsReport is the full computed analytics for one client's responses
type AnalyticsReport struct {
	TotalResponses    int            `json:"totalResponses" bson:"totalResponses"`
	OverallScore      int            `json:"overallScore" bson:"overallScore"`
	CategoryScores    CategoryScores `json:"categoryScores" bson:"categoryScores"`
	Segmentation      Segmentation   `json:"segmentation" bson:"segmentation"`
	Barriers          []BarrierStat  `json:"barriers" bson:"barriers"`
	Opportunities     []Opportunity  `json:"opportunities" bson:"opportunities"`
	Insights          []Insight      `json:"insights" bson:"insights"`
	Personas          PersonaSummary `json:"personas" bson:"personas"`
	ParticipationRate Participation  `json:"participationRate" bson:"participationRate"`
}

// EmptyReport is the degenerate analytics shape returned when a client has
// no responses yet. OverallScore and Summary serialize as JSON null so the
// dashboard can distinguish "no data" from a zero score.
type EmptyReport struct {
	TotalResponses int     `json:"totalResponses"`
	OverallScore   *int    `json:"overallScore"`
	Summary        *string `json:"summary"`
}
