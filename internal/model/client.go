package model

import "time"

// Survey status lifecycle for a client
const (
	SurveyStatusDraft  = "draft"
	SurveyStatusActive = "active"
	SurveyStatusClosed = "closed"
)

// Client is one tenant organization with a branded survey
type Client struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	Name       string `json:"clientName" bson:"clientName"`
	Slug       string `json:"clientSlug" bson:"clientSlug"`
	LogoURL    string `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	PrimaryC   string `json:"primaryColour,omitempty" bson:"primaryColour,omitempty"`
	SecondaryC string `json:"secondaryColour,omitempty" bson:"secondaryColour,omitempty"`

	// Per-tenant customization of segmentation options
	Departments []string `json:"departments,omitempty" bson:"departments,omitempty"`
	Locations   []string `json:"locations,omitempty" bson:"locations,omitempty"`

	SurveyStatus string `json:"surveyStatus" bson:"surveyStatus"`

	// M365 access control: domain-first validation, tenant IDs optional
	RequireM365Auth bool     `json:"requireM365Auth" bson:"requireM365Auth"`
	AllowedTenants  []string `json:"allowedM365TenantIds,omitempty" bson:"allowedM365TenantIds,omitempty"`
	AllowedDomains  []string `json:"allowedM365Domains,omitempty" bson:"allowedM365Domains,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SurveySession tracks an authenticated respondent's access to a client survey
type SurveySession struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ClientID     string    `json:"clientId" bson:"clientId"`
	UserEmail    string    `json:"userEmail" bson:"userEmail"`
	UserName     string    `json:"userName,omitempty" bson:"userName,omitempty"`
	M365TenantID string    `json:"m365TenantId,omitempty" bson:"m365TenantId,omitempty"`
	M365ObjectID string    `json:"m365ObjectId,omitempty" bson:"m365ObjectId,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	LastActiveAt time.Time `json:"lastActiveAt" bson:"lastActiveAt"`
}
