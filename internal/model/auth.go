package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for admin console authentication
type AdminClaims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// AccessDecision is the outcome of validating a respondent's access to a
// client survey
type AccessDecision struct {
	Allowed      bool        `json:"allowed"`
	RequiresAuth bool        `json:"requiresAuth"`
	IsAdmin      bool        `json:"isAdmin,omitempty"`
	Reason       string      `json:"reason,omitempty"`
	SurveyStatus string      `json:"surveyStatus,omitempty"`
	Client       *ClientInfo `json:"client,omitempty"`
}

// ClientInfo is the public subset of a client exposed to respondents
type ClientInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}
