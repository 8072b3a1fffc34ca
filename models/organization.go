package models

import "time"

// Organization represents an entity that posts opportunities.
//
// Opportunities holds ids of postings attached to this organization. Entries
// are never removed when an opportunity is deleted, so readers must tolerate
// dangling ids.
type Organization struct {
	ID            string    `json:"id" dynamodbav:"id"`
	OrgName       string    `json:"org_name" dynamodbav:"org_name"`
	Phone         string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Email         string    `json:"email,omitempty" dynamodbav:"email,omitempty"`
	Description   string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	LogoImage     string    `json:"logoImage,omitempty" dynamodbav:"logo_image,omitempty"`
	PasswordHash  string    `json:"-" dynamodbav:"password_hash,omitempty"`
	Opportunities []string  `json:"opportunities" dynamodbav:"opportunities"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// DefaultOrganizationLogo is used when an organization registers without a logo
const DefaultOrganizationLogo = "https://via.placeholder.com/150"

// RegisterOrganization is the request body for organization registration
// @Description Organization registration request with contact details and credentials
type RegisterOrganization struct {
	OrgName     string `json:"org_name" binding:"required" example:"Bay Area Food Bank"`
	Password    string `json:"password" binding:"required,min=8" example:"securePassword123"`
	Phone       string `json:"phone,omitempty" example:"+14155550123"`
	Email       string `json:"email,omitempty" binding:"omitempty,email" example:"contact@bafb.org"`
	Description string `json:"description,omitempty" example:"Fighting hunger in the Bay Area since 1985"`
	LogoImage   string `json:"logoImage,omitempty" example:"https://example.com/logo.png"`
}

// OrganizationLogin is the request body for organization sign-in
type OrganizationLogin struct {
	OrgName  string `json:"org_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OrganizationPatch carries a partial update for an organization profile.
// Nil fields are left untouched.
type OrganizationPatch struct {
	OrgName     *string `json:"org_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Description *string `json:"description,omitempty"`
	LogoImage   *string `json:"logoImage,omitempty"`
}

// AttachOpportunityRequest is the body for linking an opportunity to an
// organization
type AttachOpportunityRequest struct {
	OpportunityID string `json:"opportunityId" binding:"required"`
}

// OrganizationView is an organization with its opportunity references
// expanded. Dangling ids stay in Opportunities but get no summary.
type OrganizationView struct {
	ID            string                `json:"id"`
	OrgName       string                `json:"org_name"`
	Phone         string                `json:"phone,omitempty"`
	Email         string                `json:"email,omitempty"`
	Description   string                `json:"description,omitempty"`
	LogoImage     string                `json:"logoImage,omitempty"`
	Opportunities []string              `json:"opportunities"`
	Expanded      []*OpportunitySummary `json:"expanded_opportunities"`
}
