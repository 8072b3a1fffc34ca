package models

import "time"

// OpportunityUrgency represents how urgently an opportunity needs volunteers
type OpportunityUrgency string

const (
	OpportunityUrgencyLow    OpportunityUrgency = "low"
	OpportunityUrgencyMedium OpportunityUrgency = "medium"
	OpportunityUrgencyHigh   OpportunityUrgency = "high"
)

// DefaultOpportunityImage is used when an opportunity is created without an image
const DefaultOpportunityImage = "https://via.placeholder.com/300x200?text=Volunteer+Opportunity"

// Opportunity represents a single volunteer-work posting by an organization
type Opportunity struct {
	ID          string             `json:"id" dynamodbav:"id"`
	OrgName     string             `json:"org_name" dynamodbav:"org_name"`
	Category    string             `json:"category" dynamodbav:"category"`
	Location    string             `json:"location" dynamodbav:"location"`
	TypeOfWork  string             `json:"type_of_work" dynamodbav:"type_of_work"`
	Urgency     OpportunityUrgency `json:"urgency" dynamodbav:"urgency"`
	Description string             `json:"description" dynamodbav:"description"`
	Image       string             `json:"image" dynamodbav:"image"`
	CreatedAt   time.Time          `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" dynamodbav:"updated_at"`
}

// CreateOpportunityRequest is the request body for posting a new opportunity
// @Description Opportunity creation request, image is optional and defaulted
type CreateOpportunityRequest struct {
	OrgName     string `json:"org_name" binding:"required" example:"Bay Area Food Bank"`
	Category    string `json:"category" binding:"required" example:"hunger relief"`
	Location    string `json:"location" binding:"required" example:"Oakland"`
	TypeOfWork  string `json:"type_of_work" binding:"required" example:"Food distribution"`
	Urgency     string `json:"urgency" binding:"required,oneof=low medium high" example:"high"`
	Description string `json:"description" binding:"required" example:"Help sort and pack food boxes"`
	Image       string `json:"image,omitempty" example:"https://example.com/food-bank.jpg"`
}

// OpportunityPatch carries a partial update for an opportunity.
// Nil fields are left untouched; present fields overwrite, even when empty.
type OpportunityPatch struct {
	OrgName     *string `json:"org_name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Location    *string `json:"location,omitempty"`
	TypeOfWork  *string `json:"type_of_work,omitempty"`
	Urgency     *string `json:"urgency,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// OpportunitySummary is the reduced opportunity shape embedded in resolved
// volunteer history and expanded organization views
type OpportunitySummary struct {
	ID          string `json:"id" dynamodbav:"id"`
	OrgName     string `json:"org_name" dynamodbav:"org_name"`
	Category    string `json:"category" dynamodbav:"category"`
	Location    string `json:"location" dynamodbav:"location"`
	TypeOfWork  string `json:"type_of_work" dynamodbav:"type_of_work"`
	Description string `json:"description" dynamodbav:"description"`
	Image       string `json:"image" dynamodbav:"image"`
}

// Summary projects the opportunity down to its embeddable shape
func (o *Opportunity) Summary() *OpportunitySummary {
	return &OpportunitySummary{
		ID:          o.ID,
		OrgName:     o.OrgName,
		Category:    o.Category,
		Location:    o.Location,
		TypeOfWork:  o.TypeOfWork,
		Description: o.Description,
		Image:       o.Image,
	}
}
