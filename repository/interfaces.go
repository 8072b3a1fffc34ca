package repository

import (
	"context"
	"volunteerhub-backend/models"
)

// OpportunityRepositoryInterface defines the contract for opportunity storage
type OpportunityRepositoryInterface interface {
	CreateOpportunity(ctx context.Context, opportunity *models.Opportunity) (*models.Opportunity, error)
	GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error)
	ListOpportunities(ctx context.Context) ([]*models.Opportunity, error)
	ListOpportunitiesByLocation(ctx context.Context, city string) ([]*models.Opportunity, error)
	ListOpportunitiesByUrgency(ctx context.Context, urgency string) ([]*models.Opportunity, error)
	UpdateOpportunityFields(ctx context.Context, id string, updates map[string]interface{}) error
}

// VolunteerRepositoryInterface defines the contract for volunteer storage
type VolunteerRepositoryInterface interface {
	CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error)
	GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error)
	GetVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
	SaveVolunteer(ctx context.Context, volunteer *models.Volunteer) error
	UpdateVolunteerFields(ctx context.Context, id string, updates map[string]interface{}) error
}

// OrganizationRepositoryInterface defines the contract for organization storage
type OrganizationRepositoryInterface interface {
	CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error)
	GetOrganizationByName(ctx context.Context, orgName string) (*models.Organization, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	SaveOrganization(ctx context.Context, organization *models.Organization) error
	UpdateOrganizationFields(ctx context.Context, id string, updates map[string]interface{}) error
}
