package services

import (
	"context"
	"volunteerhub-backend/models"
)

// OpportunityServiceInterface defines the contract for opportunity operations
type OpportunityServiceInterface interface {
	CreateOpportunity(ctx context.Context, req *models.CreateOpportunityRequest) (*models.Opportunity, error)
	GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error)
	ListOpportunities(ctx context.Context) ([]*models.Opportunity, error)
	ListOpportunitiesByLocation(ctx context.Context, city string) ([]*models.Opportunity, error)
	ListUrgentOpportunities(ctx context.Context) ([]*models.Opportunity, error)
	UpdateOpportunity(ctx context.Context, id string, patch *models.OpportunityPatch) (*models.Opportunity, error)
}

// VolunteerServiceInterface defines the contract for the volunteer
// participation ledger and its derived views
type VolunteerServiceInterface interface {
	RegisterVolunteer(ctx context.Context, req *models.RegisterVolunteer) (*models.Volunteer, error)
	CheckEmail(ctx context.Context, email string) (*models.VolunteerRef, error)
	GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]*models.Volunteer, error)
	ListVolunteersByLocation(ctx context.Context, city string) ([]*models.Volunteer, error)
	ListVolunteersByCategory(ctx context.Context, category string) ([]*models.Volunteer, error)
	RecordCompletion(ctx context.Context, volunteerID, opportunityID string) (*models.Volunteer, error)
	GetProfile(ctx context.Context, volunteerID string) (*models.VolunteerProfile, error)
	EditProfile(ctx context.Context, volunteerID string, patch *models.VolunteerProfilePatch) (*models.Volunteer, error)
	Leaderboard(ctx context.Context, city string) ([]*models.LeaderboardEntry, error)
}

// OrganizationServiceInterface defines the contract for organization operations
type OrganizationServiceInterface interface {
	RegisterOrganization(ctx context.Context, req *models.RegisterOrganization) (*models.Organization, error)
	Login(ctx context.Context, req *models.OrganizationLogin) (*models.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error)
	GetOrganizationView(ctx context.Context, id string) (*models.OrganizationView, error)
	ListOrganizations(ctx context.Context) ([]*models.Organization, error)
	UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error)
	AttachOpportunity(ctx context.Context, orgID, opportunityID string) (*models.Organization, error)
}
