package services

import (
	"volunteerhub-backend/models"
	"volunteerhub-backend/repository"
	"volunteerhub-backend/utils/logger"
)

// Service bundles all entity services over the repository container
type Service struct {
	Opportunity  OpportunityServiceInterface
	Volunteer    VolunteerServiceInterface
	Organization OrganizationServiceInterface
}

// NewService creates the service container with all dependencies injected
func NewService(repos *repository.Repository, cfg *models.Config, log logger.Logger) *Service {
	return &Service{
		Opportunity:  NewOpportunityService(repos.Opportunity, log),
		Volunteer:    NewVolunteerService(repos.Volunteer, repos.Opportunity, cfg, log),
		Organization: NewOrganizationService(repos.Organization, repos.Opportunity, log),
	}
}
