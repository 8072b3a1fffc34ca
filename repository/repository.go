package repository

import (
	"volunteerhub-backend/dal"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"
)

// Repository bundles all entity repositories over one database client
type Repository struct {
	Opportunity  *OpportunityRepository
	Volunteer    *VolunteerRepository
	Organization *OrganizationRepository
}

// NewRepository creates the repository container
func NewRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *Repository {
	return &Repository{
		Opportunity:  NewOpportunityRepository(db, cfg, log),
		Volunteer:    NewVolunteerRepository(db, cfg, log),
		Organization: NewOrganizationRepository(db, cfg, log),
	}
}
