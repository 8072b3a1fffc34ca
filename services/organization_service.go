package services

import (
	"context"
	"errors"
	"volunteerhub-backend/models"
	"volunteerhub-backend/repository"
	"volunteerhub-backend/utils"
	"volunteerhub-backend/utils/logger"
)

// ErrInvalidCredentials is returned when an organization login fails
var ErrInvalidCredentials = errors.New("invalid organization credentials")

// OrganizationService handles organization profiles and their opportunity
// references
type OrganizationService struct {
	organizationRepo repository.OrganizationRepositoryInterface
	opportunityRepo  repository.OpportunityRepositoryInterface
	logger           logger.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(organizationRepo repository.OrganizationRepositoryInterface, opportunityRepo repository.OpportunityRepositoryInterface, log logger.Logger) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
		opportunityRepo:  opportunityRepo,
		logger:           log,
	}
}

// RegisterOrganization creates an organization with hashed credentials.
// Duplicate org_name is rejected by the repository with a conflict.
func (s *OrganizationService) RegisterOrganization(ctx context.Context, req *models.RegisterOrganization) (*models.Organization, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	logo := req.LogoImage
	if logo == "" {
		logo = models.DefaultOrganizationLogo
	}

	organization := &models.Organization{
		OrgName:       req.OrgName,
		Phone:         req.Phone,
		Email:         req.Email,
		Description:   req.Description,
		LogoImage:     logo,
		PasswordHash:  passwordHash,
		Opportunities: []string{},
	}

	return s.organizationRepo.CreateOrganization(ctx, organization)
}

// Login verifies organization credentials and returns the organization.
// Unknown names and wrong passwords both fail with ErrInvalidCredentials so
// the response does not reveal which half was wrong.
func (s *OrganizationService) Login(ctx context.Context, req *models.OrganizationLogin) (*models.Organization, error) {
	organization, err := s.organizationRepo.GetOrganizationByName(ctx, req.OrgName)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(organization.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return organization, nil
}

func (s *OrganizationService) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	return s.organizationRepo.GetOrganizationByID(ctx, id)
}

// GetOrganizationView returns the organization with its opportunity
// references expanded. Ids whose opportunity was deleted stay in the raw
// reference list but contribute no summary.
func (s *OrganizationService) GetOrganizationView(ctx context.Context, id string) (*models.OrganizationView, error) {
	organization, err := s.organizationRepo.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	expanded := []*models.OpportunitySummary{}
	for _, opportunityID := range organization.Opportunities {
		opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, opportunityID)
		if err != nil {
			var notFound *models.NotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
			s.logger.Warnf("Organization %s references missing opportunity %s", organization.ID, opportunityID)
			continue
		}
		expanded = append(expanded, opportunity.Summary())
	}

	return &models.OrganizationView{
		ID:            organization.ID,
		OrgName:       organization.OrgName,
		Phone:         organization.Phone,
		Email:         organization.Email,
		Description:   organization.Description,
		LogoImage:     organization.LogoImage,
		Opportunities: organization.Opportunities,
		Expanded:      expanded,
	}, nil
}

func (s *OrganizationService) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	return s.organizationRepo.ListOrganizations(ctx)
}

// UpdateOrganization applies a partial profile update
func (s *OrganizationService) UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error) {
	organization, err := s.organizationRepo.GetOrganizationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.OrgName != nil {
		organization.OrgName = *patch.OrgName
		updates["org_name"] = *patch.OrgName
	}
	if patch.Phone != nil {
		organization.Phone = *patch.Phone
		updates["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		organization.Email = *patch.Email
		updates["email"] = *patch.Email
	}
	if patch.Description != nil {
		organization.Description = *patch.Description
		updates["description"] = *patch.Description
	}
	if patch.LogoImage != nil {
		organization.LogoImage = *patch.LogoImage
		updates["logo_image"] = *patch.LogoImage
	}

	if len(updates) == 0 {
		return organization, nil
	}

	if err := s.organizationRepo.UpdateOrganizationFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return organization, nil
}

// AttachOpportunity links an opportunity to an organization. Both ids must
// resolve; attaching an id that is already linked is a conflict.
func (s *OrganizationService) AttachOpportunity(ctx context.Context, orgID, opportunityID string) (*models.Organization, error) {
	organization, err := s.organizationRepo.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if _, err := s.opportunityRepo.GetOpportunityByID(ctx, opportunityID); err != nil {
		return nil, err
	}

	for _, existing := range organization.Opportunities {
		if existing == opportunityID {
			return nil, models.NewConflictError("organization", "opportunity already added to this organization")
		}
	}

	organization.Opportunities = append(organization.Opportunities, opportunityID)

	if err := s.organizationRepo.SaveOrganization(ctx, organization); err != nil {
		return nil, err
	}

	s.logger.Infof("Attached opportunity %s to organization %s", opportunityID, organization.ID)
	return organization, nil
}
