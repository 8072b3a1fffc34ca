package services

import (
	"context"
	"volunteerhub-backend/models"
	"volunteerhub-backend/repository"
	"volunteerhub-backend/utils/logger"
)

// urgentOpportunityLimit caps the urgent-opportunities listing
const urgentOpportunityLimit = 10

// OpportunityService handles opportunity postings
type OpportunityService struct {
	opportunityRepo repository.OpportunityRepositoryInterface
	logger          logger.Logger
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(opportunityRepo repository.OpportunityRepositoryInterface, log logger.Logger) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
		logger:          log,
	}
}

func (s *OpportunityService) CreateOpportunity(ctx context.Context, req *models.CreateOpportunityRequest) (*models.Opportunity, error) {
	opportunity := &models.Opportunity{
		OrgName:     req.OrgName,
		Category:    req.Category,
		Location:    req.Location,
		TypeOfWork:  req.TypeOfWork,
		Urgency:     models.OpportunityUrgency(req.Urgency),
		Description: req.Description,
		Image:       req.Image,
	}

	return s.opportunityRepo.CreateOpportunity(ctx, opportunity)
}

func (s *OpportunityService) GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error) {
	return s.opportunityRepo.GetOpportunityByID(ctx, id)
}

func (s *OpportunityService) ListOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	return s.opportunityRepo.ListOpportunities(ctx)
}

func (s *OpportunityService) ListOpportunitiesByLocation(ctx context.Context, city string) ([]*models.Opportunity, error) {
	return s.opportunityRepo.ListOpportunitiesByLocation(ctx, city)
}

// ListUrgentOpportunities returns up to ten high-urgency postings
func (s *OpportunityService) ListUrgentOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	opportunities, err := s.opportunityRepo.ListOpportunitiesByUrgency(ctx, string(models.OpportunityUrgencyHigh))
	if err != nil {
		return nil, err
	}

	if len(opportunities) > urgentOpportunityLimit {
		opportunities = opportunities[:urgentOpportunityLimit]
	}
	return opportunities, nil
}

// UpdateOpportunity applies a partial update. Only fields present in the
// patch are overwritten.
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, id string, patch *models.OpportunityPatch) (*models.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetOpportunityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.OrgName != nil {
		opportunity.OrgName = *patch.OrgName
		updates["org_name"] = *patch.OrgName
	}
	if patch.Category != nil {
		opportunity.Category = *patch.Category
		updates["category"] = *patch.Category
	}
	if patch.Location != nil {
		opportunity.Location = *patch.Location
		updates["location"] = *patch.Location
	}
	if patch.TypeOfWork != nil {
		opportunity.TypeOfWork = *patch.TypeOfWork
		updates["type_of_work"] = *patch.TypeOfWork
	}
	if patch.Urgency != nil {
		opportunity.Urgency = models.OpportunityUrgency(*patch.Urgency)
		updates["urgency"] = *patch.Urgency
	}
	if patch.Description != nil {
		opportunity.Description = *patch.Description
		updates["description"] = *patch.Description
	}
	if patch.Image != nil {
		opportunity.Image = *patch.Image
		updates["image"] = *patch.Image
	}

	if len(updates) == 0 {
		return opportunity, nil
	}

	if err := s.opportunityRepo.UpdateOpportunityFields(ctx, id, updates); err != nil {
		return nil, err
	}

	return opportunity, nil
}
