package repository

import (
	"context"
	"time"
	"volunteerhub-backend/dal"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils"
	"volunteerhub-backend/utils/logger"
)

// OpportunityRepository implements OpportunityRepositoryInterface over DynamoDB
type OpportunityRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OpportunityRepository {
	return &OpportunityRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *OpportunityRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_opportunities"
}

func (r *OpportunityRepository) CreateOpportunity(ctx context.Context, opportunity *models.Opportunity) (*models.Opportunity, error) {
	now := time.Now()
	opportunity.ID = utils.GenerateUUID()
	opportunity.CreatedAt = now
	opportunity.UpdatedAt = now

	if opportunity.Image == "" {
		opportunity.Image = models.DefaultOpportunityImage
	}

	if err := r.db.PutItem(ctx, r.tableName(), opportunity); err != nil {
		r.logger.Errorf("Failed to create opportunity: %v", err)
		return nil, err
	}

	r.logger.Infof("Opportunity created successfully: %s", opportunity.ID)
	return opportunity, nil
}

func (r *OpportunityRepository) GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error) {
	opportunity := models.Opportunity{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}

	if err := r.db.GetItem(ctx, cfg, &opportunity); err != nil {
		r.logger.Errorf("Failed to get opportunity %s: %v", id, err)
		return nil, err
	}

	if opportunity.ID == "" {
		return nil, models.NewNotFoundError("opportunity", id)
	}

	return &opportunity, nil
}

func (r *OpportunityRepository) ListOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	opportunities := []*models.Opportunity{}
	if err := r.db.Scan(ctx, r.tableName(), &opportunities); err != nil {
		r.logger.Errorf("Failed to list opportunities: %v", err)
		return nil, err
	}
	return opportunities, nil
}

// ListOpportunitiesByLocation matches the location exactly, case-sensitive
func (r *OpportunityRepository) ListOpportunitiesByLocation(ctx context.Context, city string) ([]*models.Opportunity, error) {
	opportunities := []*models.Opportunity{}
	err := r.db.QueryByIndex(ctx, r.tableName(), "location-index", "location", city, &opportunities)
	if err != nil {
		r.logger.Errorf("Failed to list opportunities in %s: %v", city, err)
		return nil, err
	}
	return opportunities, nil
}

func (r *OpportunityRepository) ListOpportunitiesByUrgency(ctx context.Context, urgency string) ([]*models.Opportunity, error) {
	opportunities := []*models.Opportunity{}
	err := r.db.QueryByIndex(ctx, r.tableName(), "urgency-index", "urgency", urgency, &opportunities)
	if err != nil {
		r.logger.Errorf("Failed to list %s-urgency opportunities: %v", urgency, err)
		return nil, err
	}
	return opportunities, nil
}

// UpdateOpportunityFields applies a field-level update. The caller is
// responsible for existence checks.
func (r *OpportunityRepository) UpdateOpportunityFields(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.tableName(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update opportunity %s: %v", id, err)
		return err
	}
	return nil
}
