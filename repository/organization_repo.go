package repository

import (
	"context"
	"time"
	"volunteerhub-backend/dal"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils"
	"volunteerhub-backend/utils/logger"
)

// OrganizationRepository implements OrganizationRepositoryInterface over DynamoDB
type OrganizationRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *OrganizationRepository {
	return &OrganizationRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *OrganizationRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_organizations"
}

// CreateOrganization stores a new organization. org_name is unique across
// organizations; duplicates are rejected with a conflict.
func (r *OrganizationRepository) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	r.logger.Infof("Creating organization: %s", organization.OrgName)

	existing := models.Organization{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "org_name-index",
		KeyName:   "org_name",
		KeyValue:  organization.OrgName,
		KeyType:   models.StringType,
	}
	if err := r.db.GetItem(ctx, cfg, &existing); err != nil {
		r.logger.Errorf("Failed to check organization name %s: %v", organization.OrgName, err)
		return nil, err
	}
	if existing.ID != "" {
		return nil, models.NewConflictError("organization", "organization with this name already exists")
	}

	now := time.Now()
	organization.ID = utils.GenerateUUID()
	organization.CreatedAt = now
	organization.UpdatedAt = now

	if organization.Opportunities == nil {
		organization.Opportunities = []string{}
	}

	if err := r.db.PutItem(ctx, r.tableName(), organization); err != nil {
		r.logger.Errorf("Failed to create organization: %v", err)
		return nil, err
	}

	r.logger.Infof("Organization created successfully: %s", organization.ID)
	return organization, nil
}

func (r *OrganizationRepository) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	organization := models.Organization{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}

	if err := r.db.GetItem(ctx, cfg, &organization); err != nil {
		r.logger.Errorf("Failed to get organization %s: %v", id, err)
		return nil, err
	}

	if organization.ID == "" {
		return nil, models.NewNotFoundError("organization", id)
	}

	return &organization, nil
}

func (r *OrganizationRepository) GetOrganizationByName(ctx context.Context, orgName string) (*models.Organization, error) {
	organization := models.Organization{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "org_name-index",
		KeyName:   "org_name",
		KeyValue:  orgName,
		KeyType:   models.StringType,
	}

	if err := r.db.GetItem(ctx, cfg, &organization); err != nil {
		r.logger.Errorf("Failed to get organization by name %s: %v", orgName, err)
		return nil, err
	}

	if organization.ID == "" {
		return nil, models.NewNotFoundError("organization", orgName)
	}

	return &organization, nil
}

func (r *OrganizationRepository) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	organizations := []*models.Organization{}
	if err := r.db.Scan(ctx, r.tableName(), &organizations); err != nil {
		r.logger.Errorf("Failed to list organizations: %v", err)
		return nil, err
	}
	return organizations, nil
}

// SaveOrganization persists the organization as a whole-document replace
func (r *OrganizationRepository) SaveOrganization(ctx context.Context, organization *models.Organization) error {
	organization.UpdatedAt = time.Now()
	if err := r.db.PutItem(ctx, r.tableName(), organization); err != nil {
		r.logger.Errorf("Failed to save organization %s: %v", organization.ID, err)
		return err
	}
	return nil
}

// UpdateOrganizationFields applies a field-level update. The caller is
// responsible for existence checks.
func (r *OrganizationRepository) UpdateOrganizationFields(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.tableName(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update organization %s: %v", id, err)
		return err
	}
	return nil
}
