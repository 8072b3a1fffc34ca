package repository

import (
	"context"
	"time"
	"volunteerhub-backend/dal"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils"
	"volunteerhub-backend/utils/logger"
)

// VolunteerRepository implements VolunteerRepositoryInterface over DynamoDB
type VolunteerRepository struct {
	db     dal.DatabaseClientInterface
	config *models.Config
	logger logger.Logger
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *VolunteerRepository {
	return &VolunteerRepository{
		db:     db,
		config: cfg,
		logger: log,
	}
}

func (r *VolunteerRepository) tableName() string {
	return r.config.DynamoDBTablePrefix + "_volunteers"
}

// CreateVolunteer stores a new volunteer. Email is a secondary unique key;
// a duplicate registration is rejected with a conflict.
func (r *VolunteerRepository) CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error) {
	existing := models.Volunteer{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  volunteer.Email,
		KeyType:   models.StringType,
	}
	if err := r.db.GetItem(ctx, cfg, &existing); err != nil {
		r.logger.Errorf("Failed to check volunteer email %s: %v", volunteer.Email, err)
		return nil, err
	}
	if existing.ID != "" {
		return nil, models.NewConflictError("volunteer", "volunteer with this email already exists")
	}

	now := time.Now()
	volunteer.ID = utils.GenerateUUID()
	volunteer.CreatedAt = now
	volunteer.UpdatedAt = now

	if volunteer.Volunteering == nil {
		volunteer.Volunteering = map[string]int{}
	}
	if volunteer.History == nil {
		volunteer.History = []models.HistoryEntry{}
	}
	if volunteer.PreferredCategories == nil {
		volunteer.PreferredCategories = []string{}
	}

	if err := r.db.PutItem(ctx, r.tableName(), volunteer); err != nil {
		r.logger.Errorf("Failed to create volunteer: %v", err)
		return nil, err
	}

	r.logger.Infof("Volunteer created successfully: %s", volunteer.ID)
	return volunteer, nil
}

func (r *VolunteerRepository) GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	volunteer := models.Volunteer{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		KeyName:   "id",
		KeyValue:  id,
		KeyType:   models.StringType,
	}

	if err := r.db.GetItem(ctx, cfg, &volunteer); err != nil {
		r.logger.Errorf("Failed to get volunteer %s: %v", id, err)
		return nil, err
	}

	if volunteer.ID == "" {
		return nil, models.NewNotFoundError("volunteer", id)
	}

	return &volunteer, nil
}

func (r *VolunteerRepository) GetVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	volunteer := models.Volunteer{}
	cfg := models.QueryConfig{
		TableName: r.tableName(),
		IndexName: "email-index",
		KeyName:   "email",
		KeyValue:  email,
		KeyType:   models.StringType,
	}

	if err := r.db.GetItem(ctx, cfg, &volunteer); err != nil {
		r.logger.Errorf("Failed to get volunteer by email %s: %v", email, err)
		return nil, err
	}

	if volunteer.ID == "" {
		return nil, models.NewNotFoundError("volunteer", email)
	}

	return &volunteer, nil
}

func (r *VolunteerRepository) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	volunteers := []*models.Volunteer{}
	if err := r.db.Scan(ctx, r.tableName(), &volunteers); err != nil {
		r.logger.Errorf("Failed to list volunteers: %v", err)
		return nil, err
	}
	return volunteers, nil
}

// SaveVolunteer persists the volunteer as a whole-document replace. Two
// concurrent saves of the same volunteer are last-write-wins; the
// participation ledger relies on this being a single atomic document write.
func (r *VolunteerRepository) SaveVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	volunteer.UpdatedAt = time.Now()
	if err := r.db.PutItem(ctx, r.tableName(), volunteer); err != nil {
		r.logger.Errorf("Failed to save volunteer %s: %v", volunteer.ID, err)
		return err
	}
	return nil
}

// UpdateVolunteerFields applies a field-level update. The caller is
// responsible for existence checks.
func (r *VolunteerRepository) UpdateVolunteerFields(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	if err := r.db.UpdateItem(ctx, r.tableName(), "id", id, updates); err != nil {
		r.logger.Errorf("Failed to update volunteer %s: %v", id, err)
		return err
	}
	return nil
}
