package services

import (
	"context"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/stretchr/testify/mock"
)

// MockLogger implements the logger interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Fatal(args ...interface{}) {
	m.Called(args...)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) WithFields(fields map[string]interface{}) logger.Logger {
	m.Called(fields)
	return m
}

// expectAnyLogs registers Maybe expectations for every log level so tests
// only assert on the calls they care about
func expectAnyLogs(m *MockLogger) {
	m.On("Debug", mock.Anything).Return().Maybe()
	m.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Info", mock.Anything).Return().Maybe()
	m.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Warn", mock.Anything).Return().Maybe()
	m.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Error", mock.Anything).Return().Maybe()
	m.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
}

// MockVolunteerRepository implements VolunteerRepositoryInterface for testing
type MockVolunteerRepository struct {
	mock.Mock
}

func (m *MockVolunteerRepository) CreateVolunteer(ctx context.Context, volunteer *models.Volunteer) (*models.Volunteer, error) {
	args := m.Called(ctx, volunteer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) GetVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerRepository) SaveVolunteer(ctx context.Context, volunteer *models.Volunteer) error {
	args := m.Called(ctx, volunteer)
	return args.Error(0)
}

func (m *MockVolunteerRepository) UpdateVolunteerFields(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

// MockOpportunityRepository implements OpportunityRepositoryInterface for testing
type MockOpportunityRepository struct {
	mock.Mock
}

func (m *MockOpportunityRepository) CreateOpportunity(ctx context.Context, opportunity *models.Opportunity) (*models.Opportunity, error) {
	args := m.Called(ctx, opportunity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) ListOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) ListOpportunitiesByLocation(ctx context.Context, city string) ([]*models.Opportunity, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) ListOpportunitiesByUrgency(ctx context.Context, urgency string) ([]*models.Opportunity, error) {
	args := m.Called(ctx, urgency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityRepository) UpdateOpportunityFields(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

// MockOrganizationRepository implements OrganizationRepositoryInterface for testing
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) CreateOrganization(ctx context.Context, organization *models.Organization) (*models.Organization, error) {
	args := m.Called(ctx, organization)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) GetOrganizationByName(ctx context.Context, orgName string) (*models.Organization, error) {
	args := m.Called(ctx, orgName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, organization *models.Organization) error {
	args := m.Called(ctx, organization)
	return args.Error(0)
}

func (m *MockOrganizationRepository) UpdateOrganizationFields(ctx context.Context, id string, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}
