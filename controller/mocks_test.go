package controller

import (
	"context"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/stretchr/testify/mock"
)

// MockControllerLogger implements the logger interface for testing
type MockControllerLogger struct {
	mock.Mock
}

func (m *MockControllerLogger) Debug(args ...interface{}) {
	m.Called(args...)
}

func (m *MockControllerLogger) Debugf(format string, args ...interface{}) {
	m.Called(append([]interface{}{format}, args...)...)
}

func (m *MockControllerLogger) Info(args ...interface{}) {
	m.Called(args...)
}

func (m *MockControllerLogger) Infof(format string, args ...interface{}) {
	m.Called(append([]interface{}{format}, args...)...)
}

func (m *MockControllerLogger) Warn(args ...interface{}) {
	m.Called(args...)
}

func (m *MockControllerLogger) Warnf(format string, args ...interface{}) {
	m.Called(append([]interface{}{format}, args...)...)
}

func (m *MockControllerLogger) Error(args ...interface{}) {
	m.Called(args...)
}

func (m *MockControllerLogger) Errorf(format string, args ...interface{}) {
	m.Called(append([]interface{}{format}, args...)...)
}

func (m *MockControllerLogger) Fatal(args ...interface{}) {
	m.Called(args...)
}

func (m *MockControllerLogger) Fatalf(format string, args ...interface{}) {
	m.Called(append([]interface{}{format}, args...)...)
}

func (m *MockControllerLogger) WithFields(fields map[string]interface{}) logger.Logger {
	m.Called(fields)
	return m
}

// newQuietLogger builds a logger mock that accepts any call
func newQuietLogger() *MockControllerLogger {
	m := &MockControllerLogger{}
	m.On("Debug", mock.Anything).Maybe()
	m.On("Info", mock.Anything).Maybe()
	m.On("Warn", mock.Anything).Maybe()
	m.On("Error", mock.Anything).Maybe()
	m.On("Error", mock.Anything, mock.Anything).Maybe()
	m.On("Debugf", mock.Anything, mock.Anything).Maybe()
	m.On("Infof", mock.Anything, mock.Anything).Maybe()
	m.On("Infof", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("Warnf", mock.Anything, mock.Anything).Maybe()
	m.On("Errorf", mock.Anything, mock.Anything).Maybe()
	m.On("Errorf", mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("WithFields", mock.Anything).Maybe()
	return m
}

// MockVolunteerService implements VolunteerServiceInterface for testing
type MockVolunteerService struct {
	mock.Mock
}

func (m *MockVolunteerService) RegisterVolunteer(ctx context.Context, req *models.RegisterVolunteer) (*models.Volunteer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) CheckEmail(ctx context.Context, email string) (*models.VolunteerRef, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VolunteerRef), args.Error(1)
}

func (m *MockVolunteerService) GetVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) ListVolunteers(ctx context.Context) ([]*models.Volunteer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) ListVolunteersByLocation(ctx context.Context, city string) ([]*models.Volunteer, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) ListVolunteersByCategory(ctx context.Context, category string) ([]*models.Volunteer, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) RecordCompletion(ctx context.Context, volunteerID, opportunityID string) (*models.Volunteer, error) {
	args := m.Called(ctx, volunteerID, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) GetProfile(ctx context.Context, volunteerID string) (*models.VolunteerProfile, error) {
	args := m.Called(ctx, volunteerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VolunteerProfile), args.Error(1)
}

func (m *MockVolunteerService) EditProfile(ctx context.Context, volunteerID string, patch *models.VolunteerProfilePatch) (*models.Volunteer, error) {
	args := m.Called(ctx, volunteerID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Volunteer), args.Error(1)
}

func (m *MockVolunteerService) Leaderboard(ctx context.Context, city string) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

// MockOpportunityService implements OpportunityServiceInterface for testing
type MockOpportunityService struct {
	mock.Mock
}

func (m *MockOpportunityService) CreateOpportunity(ctx context.Context, req *models.CreateOpportunityRequest) (*models.Opportunity, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityService) GetOpportunityByID(ctx context.Context, id string) (*models.Opportunity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityService) ListOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityService) ListOpportunitiesByLocation(ctx context.Context, city string) ([]*models.Opportunity, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityService) ListUrgentOpportunities(ctx context.Context) ([]*models.Opportunity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Opportunity), args.Error(1)
}

func (m *MockOpportunityService) UpdateOpportunity(ctx context.Context, id string, patch *models.OpportunityPatch) (*models.Opportunity, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Opportunity), args.Error(1)
}

// MockOrganizationService implements OrganizationServiceInterface for testing
type MockOrganizationService struct {
	mock.Mock
}

func (m *MockOrganizationService) RegisterOrganization(ctx context.Context, req *models.RegisterOrganization) (*models.Organization, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationService) Login(ctx context.Context, req *models.OrganizationLogin) (*models.Organization, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationService) GetOrganizationByID(ctx context.Context, id string) (*models.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationService) GetOrganizationView(ctx context.Context, id string) (*models.OrganizationView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrganizationView), args.Error(1)
}

func (m *MockOrganizationService) ListOrganizations(ctx context.Context) ([]*models.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Organization), args.Error(1)
}

func (m *MockOrganizationService) UpdateOrganization(ctx context.Context, id string, patch *models.OrganizationPatch) (*models.Organization, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}

func (m *MockOrganizationService) AttachOpportunity(ctx context.Context, orgID, opportunityID string) (*models.Organization, error) {
	args := m.Called(ctx, orgID, opportunityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Organization), args.Error(1)
}
