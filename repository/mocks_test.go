package repository

import (
	"context"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/mock"
)

// MockDatabaseClient implements DatabaseClientInterface for testing. Read
// methods accept a fixture as the first mock return value and copy it into
// the caller's result pointer, mirroring how the real client unmarshals.
type MockDatabaseClient struct {
	mock.Mock
}

func (m *MockDatabaseClient) GetItem(ctx context.Context, cfg models.QueryConfig, result interface{}) error {
	args := m.Called(ctx, cfg, result)
	if args.Get(0) != nil {
		switch fixture := args.Get(0).(type) {
		case *models.Volunteer:
			if out, ok := result.(*models.Volunteer); ok {
				*out = *fixture
			}
		case *models.Opportunity:
			if out, ok := result.(*models.Opportunity); ok {
				*out = *fixture
			}
		case *models.Organization:
			if out, ok := result.(*models.Organization); ok {
				*out = *fixture
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) PutItem(ctx context.Context, tableName string, item interface{}) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}

func (m *MockDatabaseClient) UpdateItem(ctx context.Context, tableName, key, keyValue string, updates map[string]interface{}) error {
	args := m.Called(ctx, tableName, key, keyValue, updates)
	return args.Error(0)
}

func (m *MockDatabaseClient) DeleteItem(ctx context.Context, tableName, key, value string) error {
	args := m.Called(ctx, tableName, key, value)
	return args.Error(0)
}

func (m *MockDatabaseClient) QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error {
	args := m.Called(ctx, tableName, indexName, keyName, keyValue, results)
	if args.Get(0) != nil {
		if fixture, ok := args.Get(0).([]*models.Opportunity); ok {
			if out, ok := results.(*[]*models.Opportunity); ok {
				*out = fixture
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	args := m.Called(ctx, tableName, results)
	if args.Get(0) != nil {
		switch fixture := args.Get(0).(type) {
		case []*models.Volunteer:
			if out, ok := results.(*[]*models.Volunteer); ok {
				*out = fixture
			}
		case []*models.Opportunity:
			if out, ok := results.(*[]*models.Opportunity); ok {
				*out = fixture
			}
		case []*models.Organization:
			if out, ok := results.(*[]*models.Organization); ok {
				*out = fixture
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockDatabaseClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

// MockRepoLogger implements the logger interface for testing
type MockRepoLogger struct {
	mock.Mock
}

func (m *MockRepoLogger) Debug(args ...interface{}) {
	m.Called(args...)
}

func (m *MockRepoLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockRepoLogger) Info(args ...interface{}) {
	m.Called(args...)
}

func (m *MockRepoLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockRepoLogger) Warn(args ...interface{}) {
	m.Called(args...)
}

func (m *MockRepoLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockRepoLogger) Error(args ...interface{}) {
	m.Called(args...)
}

func (m *MockRepoLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockRepoLogger) Fatal(args ...interface{}) {
	m.Called(args...)
}

func (m *MockRepoLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockRepoLogger) WithFields(fields map[string]interface{}) logger.Logger {
	m.Called(fields)
	return m
}

// newRepoTestLogger returns a logger mock that accepts any call
func newRepoTestLogger() *MockRepoLogger {
	m := &MockRepoLogger{}
	m.On("Debug", mock.Anything).Return().Maybe()
	m.On("Debugf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Info", mock.Anything).Return().Maybe()
	m.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Warn", mock.Anything).Return().Maybe()
	m.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	m.On("Error", mock.Anything).Return().Maybe()
	m.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	return m
}
