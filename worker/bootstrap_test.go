package worker

import (
	"context"
	"testing"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDatabaseClient implements the table-management subset used by the
// bootstrap worker
type MockDatabaseClient struct {
	mock.Mock
}

func (m *MockDatabaseClient) GetItem(ctx context.Context, cfg models.QueryConfig, result interface{}) error {
	args := m.Called(ctx, cfg, result)
	return args.Error(0)
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
	return args.Error(0)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	args := m.Called(ctx, tableName, results)
	return args.Error(0)
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

// TableBootstrapTestSuite defines a test suite for the table bootstrap
type TableBootstrapTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockClient *MockDatabaseClient
	bootstrap  *TableBootstrap
}

// SetupTest runs before each test
func (suite *TableBootstrapTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockClient = &MockDatabaseClient{}

	mockLogger := &MockLogger{}
	mockLogger.On("Infof", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	mockLogger.On("Warnf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()
	mockLogger.On("Errorf", mock.AnythingOfType("string"), mock.Anything).Return().Maybe()

	cfg := &models.Config{
		DynamoDBTablePrefix: "test",
		Tables:              []string{"volunteers"},
	}
	suite.bootstrap = NewTableBootstrap(suite.mockClient, cfg, mockLogger)
}

// TearDownTest runs after each test
func (suite *TableBootstrapTestSuite) TearDownTest() {
	suite.mockClient.AssertExpectations(suite.T())
}

func activeTable(name string) *dynamodb.DescribeTableOutput {
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   aws.String(name),
			TableStatus: types.TableStatusActive,
		},
	}
}

// TestEnsureTablesAlreadyExists verifies no create happens for a live table
func (suite *TableBootstrapTestSuite) TestEnsureTablesAlreadyExists() {
	suite.mockClient.On("DescribeTable", suite.ctx, "test_volunteers").Return(activeTable("test_volunteers"), nil)

	err := suite.bootstrap.EnsureTables(suite.ctx)

	assert.NoError(suite.T(), err)
	suite.mockClient.AssertNotCalled(suite.T(), "CreateTable", mock.Anything, mock.Anything)
}

// TestEnsureTablesCreatesMissing verifies the create-then-wait path
func (suite *TableBootstrapTestSuite) TestEnsureTablesCreatesMissing() {
	notFound := &smithy.GenericAPIError{
		Code:    "ResourceNotFoundException",
		Message: "Requested resource not found",
	}

	suite.mockClient.On("DescribeTable", suite.ctx, "test_volunteers").Return(nil, notFound).Once()
	suite.mockClient.On("CreateTable", suite.ctx, mock.MatchedBy(func(input *dynamodb.CreateTableInput) bool {
		return *input.TableName == "test_volunteers"
	})).Return(nil)
	suite.mockClient.On("DescribeTable", suite.ctx, "test_volunteers").Return(activeTable("test_volunteers"), nil)

	err := suite.bootstrap.EnsureTables(suite.ctx)

	assert.NoError(suite.T(), err)
}

// TestEnsureTablesCreateRace verifies losing the creation race is not an
// error
func (suite *TableBootstrapTestSuite) TestEnsureTablesCreateRace() {
	notFound := &smithy.GenericAPIError{Code: "ResourceNotFoundException"}
	inUse := &smithy.GenericAPIError{Code: "ResourceInUseException"}

	suite.mockClient.On("DescribeTable", suite.ctx, "test_volunteers").Return(nil, notFound).Once()
	suite.mockClient.On("CreateTable", suite.ctx, mock.Anything).Return(inUse)
	suite.mockClient.On("DescribeTable", suite.ctx, "test_volunteers").Return(activeTable("test_volunteers"), nil)

	err := suite.bootstrap.EnsureTables(suite.ctx)

	assert.NoError(suite.T(), err)
}

// TestEnsureTablesDescribeFailure verifies unexpected errors propagate
func (suite *TableBootstrapTestSuite) TestEnsureTablesDescribeFailure() {
	accessDenied := &smithy.GenericAPIError{Code: "AccessDeniedException"}
	suite.mockClient.On("DescribeTable", suite.ctx, "test_volunteers").Return(nil, accessDenied)

	err := suite.bootstrap.EnsureTables(suite.ctx)

	assert.Error(suite.T(), err)
	suite.mockClient.AssertNotCalled(suite.T(), "CreateTable", mock.Anything, mock.Anything)
}

// TestTableBootstrapTestSuite runs the test suite
func TestTableBootstrapTestSuite(t *testing.T) {
	suite.Run(t, new(TableBootstrapTestSuite))
}
