package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteerhub-backend/dal"
	"volunteerhub-backend/infrastructure"
	"volunteerhub-backend/models"
	"volunteerhub-backend/utils/logger"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const tableActiveTimeout = 2 * time.Minute

// TableBootstrap creates the DynamoDB tables the service depends on.
type TableBootstrap struct {
	dbClient dal.DatabaseClientInterface
	config   *models.Config
	logger   logger.Logger
}

// NewTableBootstrap creates a bootstrap handler over an existing DB client
func NewTableBootstrap(dbClient dal.DatabaseClientInterface, cfg *models.Config, log logger.Logger) *TableBootstrap {
	return &TableBootstrap{
		dbClient: dbClient,
		config:   cfg,
		logger:   log,
	}
}

// EnsureTables creates every configured table that does not exist yet and
// waits for each to become ACTIVE.
func (tb *TableBootstrap) EnsureTables(ctx context.Context) error {
	for _, name := range tb.config.Tables {
		tableName := tb.config.DynamoDBTablePrefix + "_" + name

		exists, err := tb.tableExists(ctx, tableName)
		if err != nil {
			return fmt.Errorf("failed to check table %s: %w", tableName, err)
		}
		if exists {
			tb.logger.Infof("Table %s already exists, skipping", tableName)
			continue
		}

		if err := tb.createTable(ctx, tableName); err != nil {
			return err
		}

		if err := tb.waitForActive(ctx, tableName); err != nil {
			return err
		}
	}

	return nil
}

func (tb *TableBootstrap) createTable(ctx context.Context, tableName string) error {
	input, err := infrastructure.GetTables(tableName)
	if err != nil {
		return fmt.Errorf("failed to get table input: %w", err)
	}

	tb.logger.Infof("Creating table %s", tableName)
	if err := tb.dbClient.CreateTable(ctx, input); err != nil {
		// Another instance may have won the race.
		if isTableInUseError(err) {
			tb.logger.Infof("Table %s is being created elsewhere", tableName)
			return nil
		}
		return fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return nil
}

func (tb *TableBootstrap) waitForActive(ctx context.Context, tableName string) error {
	deadline := time.Now().Add(tableActiveTimeout)

	for time.Now().Before(deadline) {
		desc, err := tb.dbClient.DescribeTable(ctx, tableName)
		if err == nil && desc.Table != nil && desc.Table.TableStatus == types.TableStatusActive {
			tb.logger.Infof("Table %s is active", tableName)
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	return fmt.Errorf("table %s did not become active within %s", tableName, tableActiveTimeout)
}

func (tb *TableBootstrap) tableExists(ctx context.Context, tableName string) (bool, error) {
	_, err := tb.dbClient.DescribeTable(ctx, tableName)
	if err != nil {
		if isTableNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isTableNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceNotFoundException"
	}

	// Fallback to string matching for wrapped transport errors
	errorStr := err.Error()
	return strings.Contains(errorStr, "ResourceNotFoundException") ||
		strings.Contains(errorStr, "Table not found") ||
		strings.Contains(errorStr, "Requested resource not found")
}

func isTableInUseError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ResourceInUseException"
	}
	return strings.Contains(err.Error(), "ResourceInUseException")
}
