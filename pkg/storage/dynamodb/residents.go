package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/google/uuid"
)

// CreateResident creates a new resident record in DynamoDB.
func (s *Store) CreateResident(ctx context.Context, resident *models.Resident) (*models.Resident, error) {
	now := time.Now()
	resident.ID = uuid.New().String()
	resident.Deleted = false
	resident.CreatedAt = now
	resident.UpdatedAt = now

	item, err := attributevalue.MarshalMap(resident)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resident: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Residents),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err = s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create resident in DynamoDB: %w", err)
	}

	return resident, nil
}

// GetResident retrieves a resident from DynamoDB by id. Soft-deleted residents are
// returned as well; payment confirmation and audit paths still need their contact
// details.
func (s *Store) GetResident(ctx context.Context, residentID string) (*models.Resident, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": residentID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resident id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Residents),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get resident from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("resident %s: %w", residentID, storage.ErrNotFound)
	}

	var resident models.Resident
	if err := attributevalue.UnmarshalMap(result.Item, &resident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resident: %w", err)
	}

	return &resident, nil
}

// ListActiveResidents retrieves all residents that have not been soft-deleted.
func (s *Store) ListActiveResidents(ctx context.Context) ([]models.Resident, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.Tables.Residents),
		FilterExpression: aws.String("deleted = :false"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan residents table: %w", err)
	}

	var residents []models.Resident
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &residents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal residents: %w", err)
	}

	return residents, nil
}

// SoftDeleteResident flags a resident as removed and stamps the deletion time. No
// ledger entries, payment records, or event payments are touched; they remain for
// audit history.
func (s *Store) SoftDeleteResident(ctx context.Context, op models.OperationContext, residentID string) error {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal deletion time: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Residents),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: residentID},
		},
		UpdateExpression:    aws.String("SET deleted = :true, deleted_at = :now, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id) AND deleted = :false"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":now":   nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("resident %s: %w", residentID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to soft-delete resident: %w", err)
	}

	return nil
}
