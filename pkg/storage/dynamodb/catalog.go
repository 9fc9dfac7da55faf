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

// CreateChargeTemplate adds a named payable or fine definition to the catalog.
func (s *Store) CreateChargeTemplate(ctx context.Context, tpl *models.ChargeTemplate) (*models.ChargeTemplate, error) {
	now := time.Now()
	tpl.ID = uuid.New().String()
	tpl.Deleted = false
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	item, err := attributevalue.MarshalMap(tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charge template: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.ChargeTemplates),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create charge template in DynamoDB: %w", err)
	}

	return tpl, nil
}

// GetChargeTemplates retrieves the templates for the given ids. Any missing or
// soft-deleted template fails the whole lookup: a bill must never be generated from a
// retired charge.
func (s *Store) GetChargeTemplates(ctx context.Context, ids []string) ([]models.ChargeTemplate, error) {
	templates := make([]models.ChargeTemplate, 0, len(ids))
	for _, id := range ids {
		key, err := attributevalue.MarshalMap(map[string]string{"id": id})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal charge template id: %w", err)
		}

		result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(s.Tables.ChargeTemplates),
			Key:       key,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get charge template from DynamoDB: %w", err)
		}
		if result.Item == nil {
			return nil, fmt.Errorf("charge template %s: %w", id, storage.ErrNotFound)
		}

		var tpl models.ChargeTemplate
		if err := attributevalue.UnmarshalMap(result.Item, &tpl); err != nil {
			return nil, fmt.Errorf("failed to unmarshal charge template: %w", err)
		}
		if tpl.Deleted {
			return nil, fmt.Errorf("charge template %s is retired: %w", id, storage.ErrNotFound)
		}

		templates = append(templates, tpl)
	}

	return templates, nil
}

// ListChargeTemplates retrieves all non-deleted templates of one kind.
func (s *Store) ListChargeTemplates(ctx context.Context, kind models.ChargeKind) ([]models.ChargeTemplate, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.Tables.ChargeTemplates),
		FilterExpression: aws.String("kind = :kind AND deleted = :false"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind":  &types.AttributeValueMemberS{Value: string(kind)},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan charge templates table: %w", err)
	}

	var templates []models.ChargeTemplate
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &templates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal charge templates: %w", err)
	}

	return templates, nil
}

// SoftDeleteChargeTemplate retires a template so it can no longer be selected.
// Entries generated from it keep their copied amounts.
func (s *Store) SoftDeleteChargeTemplate(ctx context.Context, id string) error {
	now, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.ChargeTemplates),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET deleted = :true, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":now":  now,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("charge template %s: %w", id, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to retire charge template: %w", err)
	}

	return nil
}
