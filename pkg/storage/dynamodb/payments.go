package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
)

const (
	paymentEntryGSI    = "entry_id-index"
	paymentResidentGSI = "resident_id-index"
)

// ListPaymentsByEntry retrieves every payment recorded against a ledger entry,
// oldest first.
func (s *Store) ListPaymentsByEntry(ctx context.Context, entryID string) ([]models.PaymentRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Payments),
		IndexName:              aws.String(paymentEntryGSI),
		KeyConditionExpression: aws.String("entry_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: entryID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by entry: %w", err)
	}

	var payments []models.PaymentRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment records: %w", err)
	}

	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.Before(payments[j].CreatedAt)
	})

	return payments, nil
}

// ListPaymentsByResident retrieves every payment recorded for a resident.
func (s *Store) ListPaymentsByResident(ctx context.Context, residentID string) ([]models.PaymentRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Payments),
		IndexName:              aws.String(paymentResidentGSI),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: residentID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments by resident: %w", err)
	}

	var payments []models.PaymentRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &payments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment records: %w", err)
	}

	return payments, nil
}
