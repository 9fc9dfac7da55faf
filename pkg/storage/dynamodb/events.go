package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/reconcile"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/google/uuid"
)

const eventPaymentEventGSI = "event_id-index"

// CreateEvent adds a new event charge.
func (s *Store) CreateEvent(ctx context.Context, event *models.EventCharge) (*models.EventCharge, error) {
	now := time.Now()
	event.ID = uuid.New().String()
	event.Active = true
	event.CreatedAt = now
	event.UpdatedAt = now

	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event charge: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Events),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create event charge in DynamoDB: %w", err)
	}

	return event, nil
}

// GetEvent retrieves an event charge by id.
func (s *Store) GetEvent(ctx context.Context, eventID string) (*models.EventCharge, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Events),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get event charge from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}

	var event models.EventCharge
	if err := attributevalue.UnmarshalMap(result.Item, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event charge: %w", err)
	}

	return &event, nil
}

// ListActiveEvents retrieves all active event charges.
func (s *Store) ListActiveEvents(ctx context.Context) ([]models.EventCharge, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.Tables.Events),
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	}

	result, err := s.Client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan events table: %w", err)
	}

	var events []models.EventCharge
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event charges: %w", err)
	}

	return events, nil
}

// RecordEventPayment upserts the single running-total record for an (event,
// resident) pair. The new total is the existing total plus the tendered amount,
// capped at the event's amount due, with the status rederived from the shared rule.
// The write is a conditional put: attribute_not_exists for a first payment, a
// version condition for a follow-up. Either condition failing means another payment
// landed concurrently, and the attempt restarts from the read.
func (s *Store) RecordEventPayment(ctx context.Context, op models.OperationContext, in storage.EventPaymentInput) (*models.EventPaymentRecord, error) {
	if in.Tendered <= 0 {
		return nil, fmt.Errorf("tendered %d: %w", in.Tendered, storage.ErrInvalidAmount)
	}

	event, err := s.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		record, retry, err := s.recordEventPaymentOnce(ctx, op, event, in)
		if err != nil {
			return nil, err
		}
		if retry {
			slog.Warn("event payment write conflicted, retrying from read",
				"eventId", in.EventID, "residentId", in.ResidentID, "attempt", attempt+1)
			continue
		}
		return record, nil
	}

	return nil, fmt.Errorf("event payment %s: %w", models.EventPaymentID(in.EventID, in.ResidentID), storage.ErrStoreConflict)
}

func (s *Store) recordEventPaymentOnce(ctx context.Context, op models.OperationContext, event *models.EventCharge, in storage.EventPaymentInput) (*models.EventPaymentRecord, bool, error) {
	now := time.Now()
	id := models.EventPaymentID(in.EventID, in.ResidentID)

	existing, err := s.GetEventPayment(ctx, in.EventID, in.ResidentID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, false, err
	}

	var base int64
	if existing != nil {
		base = existing.AmountPaid
	}

	newTotal := base + reconcile.Clamp(in.Tendered, event.AmountDue, base)
	newStatus := reconcile.DeriveStatus(newTotal, event.AmountDue)

	if existing == nil {
		record := &models.EventPaymentRecord{
			ID:         id,
			EventID:    in.EventID,
			ResidentID: in.ResidentID,
			AmountPaid: newTotal,
			Status:     newStatus,
			Version:    1,
			RecordedBy: op.ActorID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return nil, false, fmt.Errorf("failed to marshal event payment record: %w", err)
		}

		_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(s.Tables.EventPayments),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(id)"),
		})
		if err != nil {
			var condCheckFailed *types.ConditionalCheckFailedException
			if errors.As(err, &condCheckFailed) {
				// Lost the insert race; re-read and treat the winner as the base.
				return nil, true, nil
			}
			return nil, false, fmt.Errorf("failed to create event payment record: %w", err)
		}

		return record, false, nil
	}

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.EventPayments),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET amount_paid = :paid, #status = :status, version = version + :inc, recorded_by = :actor, updated_at = :now"),
		ConditionExpression: aws.String("version = :version"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newTotal)},
			":status":  &types.AttributeValueMemberS{Value: string(newStatus)},
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", existing.Version)},
			":inc":     &types.AttributeValueMemberN{Value: "1"},
			":actor":   &types.AttributeValueMemberS{Value: op.ActorID},
			":now":     nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("failed to update event payment record: %w", err)
	}

	existing.AmountPaid = newTotal
	existing.Status = newStatus
	existing.Version++
	existing.RecordedBy = op.ActorID
	existing.UpdatedAt = now

	return existing, false, nil
}

// GetEventPayment retrieves the single payment record for an (event, resident) pair.
func (s *Store) GetEventPayment(ctx context.Context, eventID, residentID string) (*models.EventPaymentRecord, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": models.EventPaymentID(eventID, residentID)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payment id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.EventPayments),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get event payment from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("event payment for event %s resident %s: %w", eventID, residentID, storage.ErrNotFound)
	}

	var record models.EventPaymentRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event payment record: %w", err)
	}

	return &record, nil
}

// ListEventPayments retrieves all payment records for an event.
func (s *Store) ListEventPayments(ctx context.Context, eventID string) ([]models.EventPaymentRecord, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.EventPayments),
		IndexName:              aws.String(eventPaymentEventGSI),
		KeyConditionExpression: aws.String("event_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: eventID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query event payments: %w", err)
	}

	var records []models.EventPaymentRecord
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event payment records: %w", err)
	}

	return records, nil
}
