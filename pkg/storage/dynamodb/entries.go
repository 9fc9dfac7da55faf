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
	"github.com/dormhq/dorm-ledger/pkg/reconcile"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/google/uuid"
)

const (
	residentPeriodGSI = "resident_period-index"
	residentEntryGSI  = "resident_id-index"
	entryKindGSI      = "kind-index"
)

// GetEntry retrieves a ledger entry (bill or fine) from DynamoDB by id.
func (s *Store) GetEntry(ctx context.Context, entryID string) (*models.LedgerEntry, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": entryID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.LedgerEntries),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entry from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("ledger entry %s: %w", entryID, storage.ErrNotFound)
	}

	var entry models.LedgerEntry
	if err := attributevalue.UnmarshalMap(result.Item, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entry: %w", err)
	}

	return &entry, nil
}

// FindBillByResidentPeriod looks up the bill for a (resident, period) pair through
// the resident_period GSI. This is the duplicate-detection read used before bill
// generation.
func (s *Store) FindBillByResidentPeriod(ctx context.Context, residentID, period string) (*models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.LedgerEntries),
		IndexName:              aws.String(residentPeriodGSI),
		KeyConditionExpression: aws.String("resident_period = :rp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rp": &types.AttributeValueMemberS{Value: models.BillResidentPeriod(residentID, period)},
		},
		Limit: aws.Int32(1),
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill by resident and period: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("bill for resident %s period %s: %w", residentID, period, storage.ErrNotFound)
	}

	var entry models.LedgerEntry
	if err := attributevalue.UnmarshalMap(result.Items[0], &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entry: %w", err)
	}

	return &entry, nil
}

// ListEntriesByResident retrieves all entries of one kind owned by a resident.
func (s *Store) ListEntriesByResident(ctx context.Context, residentID string, kind models.LedgerKind) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.LedgerEntries),
		IndexName:              aws.String(residentEntryGSI),
		KeyConditionExpression: aws.String("resident_id = :rid"),
		FilterExpression:       aws.String("kind = :kind"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":  &types.AttributeValueMemberS{Value: residentID},
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries by resident: %w", err)
	}

	var entries []models.LedgerEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	return entries, nil
}

// ListOutstandingEntries retrieves every entry of one kind that is not fully paid.
func (s *Store) ListOutstandingEntries(ctx context.Context, kind models.LedgerKind) ([]models.LedgerEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.LedgerEntries),
		IndexName:              aws.String(entryKindGSI),
		KeyConditionExpression: aws.String("kind = :kind"),
		FilterExpression:       aws.String("#status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
			":paid": &types.AttributeValueMemberS{Value: string(models.StatusPaid)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding entries: %w", err)
	}

	var entries []models.LedgerEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger entries: %w", err)
	}

	return entries, nil
}

// CreateEntry persists a new bill or fine. The entry arrives populated by the
// lifecycle manager; the store assigns the id and timestamps, stamps the version, and
// rederives the status from the paid amount so a stored status can never disagree
// with the balance.
func (s *Store) CreateEntry(ctx context.Context, entry *models.LedgerEntry) (*models.LedgerEntry, error) {
	now := time.Now()
	entry.ID = uuid.New().String()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.Version = 1
	entry.Status = reconcile.DeriveStatus(entry.AmountPaid, entry.TotalDue)

	item, err := attributevalue.MarshalMap(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.LedgerEntries),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("ledger entry %s: %w", entry.ID, storage.ErrEntryExists)
		}
		return nil, fmt.Errorf("failed to create ledger entry in DynamoDB: %w", err)
	}

	return entry, nil
}

// OverwriteEntry replaces an existing unpaid entry in place: same id, new totals,
// AmountPaid reset to zero. The put is conditioned on the version the caller
// observed, so a payment that lands between the duplicate check and the confirmed
// overwrite makes the overwrite fail instead of erasing the payment.
func (s *Store) OverwriteEntry(ctx context.Context, op models.OperationContext, existing *models.LedgerEntry, replacement *models.LedgerEntry) (*models.LedgerEntry, error) {
	now := time.Now()

	replacement.ID = existing.ID
	replacement.Kind = existing.Kind
	replacement.ResidentID = existing.ResidentID
	replacement.AmountPaid = 0
	replacement.Status = reconcile.DeriveStatus(0, replacement.TotalDue)
	replacement.Version = existing.Version + 1
	replacement.CreatedBy = existing.CreatedBy
	replacement.CreatedAt = existing.CreatedAt
	replacement.UpdatedBy = op.ActorID
	replacement.UpdatedAt = now

	item, err := attributevalue.MarshalMap(replacement)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal replacement entry: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.LedgerEntries),
		Item:                item,
		ConditionExpression: aws.String("version = :version AND amount_paid = :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", existing.Version)},
			":zero":    &types.AttributeValueMemberN{Value: "0"},
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("entry %s changed since the duplicate check: %w", existing.ID, storage.ErrStoreConflict)
		}
		return nil, fmt.Errorf("failed to overwrite ledger entry: %w", err)
	}

	return replacement, nil
}
