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

// ApplyPayment atomically applies a tendered payment to a ledger entry: it writes a
// PaymentRecord for the accepted (clamped) amount and advances the entry's
// AmountPaid, status, and update metadata in one TransactWriteItems call conditioned
// on the version read at the start of the attempt. A concurrent payment against the
// same entry fails the condition and the whole attempt is retried from the read, so
// two simultaneous payments can never lose an update: each either lands on a fresh
// read of the balance or surfaces ErrStoreConflict after the retry budget.
func (s *Store) ApplyPayment(ctx context.Context, op models.OperationContext, in storage.PaymentInput) (*storage.PaymentResult, error) {
	// Fail fast before any store call; a non-positive tender is a caller bug.
	if in.Tendered <= 0 {
		return nil, fmt.Errorf("tendered %d: %w", in.Tendered, storage.ErrInvalidAmount)
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		result, retry, err := s.applyPaymentOnce(ctx, op, in)
		if err != nil {
			return nil, err
		}
		if retry {
			slog.Warn("payment write conflicted, retrying from read",
				"entryId", in.EntryID, "attempt", attempt+1)
			continue
		}
		return result, nil
	}

	return nil, fmt.Errorf("entry %s: %w", in.EntryID, storage.ErrStoreConflict)
}

// applyPaymentOnce performs one read-clamp-write attempt. The bool result requests a
// retry after a version conflict.
func (s *Store) applyPaymentOnce(ctx context.Context, op models.OperationContext, in storage.PaymentInput) (*storage.PaymentResult, bool, error) {
	// 1. Read the current entry state.
	entry, err := s.GetEntry(ctx, in.EntryID)
	if err != nil {
		return nil, false, err
	}

	// 2. Clamp the tendered amount against the remaining balance.
	accepted := reconcile.Clamp(in.Tendered, entry.TotalDue, entry.AmountPaid)
	if accepted == 0 {
		// Entry is already settled; record nothing rather than a zero payment.
		return &storage.PaymentResult{Entry: entry, Accepted: 0}, false, nil
	}

	newPaid := entry.AmountPaid + accepted
	newStatus := reconcile.DeriveStatus(newPaid, entry.TotalDue)
	now := time.Now()

	payment := &models.PaymentRecord{
		ID:         uuid.New().String(),
		EntryID:    entry.ID,
		EntryKind:  entry.Kind,
		ResidentID: entry.ResidentID,
		Amount:     accepted,
		Method:     in.Method,
		PaidAt:     in.PaidAt,
		Notes:      in.Notes,
		RecordedBy: op.ActorID,
		CreatedAt:  now,
	}

	paymentAV, err := attributevalue.MarshalMap(payment)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal payment record: %w", err)
	}
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// 3. Single atomic unit: the new payment record plus the balance update. The
	// entry update is conditioned on the version observed in step 1.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Payments),
					Item:                paymentAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(s.Tables.LedgerEntries),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: entry.ID},
					},
					UpdateExpression:    aws.String("SET amount_paid = :paid, #status = :status, version = version + :inc, updated_by = :actor, updated_at = :now"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newPaid)},
						":status":  &types.AttributeValueMemberS{Value: string(newStatus)},
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", entry.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
						":actor":   &types.AttributeValueMemberS{Value: op.ActorID},
						":now":     nowAV,
					},
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && transactionHadConditionFailure(tce) {
			// Someone else advanced the entry between our read and write.
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("failed to execute payment transaction: %w", err)
	}

	entry.AmountPaid = newPaid
	entry.Status = newStatus
	entry.Version++
	entry.UpdatedBy = op.ActorID
	entry.UpdatedAt = now

	return &storage.PaymentResult{Entry: entry, Payment: payment, Accepted: accepted}, false, nil
}

// transactionHadConditionFailure reports whether any item in a cancelled transaction
// failed its condition expression.
func transactionHadConditionFailure(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
