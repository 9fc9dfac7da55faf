package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/dormhq/dorm-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTables() Tables {
	return Tables{
		Residents:       "residents",
		ChargeTemplates: "charge_templates",
		LedgerEntries:   "ledger_entries",
		Payments:        "payments",
		Events:          "events",
		EventPayments:   "event_payments",
		Connections:     "connections",
	}
}

func entryItem(t *testing.T, entry *models.LedgerEntry) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(entry)
	assert.NoError(t, err)
	return item
}

func conditionCancelled() *types.TransactionCanceledException {
	return &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("None")},
			{Code: aws.String("ConditionalCheckFailed")},
		},
	}
}

func TestApplyPayment(t *testing.T) {
	op := models.OperationContext{ActorID: "admin-1", ScopeID: "main-dorm"}
	freshEntry := func() *models.LedgerEntry {
		return &models.LedgerEntry{
			ID:         "entry-1",
			Kind:       models.KindBill,
			ResidentID: "res-1",
			Period:     "2025-08",
			TotalDue:   50000,
			AmountPaid: 0,
			Status:     models.StatusUnpaid,
			Version:    1,
		}
	}

	t.Run("Partial Payment", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, freshEntry())}, nil).Once()

		var captured *dynamodb.TransactWriteItemsInput
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.TransactWriteItemsInput)
			}).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		result, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 30000,
			Method:   models.MethodCash,
			PaidAt:   time.Now(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(30000), result.Accepted)
		assert.Equal(t, int64(30000), result.Entry.AmountPaid)
		assert.Equal(t, models.StatusPartiallyPaid, result.Entry.Status)
		assert.Equal(t, int64(30000), result.Payment.Amount)
		assert.Equal(t, "admin-1", result.Payment.RecordedBy)

		// One indivisible unit: payment record put plus balance update.
		assert.Len(t, captured.TransactItems, 2)
		assert.NotNil(t, captured.TransactItems[0].Put)
		assert.NotNil(t, captured.TransactItems[1].Update)
		assert.Equal(t, "version = :version", *captured.TransactItems[1].Update.ConditionExpression)
		mockClient.AssertExpectations(t)
	})

	t.Run("Overpayment Is Clamped", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		entry := freshEntry()
		entry.AmountPaid = 30000
		entry.Status = models.StatusPartiallyPaid
		entry.Version = 2

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, entry)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		result, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 30000,
			Method:   models.MethodGCash,
			PaidAt:   time.Now(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(20000), result.Accepted)
		assert.Equal(t, int64(20000), result.Payment.Amount)
		assert.Equal(t, int64(50000), result.Entry.AmountPaid)
		assert.Equal(t, models.StatusPaid, result.Entry.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Settled Records Nothing", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		entry := freshEntry()
		entry.AmountPaid = 50000
		entry.Status = models.StatusPaid

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, entry)}, nil).Once()

		result, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 10000,
			Method:   models.MethodCash,
			PaidAt:   time.Now(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), result.Accepted)
		assert.Nil(t, result.Payment)
		assert.Equal(t, int64(50000), result.Entry.AmountPaid)
		mockClient.AssertExpectations(t)
	})

	t.Run("Non-Positive Amount Fails Before Store", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		_, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 0,
		})

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockClient.AssertNotCalled(t, "GetItem")
		mockClient.AssertNotCalled(t, "TransactWriteItems")
	})

	t.Run("Entry Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()

		_, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "missing",
			Tendered: 10000,
		})

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Conflict Retries From Read", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		// First read sees version 1; a concurrent payment bumps the entry before
		// our write lands, so the first transaction is cancelled on its condition.
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, freshEntry())}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, conditionCancelled()).Once()

		// Second read sees the concurrent payment's effect; the retry succeeds.
		advanced := freshEntry()
		advanced.AmountPaid = 20000
		advanced.Status = models.StatusPartiallyPaid
		advanced.Version = 2
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, advanced)}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(&dynamodb.TransactWriteItemsOutput{}, nil).Once()

		result, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 30000,
			Method:   models.MethodBankTransfer,
			PaidAt:   time.Now(),
		})

		// Both payments land: 20000 from the rival, 30000 from us.
		assert.NoError(t, err)
		assert.Equal(t, int64(30000), result.Accepted)
		assert.Equal(t, int64(50000), result.Entry.AmountPaid)
		assert.Equal(t, models.StatusPaid, result.Entry.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Retries Exhausted Surface Conflict", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, freshEntry())}, nil).Times(maxWriteAttempts)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, conditionCancelled()).Times(maxWriteAttempts)

		_, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 10000,
		})

		assert.ErrorIs(t, err, storage.ErrStoreConflict)
		mockClient.AssertExpectations(t)
	})

	t.Run("Unrelated Store Error Is Not Retried", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: entryItem(t, freshEntry())}, nil).Once()
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).
			Return(nil, errors.New("throughput exceeded")).Once()

		_, err := store.ApplyPayment(context.Background(), op, storage.PaymentInput{
			EntryID:  "entry-1",
			Tendered: 10000,
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrStoreConflict)
		mockClient.AssertExpectations(t)
	})
}
