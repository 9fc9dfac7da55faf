package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/dormhq/dorm-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFindBillByResidentPeriod(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		bill := &models.LedgerEntry{
			ID:             "bill-1",
			Kind:           models.KindBill,
			ResidentID:     "res-1",
			Period:         "2025-08",
			ResidentPeriod: "res-1#2025-08",
			TotalDue:       50000,
			Status:         models.StatusUnpaid,
			Version:        1,
		}

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return *in.IndexName == residentPeriodGSI
		})).Return(&dynamodb.QueryOutput{
			Items: []map[string]types.AttributeValue{entryItem(t, bill)},
		}, nil).Once()

		found, err := store.FindBillByResidentPeriod(context.Background(), "res-1", "2025-08")

		assert.NoError(t, err)
		assert.Equal(t, "bill-1", found.ID)
		assert.Equal(t, "res-1#2025-08", found.ResidentPeriod)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("Query", mock.Anything, mock.Anything).
			Return(&dynamodb.QueryOutput{Items: nil}, nil).Once()

		_, err := store.FindBillByResidentPeriod(context.Background(), "res-1", "2025-09")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestCreateEntry(t *testing.T) {
	t.Run("Stamps Id, Timestamps, Version And Status", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		var captured *dynamodb.PutItemInput
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.ConditionExpression == "attribute_not_exists(id)"
		})).Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.PutItemInput)
		}).Return(&dynamodb.PutItemOutput{}, nil).Once()

		// As the lifecycle manager hands it over: no id, no timestamps.
		entry := &models.LedgerEntry{
			Kind:       models.KindBill,
			ResidentID: "res-1",
			TotalDue:   50000,
		}

		created, err := store.CreateEntry(context.Background(), entry)

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
		assert.Equal(t, int64(1), created.Version)
		assert.Equal(t, models.StatusUnpaid, created.Status)

		id, ok := captured.Item["id"].(*types.AttributeValueMemberS)
		assert.True(t, ok)
		assert.Equal(t, created.ID, id.Value)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.CreateEntry(context.Background(), &models.LedgerEntry{ID: "bill-1"})

		assert.ErrorIs(t, err, storage.ErrEntryExists)
		mockClient.AssertExpectations(t)
	})
}

func TestOverwriteEntry(t *testing.T) {
	op := models.OperationContext{ActorID: "admin-1"}

	existing := &models.LedgerEntry{
		ID:         "bill-1",
		Kind:       models.KindBill,
		ResidentID: "res-1",
		Period:     "2025-08",
		TotalDue:   50000,
		AmountPaid: 0,
		Status:     models.StatusUnpaid,
		Version:    1,
		CreatedBy:  "admin-0",
	}

	t.Run("Replaces In Place And Resets Balance", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		var captured *dynamodb.PutItemInput
		mockClient.On("PutItem", mock.Anything, mock.AnythingOfType("*dynamodb.PutItemInput")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.PutItemInput)
			}).
			Return(&dynamodb.PutItemOutput{}, nil).Once()

		replacement := &models.LedgerEntry{
			Period:         "2025-08",
			ResidentPeriod: "res-1#2025-08",
			TotalDue:       70000,
			Remarks:        "regenerated with aircon charge",
		}

		result, err := store.OverwriteEntry(context.Background(), op, existing, replacement)

		assert.NoError(t, err)
		assert.Equal(t, "bill-1", result.ID)
		assert.Equal(t, int64(70000), result.TotalDue)
		assert.Equal(t, int64(0), result.AmountPaid)
		assert.Equal(t, models.StatusUnpaid, result.Status)
		assert.Equal(t, int64(2), result.Version)
		assert.Equal(t, "admin-0", result.CreatedBy)
		assert.Equal(t, "admin-1", result.UpdatedBy)

		// The put only lands if no payment slipped in since the duplicate check.
		assert.Equal(t, "version = :version AND amount_paid = :zero", *captured.ConditionExpression)
		assert.Equal(t, &types.AttributeValueMemberN{Value: "1"},
			captured.ExpressionAttributeValues[":version"])
		mockClient.AssertExpectations(t)
	})

	t.Run("Concurrent Payment Blocks Overwrite", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		_, err := store.OverwriteEntry(context.Background(), op, existing, &models.LedgerEntry{TotalDue: 70000})

		assert.ErrorIs(t, err, storage.ErrStoreConflict)
		mockClient.AssertExpectations(t)
	})
}

func TestListOutstandingEntries(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := New(mockClient, testTables())

	unpaid := &models.LedgerEntry{ID: "bill-1", Kind: models.KindBill, Status: models.StatusUnpaid, TotalDue: 50000}
	partial := &models.LedgerEntry{ID: "bill-2", Kind: models.KindBill, Status: models.StatusPartiallyPaid, TotalDue: 30000, AmountPaid: 10000}

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return *in.IndexName == entryKindGSI && *in.FilterExpression == "#status <> :paid"
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{entryItem(t, unpaid), entryItem(t, partial)},
	}, nil).Once()

	entries, err := store.ListOutstandingEntries(context.Background(), models.KindBill)

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	mockClient.AssertExpectations(t)
}

func TestGetEntry(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "ledger_entries"
		})).Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()

		_, err := store.GetEntry(context.Background(), "missing")

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}
