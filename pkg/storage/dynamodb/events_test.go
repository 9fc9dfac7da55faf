package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/dormhq/dorm-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func eventItem(t *testing.T, event *models.EventCharge) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(event)
	assert.NoError(t, err)
	return item
}

func eventPaymentItem(t *testing.T, record *models.EventPaymentRecord) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(record)
	assert.NoError(t, err)
	return item
}

func TestRecordEventPayment(t *testing.T) {
	op := models.OperationContext{ActorID: "admin-1"}
	event := &models.EventCharge{
		ID:        "event-1",
		Name:      "Acquaintance Party",
		AmountDue: 20000,
		DueDate:   time.Now().AddDate(0, 1, 0),
		Active:    true,
	}

	t.Run("First Payment Over Due Is Capped", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		// GetEvent, then GetEventPayment (absent), then the conditional insert.
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "events"
		})).Return(&dynamodb.GetItemOutput{Item: eventItem(t, event)}, nil).Once()
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "event_payments"
		})).Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			return *in.ConditionExpression == "attribute_not_exists(id)"
		})).Return(&dynamodb.PutItemOutput{}, nil).Once()

		record, err := store.RecordEventPayment(context.Background(), op, storage.EventPaymentInput{
			EventID:    "event-1",
			ResidentID: "res-1",
			Tendered:   25000,
			Method:     models.MethodCash,
			PaidAt:     time.Now(),
		})

		assert.NoError(t, err)
		assert.Equal(t, "event-1#res-1", record.ID)
		assert.Equal(t, int64(20000), record.AmountPaid)
		assert.Equal(t, models.StatusPaid, record.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Follow-Up Payment Builds On Running Total", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		existing := &models.EventPaymentRecord{
			ID:         "event-1#res-1",
			EventID:    "event-1",
			ResidentID: "res-1",
			AmountPaid: 5000,
			Status:     models.StatusPartiallyPaid,
			Version:    1,
		}

		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "events"
		})).Return(&dynamodb.GetItemOutput{Item: eventItem(t, event)}, nil).Once()
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "event_payments"
		})).Return(&dynamodb.GetItemOutput{Item: eventPaymentItem(t, existing)}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
			return *in.ConditionExpression == "version = :version"
		})).Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		record, err := store.RecordEventPayment(context.Background(), op, storage.EventPaymentInput{
			EventID:    "event-1",
			ResidentID: "res-1",
			Tendered:   10000,
			Method:     models.MethodMaya,
			PaidAt:     time.Now(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(15000), record.AmountPaid)
		assert.Equal(t, models.StatusPartiallyPaid, record.Status)
		assert.Equal(t, int64(2), record.Version)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Insert Race Retries As Update", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		rival := &models.EventPaymentRecord{
			ID:         "event-1#res-1",
			EventID:    "event-1",
			ResidentID: "res-1",
			AmountPaid: 8000,
			Status:     models.StatusPartiallyPaid,
			Version:    1,
		}

		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "events"
		})).Return(&dynamodb.GetItemOutput{Item: eventItem(t, event)}, nil).Once()

		// First read: no record yet. The insert loses the race, and the retry
		// reads the rival's record and upgrades to a version-conditioned update.
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "event_payments"
		})).Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()
		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			return *in.TableName == "event_payments"
		})).Return(&dynamodb.GetItemOutput{Item: eventPaymentItem(t, rival)}, nil).Once()
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		record, err := store.RecordEventPayment(context.Background(), op, storage.EventPaymentInput{
			EventID:    "event-1",
			ResidentID: "res-1",
			Tendered:   10000,
			Method:     models.MethodCash,
			PaidAt:     time.Now(),
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(18000), record.AmountPaid)
		mockClient.AssertExpectations(t)
	})

	t.Run("Non-Positive Amount Fails Before Store", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		_, err := store.RecordEventPayment(context.Background(), op, storage.EventPaymentInput{
			EventID:    "event-1",
			ResidentID: "res-1",
			Tendered:   -5,
		})

		assert.ErrorIs(t, err, storage.ErrInvalidAmount)
		mockClient.AssertNotCalled(t, "GetItem")
	})

	t.Run("Unknown Event", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()

		_, err := store.RecordEventPayment(context.Background(), op, storage.EventPaymentInput{
			EventID:    "missing",
			ResidentID: "res-1",
			Tendered:   5000,
		})

		assert.ErrorIs(t, err, storage.ErrNotFound)
		mockClient.AssertExpectations(t)
	})
}
