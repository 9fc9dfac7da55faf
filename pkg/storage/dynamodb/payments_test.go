package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func paymentItem(t *testing.T, p *models.PaymentRecord) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(p)
	assert.NoError(t, err)
	return item
}

func TestListPaymentsByEntry(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := New(mockClient, testTables())

	base := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	later := &models.PaymentRecord{ID: "pay-2", EntryID: "bill-1", Amount: 50000, CreatedAt: base.Add(time.Hour)}
	earlier := &models.PaymentRecord{ID: "pay-1", EntryID: "bill-1", Amount: 100000, CreatedAt: base}

	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		return *in.IndexName == "entry_id-index" && *in.KeyConditionExpression == "entry_id = :eid"
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{paymentItem(t, later), paymentItem(t, earlier)},
	}, nil).Once()

	payments, err := store.ListPaymentsByEntry(context.Background(), "bill-1")

	assert.NoError(t, err)
	assert.Len(t, payments, 2)
	assert.Equal(t, "pay-1", payments[0].ID, "history should read oldest first")
	assert.Equal(t, "pay-2", payments[1].ID)
	mockClient.AssertExpectations(t)
}

func TestListPaymentsByResident(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := New(mockClient, testTables())

	record := &models.PaymentRecord{ID: "pay-1", EntryID: "fine-1", ResidentID: "res-1", Amount: 20000}
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
		rid, ok := in.ExpressionAttributeValues[":rid"].(*types.AttributeValueMemberS)
		return ok && rid.Value == "res-1" && *in.IndexName == "resident_id-index"
	})).Return(&dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{paymentItem(t, record)},
	}, nil).Once()

	payments, err := store.ListPaymentsByResident(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, int64(20000), payments[0].Amount)
	mockClient.AssertExpectations(t)
}
