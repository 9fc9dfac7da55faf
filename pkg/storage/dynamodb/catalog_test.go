package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/dormhq/dorm-ledger/pkg/models"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	"github.com/dormhq/dorm-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func templateItem(t *testing.T, tpl *models.ChargeTemplate) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(tpl)
	assert.NoError(t, err)
	return item
}

func TestCreateChargeTemplate(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := New(mockClient, testTables())

	var captured *dynamodb.PutItemInput
	mockClient.On("PutItem", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*dynamodb.PutItemInput)
		}).
		Return(&dynamodb.PutItemOutput{}, nil).Once()

	tpl, err := store.CreateChargeTemplate(context.Background(), &models.ChargeTemplate{
		Kind:   models.ChargeFine,
		Name:   "Curfew Violation",
		Amount: 20000,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, tpl.ID)
	assert.Equal(t, "charge_templates", *captured.TableName)
	assert.Equal(t, "attribute_not_exists(id)", *captured.ConditionExpression)
	mockClient.AssertExpectations(t)
}

func TestGetChargeTemplates(t *testing.T) {
	t.Run("Resolves Every Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		rent := &models.ChargeTemplate{ID: "tpl-rent", Kind: models.ChargePayable, Name: "Monthly Rent", Amount: 350000}
		util := &models.ChargeTemplate{ID: "tpl-util", Kind: models.ChargePayable, Name: "Utilities", Amount: 50000}
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			id, ok := in.Key["id"].(*types.AttributeValueMemberS)
			return ok && id.Value == "tpl-rent"
		})).Return(&dynamodb.GetItemOutput{Item: templateItem(t, rent)}, nil).Once()
		mockClient.On("GetItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.GetItemInput) bool {
			id, ok := in.Key["id"].(*types.AttributeValueMemberS)
			return ok && id.Value == "tpl-util"
		})).Return(&dynamodb.GetItemOutput{Item: templateItem(t, util)}, nil).Once()

		templates, err := store.GetChargeTemplates(context.Background(), []string{"tpl-rent", "tpl-util"})

		assert.NoError(t, err)
		assert.Len(t, templates, 2)
		assert.Equal(t, int64(350000), templates[0].Amount)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing Id Fails The Whole Lookup", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: nil}, nil).Once()

		_, err := store.GetChargeTemplates(context.Background(), []string{"tpl-gone"})

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Retired Template Fails The Whole Lookup", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		retired := &models.ChargeTemplate{ID: "tpl-old", Kind: models.ChargePayable, Name: "Old Rate", Amount: 300000, Deleted: true}
		mockClient.On("GetItem", mock.Anything, mock.Anything).
			Return(&dynamodb.GetItemOutput{Item: templateItem(t, retired)}, nil).Once()

		_, err := store.GetChargeTemplates(context.Background(), []string{"tpl-old"})

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListChargeTemplates(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	store := New(mockClient, testTables())

	fine := &models.ChargeTemplate{ID: "tpl-curfew", Kind: models.ChargeFine, Name: "Curfew Violation", Amount: 20000}
	mockClient.On("Scan", mock.Anything, mock.MatchedBy(func(in *dynamodb.ScanInput) bool {
		kind, ok := in.ExpressionAttributeValues[":kind"].(*types.AttributeValueMemberS)
		return ok && kind.Value == "FINE" && *in.FilterExpression == "kind = :kind AND deleted = :false"
	})).Return(&dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{templateItem(t, fine)}}, nil).Once()

	templates, err := store.ListChargeTemplates(context.Background(), models.ChargeFine)

	assert.NoError(t, err)
	assert.Len(t, templates, 1)
	assert.Equal(t, "Curfew Violation", templates[0].Name)
	mockClient.AssertExpectations(t)
}

func TestSoftDeleteChargeTemplate(t *testing.T) {
	t.Run("Retires The Template", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		var captured *dynamodb.UpdateItemInput
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*dynamodb.UpdateItemInput)
			}).
			Return(&dynamodb.UpdateItemOutput{}, nil).Once()

		err := store.SoftDeleteChargeTemplate(context.Background(), "tpl-rent")

		assert.NoError(t, err)
		assert.Equal(t, "attribute_exists(id)", *captured.ConditionExpression)
		assert.Contains(t, *captured.UpdateExpression, "deleted = :true")
		mockClient.AssertExpectations(t)
	})

	t.Run("Unknown Template", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables())

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{}).Once()

		err := store.SoftDeleteChargeTemplate(context.Background(), "tpl-gone")

		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
