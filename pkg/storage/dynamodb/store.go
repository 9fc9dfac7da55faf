package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dormhq/dorm-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store. Narrowing the
// SDK client to an interface keeps the store mockable in tests.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables names the DynamoDB tables the store operates on.
type Tables struct {
	Residents       string
	ChargeTemplates string
	LedgerEntries   string
	Payments        string
	Events          string
	EventPayments   string
	Connections     string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI
	Tables Tables
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{Client: client, Tables: tables}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// maxWriteAttempts bounds the optimistic retry loops on version-conditioned writes.
// Exhausting it surfaces storage.ErrStoreConflict, which callers may retry manually.
const maxWriteAttempts = 3
