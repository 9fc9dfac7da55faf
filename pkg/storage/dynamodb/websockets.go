package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// observerConnection is one admin UI WebSocket subscriber in the connections table.
type observerConnection struct {
	ConnectionID string `dynamodbav:"connection_id"`
	PK           string `dynamodbav:"pk"`
}

const connectionsPK = "connections"

// AddConnection saves a new observer connection id to the database.
func (s *Store) AddConnection(ctx context.Context, connectionID string) error {
	conn := observerConnection{ConnectionID: connectionID, PK: connectionsPK}
	item, err := attributevalue.MarshalMap(conn)
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.Tables.Connections),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put connection: %w", err)
	}

	return nil
}

// RemoveConnection deletes an observer connection id from the database.
func (s *Store) RemoveConnection(ctx context.Context, connectionID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{
		"connection_id": connectionID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection key: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.Tables.Connections),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}

	return nil
}

// GetAllConnections retrieves all active observer connection ids.
func (s *Store) GetAllConnections(ctx context.Context) ([]string, error) {
	queryOutput, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Connections),
		IndexName:              aws.String("pk-index"),
		KeyConditionExpression: aws.String("pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: connectionsPK},
		},
		ProjectionExpression: aws.String("connection_id"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query connections table: %w", err)
	}

	var connections []observerConnection
	if err := attributevalue.UnmarshalListOfMaps(queryOutput.Items, &connections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal connections: %w", err)
	}

	connectionIDs := make([]string, len(connections))
	for i, conn := range connections {
		connectionIDs[i] = conn.ConnectionID
	}

	return connectionIDs, nil
}
