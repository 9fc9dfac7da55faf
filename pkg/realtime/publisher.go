package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
)

// AllConnectionsGetter lists the connection ids of every subscribed admin dashboard.
type AllConnectionsGetter interface {
	GetAllConnections(ctx context.Context) ([]string, error)
}

// DefaultPublisher broadcasts ledger and event payment changes to every connected
// admin dashboard through the API Gateway management API.
type DefaultPublisher struct {
	store       AllConnectionsGetter
	connManager ConnectionManager
	apiGwClient *apigatewaymanagementapi.Client
}

// NewPublisher creates a new DefaultPublisher against the given WebSocket API
// endpoint.
func NewPublisher(store AllConnectionsGetter, connManager ConnectionManager, apiEndpoint string) (*DefaultPublisher, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	apiGwClient := apigatewaymanagementapi.NewFromConfig(cfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(apiEndpoint)
	})

	return &DefaultPublisher{
		store:       store,
		connManager: connManager,
		apiGwClient: apiGwClient,
	}, nil
}

// Publish fans a change message out to every subscribed dashboard. A dashboard that
// has gone away is pruned from the connections table; individual delivery failures
// are logged and never fail the publish, so a flaky subscriber cannot block the
// payment path.
func (p *DefaultPublisher) Publish(ctx context.Context, message Message) error {
	connectionIDs, err := p.store.GetAllConnections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dashboard connections: %w", err)
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal change message: %w", err)
	}

	for _, connectionID := range connectionIDs {
		_, err := p.apiGwClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: aws.String(connectionID),
			Data:         payload,
		})

		if err != nil {
			var goneErr *apigwtypes.GoneException
			if errors.As(err, &goneErr) {
				slog.Info("dashboard disconnected, pruning connection", "connectionId", connectionID)
				if err := p.connManager.RemoveConnection(ctx, connectionID); err != nil {
					slog.Error("failed to prune stale dashboard connection", "error", err)
				}
			} else {
				slog.Error("failed to push change to dashboard", "connectionId", connectionID, "error", err)
			}
		}
	}

	return nil
}
