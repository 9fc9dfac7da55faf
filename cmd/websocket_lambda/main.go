package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/dormhq/dorm-ledger/pkg/config"
	"github.com/dormhq/dorm-ledger/pkg/handlers/websockets"
	dydbstore "github.com/dormhq/dorm-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var handler *websockets.Handler

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, dydbstore.Tables{
		Residents:       cfg.Tables.Residents,
		ChargeTemplates: cfg.Tables.ChargeTemplates,
		LedgerEntries:   cfg.Tables.LedgerEntries,
		Payments:        cfg.Tables.Payments,
		Events:          cfg.Tables.Events,
		EventPayments:   cfg.Tables.EventPayments,
		Connections:     cfg.Tables.Connections,
	})

	handler = websockets.NewHandler(store)
}

// HandleRequest routes API Gateway WebSocket events to the connection handler.
func HandleRequest(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch request.RequestContext.RouteKey {
	case "$connect":
		return handler.HandleConnect(ctx, request)
	case "$disconnect":
		return handler.HandleDisconnect(ctx, request)
	default:
		return handler.HandleDefault(ctx, request)
	}
}

func main() {
	lambda.Start(HandleRequest)
}
