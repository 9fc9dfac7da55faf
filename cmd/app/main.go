package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/dormhq/dorm-ledger/pkg/config"
	"github.com/dormhq/dorm-ledger/pkg/handlers"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/realtime"
	dydbstore "github.com/dormhq/dorm-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// AWS Session
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

	// Notification queue
	var dispatcher notify.Dispatcher = &notify.NoOpDispatcher{}
	if cfg.Queue.NotificationsURL != "" {
		dispatcher = notify.NewSQSDispatcher(sqs.NewFromConfig(awsCfg), cfg.Queue.NotificationsURL)
	} else {
		log.Println("No notification queue configured, notifications are dropped")
	}

	// Realtime change feed
	var publisher realtime.Publisher = &realtime.NoOpPublisher{}
	if cfg.Realtime.ApiGatewayEndpoint != "" {
		publisher, err = realtime.NewPublisher(store, store, cfg.Realtime.ApiGatewayEndpoint)
		if err != nil {
			log.Fatalf("failed to create realtime publisher: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	router := handlers.NewRouter(store, dispatcher, publisher, logger)

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
