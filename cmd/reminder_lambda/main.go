package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/dormhq/dorm-ledger/pkg/billing"
	"github.com/dormhq/dorm-ledger/pkg/config"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/dormhq/dorm-ledger/pkg/realtime"
	"github.com/dormhq/dorm-ledger/pkg/storage"
	dydbstore "github.com/dormhq/dorm-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage
var eventManager *billing.EventManager

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.Queue.NotificationsURL == "" {
		log.Fatal("notification queue URL not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store = dydbstore.New(dbClient, dydbstore.Tables{
		Residents:       cfg.Tables.Residents,
		ChargeTemplates: cfg.Tables.ChargeTemplates,
		LedgerEntries:   cfg.Tables.LedgerEntries,
		Payments:        cfg.Tables.Payments,
		Events:          cfg.Tables.Events,
		EventPayments:   cfg.Tables.EventPayments,
		Connections:     cfg.Tables.Connections,
	})

	dispatcher := notify.NewSQSDispatcher(sqs.NewFromConfig(awsCfg), cfg.Queue.NotificationsURL)
	eventManager = billing.NewEventManager(store, store, dispatcher, &realtime.NoOpPublisher{})
}

// HandleRequest is triggered by an EventBridge schedule. It sends a reminder for
// every active event to the residents who have not fully paid it.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting event reminder broadcast...")

	activeEvents, err := store.ListActiveEvents(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list active events: %v", err)
		return err
	}

	if len(activeEvents) == 0 {
		log.Println("No active events found.")
		return nil
	}

	for _, event := range activeEvents {
		count, err := eventManager.BroadcastReminder(ctx, event.ID)
		if err != nil {
			log.Printf("ERROR: failed to broadcast reminder for event %s: %v", event.ID, err)
			// Continue to the next event, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Reminded %d residents about event %s", count, event.ID)
	}

	log.Println("Event reminder broadcast finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
