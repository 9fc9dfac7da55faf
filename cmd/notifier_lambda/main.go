package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/dormhq/dorm-ledger/pkg/notify"
	"github.com/joho/godotenv"
)

var mailerEndpoint string

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mailerEndpoint = os.Getenv("MAILER_ENDPOINT")
	if mailerEndpoint == "" {
		log.Fatal("MAILER_ENDPOINT environment variable not set")
	}
}

// HandleRequest delivers queued notifications to the external mail relay.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var n notify.Notification
		if err := json.Unmarshal([]byte(message.Body), &n); err != nil {
			log.Printf("ERROR: failed to unmarshal notification from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message.
			return err
		}

		if err := deliver(ctx, n); err != nil {
			log.Printf("ERROR: failed to deliver notification to %s: %v", n.To, err)
			return err
		}

		log.Printf("Delivered notification to %s", n.To)
	}

	return nil
}

func deliver(ctx context.Context, n notify.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mailerEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mailer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mailer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mailer responded with status %d", resp.StatusCode)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
