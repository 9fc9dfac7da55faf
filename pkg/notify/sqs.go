package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSDispatcher implements the Dispatcher interface using AWS SQS.
type SQSDispatcher struct {
	Client   *sqs.Client
	QueueURL string
}

// NewSQSDispatcher creates a new SQSDispatcher.
func NewSQSDispatcher(client *sqs.Client, queueURL string) *SQSDispatcher {
	return &SQSDispatcher{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Dispatcher = (*SQSDispatcher)(nil)

// Dispatch sends the notification to an SQS queue for the mailer worker to deliver.
func (d *SQSDispatcher) Dispatch(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification for SQS: %w", err)
	}

	_, err = d.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(d.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
