package awsclient

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// SQSAPI is the part of the SQS client used here.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher ships audit events to an SQS queue as JSON. FIFO queues get
// one message group per entity so events on an invoice stay ordered.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
	fifo     bool
	logger   *zap.Logger
}

func NewSQSPublisher(ctx context.Context, queueURL string, logger *zap.Logger) (*SQSPublisher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}
	return NewSQSPublisherWithAPI(sqs.NewFromConfig(cfg), queueURL, logger), nil
}

func NewSQSPublisherWithAPI(client SQSAPI, queueURL string, logger *zap.Logger) *SQSPublisher {
	return &SQSPublisher{
		client:   client,
		queueURL: queueURL,
		fifo:     strings.HasSuffix(queueURL, ".fifo"),
		logger:   logger,
	}
}

func (p *SQSPublisher) Publish(ctx context.Context, event business.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal audit event")
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.Type),
			},
			"EntityType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.EntityType),
			},
		},
	}
	if p.fifo {
		input.MessageGroupId = aws.String(event.EntityType + ":" + event.EntityID)
		input.MessageDeduplicationId = aws.String(event.ID.String())
	}

	out, err := p.client.SendMessage(ctx, input)
	if err != nil {
		return errors.Wrapf(err, "failed to send %s event to SQS", event.Type)
	}

	p.logger.Debug("Audit event queued",
		zap.String("event_type", event.Type),
		zap.String("entity_id", event.EntityID),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}
