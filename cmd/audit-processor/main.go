package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sygpress/sygpress-api/internal/config"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/logger"
	"github.com/sygpress/sygpress-api/internal/server"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// Application stores audit events drained from the audit queue.
type Application struct {
	recorder *services.AuditRecorder
	logger   *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	pool, err := server.OpenPool(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Migrate(context.Background(), pool); err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	app := newApplication(db.NewStore(pool), logger.Log)
	lambda.Start(app.handleSQSEvent)
}

func newApplication(store db.Store, log *zap.Logger) *Application {
	return &Application{
		recorder: services.NewAuditRecorder(store, log.Named("audit")),
		logger:   log,
	}
}

// handleSQSEvent records every message of the batch. Messages that failed
// for a transient reason are reported back so SQS redelivers only those;
// malformed messages are logged and dropped.
func (app *Application) handleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("Processing audit batch", zap.Int("message_count", len(event.Records)))

	var (
		response events.SQSEventResponse
		stored   int
		dropped  int
	)
	for _, record := range event.Records {
		ok, retry := app.processMessage(ctx, record)
		switch {
		case ok:
			stored++
		case retry:
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		default:
			dropped++
		}
	}

	app.logger.Info("Audit batch complete",
		zap.Int("total_messages", len(event.Records)),
		zap.Int("stored", stored),
		zap.Int("dropped", dropped),
		zap.Int("retried", len(response.BatchItemFailures)),
	)
	return response, nil
}

// processMessage reports whether the message is settled and, if not,
// whether it should be redelivered.
func (app *Application) processMessage(ctx context.Context, record events.SQSMessage) (settled bool, retry bool) {
	var event business.AuditEvent
	if err := json.Unmarshal([]byte(record.Body), &event); err != nil {
		app.logger.Error("Dropping malformed audit message",
			zap.String("message_id", record.MessageId),
			zap.Error(err),
		)
		return false, false
	}

	inserted, err := app.recorder.Record(ctx, event)
	if err != nil {
		if services.IsValidation(err) {
			app.logger.Error("Dropping invalid audit event",
				zap.String("message_id", record.MessageId),
				zap.String("event_id", event.ID.String()),
				zap.Error(err),
			)
			return false, false
		}
		app.logger.Warn("Audit event not stored, will retry",
			zap.String("message_id", record.MessageId),
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
		return false, true
	}

	app.logger.Debug("Audit event recorded",
		zap.String("message_id", record.MessageId),
		zap.String("event_type", event.Type),
		zap.String("entity_id", event.EntityID),
		zap.Bool("duplicate", !inserted),
	)
	return true, false
}
