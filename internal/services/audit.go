package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// NoopAuditPublisher drops every event. Used when no audit queue is configured.
type NoopAuditPublisher struct{}

func (NoopAuditPublisher) Publish(context.Context, business.AuditEvent) error { return nil }

// publishAudit sends an event once the business transaction has committed.
// A failed publish is logged; it never undoes or fails the operation.
func publishAudit(ctx context.Context, publisher interfaces.AuditPublisher, logger *zap.Logger, eventType, entityType, entityID, actor string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	event := business.AuditEvent{
		ID:         uuid.New(),
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish audit event",
			zap.String("event_type", eventType),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// AuditRecorder stores audit events delivered by the audit queue.
type AuditRecorder struct {
	store  db.Store
	logger *zap.Logger
}

func NewAuditRecorder(store db.Store, logger *zap.Logger) *AuditRecorder {
	return &AuditRecorder{store: store, logger: logger}
}

// Record stores event. A redelivered event id is accepted and reported as
// not stored.
func (r *AuditRecorder) Record(ctx context.Context, event business.AuditEvent) (bool, error) {
	switch {
	case event.ID == uuid.Nil:
		return false, newValidationError("id", "is required")
	case strings.TrimSpace(event.Type) == "":
		return false, newValidationError("type", "is required")
	case strings.TrimSpace(event.EntityType) == "":
		return false, newValidationError("entity_type", "is required")
	case event.OccurredAt.IsZero():
		return false, newValidationError("occurred_at", "is required")
	}

	data := []byte("{}")
	if len(event.Data) > 0 {
		encoded, err := json.Marshal(event.Data)
		if err != nil {
			return false, newValidationError("data", "cannot be encoded: %v", err)
		}
		data = encoded
	}

	actor := event.Actor
	if actor == "" {
		actor = constants.SystemUser
	}

	stored, err := r.store.CreateAuditEvent(ctx, db.CreateAuditEventParams{
		ID:         event.ID,
		EventType:  event.Type,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Actor:      actor,
		Data:       data,
		OccurredAt: helpers.ToPgTimestamptz(event.OccurredAt),
	})
	if err != nil {
		return false, translateStoreError(err, "audit event", event.ID.String())
	}
	if stored == 0 {
		r.logger.Debug("Audit event already recorded", zap.String("event_id", event.ID.String()))
		return false, nil
	}
	return true, nil
}
