package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createAuditEvent = `-- name: CreateAuditEvent :execrows
INSERT INTO audit_events (id, event_type, entity_type, entity_id, actor, data, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING
`

type CreateAuditEventParams struct {
	ID         uuid.UUID          `json:"id"`
	EventType  string             `json:"event_type"`
	EntityType string             `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	Actor      string             `json:"actor"`
	Data       []byte             `json:"data"`
	OccurredAt pgtype.Timestamptz `json:"occurred_at"`
}

func (q *Queries) CreateAuditEvent(ctx context.Context, arg CreateAuditEventParams) (int64, error) {
	result, err := q.db.Exec(ctx, createAuditEvent,
		arg.ID,
		arg.EventType,
		arg.EntityType,
		arg.EntityID,
		arg.Actor,
		arg.Data,
		arg.OccurredAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
