package db

import (
	"context"
)

const createSequenceIfNotExists = `-- name: CreateSequenceIfNotExists :exec
INSERT INTO sequences (id, last_number)
VALUES ($1, 0)
ON CONFLICT (id) DO NOTHING
`

func (q *Queries) CreateSequenceIfNotExists(ctx context.Context, id int32) error {
	_, err := q.db.Exec(ctx, createSequenceIfNotExists, id)
	return err
}

const getSequence = `-- name: GetSequence :one
SELECT id, last_number, updated_at FROM sequences
WHERE id = $1
`

func (q *Queries) GetSequence(ctx context.Context, id int32) (Sequence, error) {
	row := q.db.QueryRow(ctx, getSequence, id)
	var i Sequence
	err := row.Scan(&i.ID, &i.LastNumber, &i.UpdatedAt)
	return i, err
}

const incrementSequence = `-- name: IncrementSequence :execrows
UPDATE sequences
SET last_number = last_number + 1,
    updated_at = NOW()
WHERE id = $1
`

func (q *Queries) IncrementSequence(ctx context.Context, id int32) (int64, error) {
	result, err := q.db.Exec(ctx, incrementSequence, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const raiseSequence = `-- name: RaiseSequence :execrows
UPDATE sequences
SET last_number = $2,
    updated_at = NOW()
WHERE id = $1 AND last_number < $2
`

type RaiseSequenceParams struct {
	ID         int32 `json:"id"`
	LastNumber int64 `json:"last_number"`
}

func (q *Queries) RaiseSequence(ctx context.Context, arg RaiseSequenceParams) (int64, error) {
	result, err := q.db.Exec(ctx, raiseSequence, arg.ID, arg.LastNumber)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
