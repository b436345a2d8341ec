package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/sygpress/sygpress-api/internal/db"
	"go.uber.org/zap"
)

// SequenceService hands out invoice sequence values. Every write is a single
// UPDATE statement so concurrent callers serialize on the row lock and never
// observe the same value.
type SequenceService struct {
	store  db.Store
	logger *zap.Logger
}

func NewSequenceService(store db.Store, logger *zap.Logger) *SequenceService {
	return &SequenceService{
		store:  store,
		logger: logger,
	}
}

// Increment advances the counter by one, creating the row at 0 first when it
// does not exist yet.
func (s *SequenceService) Increment(ctx context.Context, q db.Querier, id int32) error {
	affected, err := q.IncrementSequence(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to increment sequence %d: %w", id, err)
	}
	if affected == 1 {
		return nil
	}

	s.logger.Info("Sequence row missing, creating it", zap.Int32("sequence_id", id))
	if err := q.CreateSequenceIfNotExists(ctx, id); err != nil {
		return fmt.Errorf("failed to create sequence %d: %w", id, err)
	}

	affected, err = q.IncrementSequence(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to increment sequence %d: %w", id, err)
	}
	if affected != 1 {
		return fmt.Errorf("sequence %d still missing after create", id)
	}
	return nil
}

// CurrentValue reads the latest value visible to q.
func (s *SequenceService) CurrentValue(ctx context.Context, q db.Querier, id int32) (int64, error) {
	seq, err := q.GetSequence(ctx, id)
	if err != nil {
		return 0, translateStoreError(err, "sequence", strconv.Itoa(int(id)))
	}
	return seq.LastNumber, nil
}

// GetNext increments then reads on the same querier. Inside a transaction the
// row lock taken by the increment is held until commit, so the value read is
// the one this caller produced.
func (s *SequenceService) GetNext(ctx context.Context, q db.Querier, id int32) (int64, error) {
	if err := s.Increment(ctx, q, id); err != nil {
		return 0, err
	}
	return s.CurrentValue(ctx, q, id)
}

// Next runs GetNext in its own transaction.
func (s *SequenceService) Next(ctx context.Context, id int32) (int64, error) {
	var next int64
	err := s.store.ExecTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(q db.Querier) error {
		var err error
		next, err = s.GetNext(ctx, q, id)
		return err
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

// EnsureCounter loads the counter, creating it at 0 when absent.
func (s *SequenceService) EnsureCounter(ctx context.Context, q db.Querier, id int32) (int64, error) {
	if err := q.CreateSequenceIfNotExists(ctx, id); err != nil {
		return 0, fmt.Errorf("failed to create sequence %d: %w", id, err)
	}
	return s.CurrentValue(ctx, q, id)
}

// Raise moves the counter up to floor if it is below it. It never lowers it.
func (s *SequenceService) Raise(ctx context.Context, q db.Querier, id int32, floor int64) (bool, error) {
	affected, err := q.RaiseSequence(ctx, db.RaiseSequenceParams{
		ID:         id,
		LastNumber: floor,
	})
	if err != nil {
		return false, fmt.Errorf("failed to raise sequence %d: %w", id, err)
	}
	return affected == 1, nil
}
