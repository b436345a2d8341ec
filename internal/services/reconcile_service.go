package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// ReconcileService heals drift between the invoice counter and the highest
// invoice number on record. It runs once before the ledger accepts writes.
type ReconcileService struct {
	store    db.Store
	sequence interfaces.SequenceCounter
	audit    interfaces.AuditPublisher
	logger   *zap.Logger
}

func NewReconcileService(store db.Store, sequence interfaces.SequenceCounter, audit interfaces.AuditPublisher, logger *zap.Logger) *ReconcileService {
	return &ReconcileService{
		store:    store,
		sequence: sequence,
		audit:    audit,
		logger:   logger,
	}
}

// Reconcile raises the counter to the parsed maximum invoice number when it
// lags behind. An unparseable maximum is reported as an IntegrityError with
// Skipped set on the result; the counter is left untouched.
func (s *ReconcileService) Reconcile(ctx context.Context) (*business.ReconcileResult, error) {
	result := &business.ReconcileResult{}
	var integrityErr error

	err := s.store.ExecTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(q db.Querier) error {
		current, err := s.sequence.EnsureCounter(ctx, q, constants.InvoiceSequenceID)
		if err != nil {
			return err
		}
		result.CounterBefore = current
		result.CounterAfter = current

		maxNumber, err := q.GetMaxInvoiceNumber(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read max invoice number: %w", err)
		}
		result.MaxInvoiceNumber = maxNumber

		parsed, err := helpers.ParseInvoiceNumber(maxNumber)
		if err != nil {
			result.Skipped = true
			integrityErr = &IntegrityError{Message: fmt.Sprintf("cannot parse max invoice number %q", maxNumber), Err: err}
			return nil
		}

		if parsed <= current {
			return nil
		}

		raised, err := s.sequence.Raise(ctx, q, constants.InvoiceSequenceID, parsed)
		if err != nil {
			return err
		}
		if raised {
			result.Raised = true
			result.CounterAfter = parsed
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Invoice counter reconciliation failed", zap.Error(err))
		return nil, err
	}

	if integrityErr != nil {
		s.logger.Error("Skipping invoice counter reconciliation",
			zap.String("max_invoice_number", result.MaxInvoiceNumber),
			zap.Int64("counter", result.CounterBefore),
			zap.Error(integrityErr),
		)
		return result, integrityErr
	}

	if result.Raised {
		s.logger.Warn("Invoice counter was behind the highest invoice number, raised it",
			zap.Int64("counter_before", result.CounterBefore),
			zap.Int64("counter_after", result.CounterAfter),
			zap.String("max_invoice_number", result.MaxInvoiceNumber),
		)
		publishAudit(ctx, s.audit, s.logger, constants.AuditSequenceReconciled, "sequence",
			fmt.Sprint(constants.InvoiceSequenceID), constants.SystemUser, map[string]interface{}{
				"counter_before": result.CounterBefore,
				"counter_after":  result.CounterAfter,
			})
	} else {
		s.logger.Info("Invoice counter is consistent",
			zap.Int64("counter", result.CounterAfter),
			zap.String("max_invoice_number", result.MaxInvoiceNumber),
		)
	}
	return result, nil
}
