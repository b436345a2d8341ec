package mocks

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/sygpress/sygpress-api/internal/db"
	"go.uber.org/mock/gomock"
)

// NewMockStoreForTest creates a new mock Store for testing
func NewMockStoreForTest(t *testing.T) *MockStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStore(ctrl)
}

// NewMockInvoiceLedgerForTest creates a new mock InvoiceLedger for testing
func NewMockInvoiceLedgerForTest(t *testing.T) *MockInvoiceLedger {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockInvoiceLedger(ctrl)
}

// PassThroughTx makes ExecTx run fn directly against the mock store, so
// query expectations can be set on the store itself.
func PassThroughTx(store *MockStore) *gomock.Call {
	return store.EXPECT().
		ExecTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.TxOptions, fn func(db.Querier) error) error {
			return fn(store)
		})
}
