package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/mocks"
	"github.com/sygpress/sygpress-api/internal/services"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSequenceService_Next_ConcurrentCallersGetDistinctValues(t *testing.T) {
	store := db.NewMemoryStore()
	svc := services.NewSequenceService(store, zap.NewNop())
	ctx := context.Background()

	const callers = 64
	results := make([]int64, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := svc.Next(ctx, constants.InvoiceSequenceID)
			assert.NoError(t, err)
			results[i] = n
		}(i)
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a] < results[b] })
	for i, n := range results {
		assert.Equal(t, int64(i+1), n, "values must be exactly 1..N without duplicates")
	}
}

func TestSequenceService_Increment(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		setupMocks  func(q *mocks.MockQuerier)
		wantErr     bool
		errorString string
	}{
		{
			name: "increments an existing row",
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().IncrementSequence(ctx, constants.InvoiceSequenceID).Return(int64(1), nil)
			},
		},
		{
			name: "creates the row when missing then increments",
			setupMocks: func(q *mocks.MockQuerier) {
				gomock.InOrder(
					q.EXPECT().IncrementSequence(ctx, constants.InvoiceSequenceID).Return(int64(0), nil),
					q.EXPECT().CreateSequenceIfNotExists(ctx, constants.InvoiceSequenceID).Return(nil),
					q.EXPECT().IncrementSequence(ctx, constants.InvoiceSequenceID).Return(int64(1), nil),
				)
			},
		},
		{
			name: "fails when the row is still missing",
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().IncrementSequence(ctx, constants.InvoiceSequenceID).Return(int64(0), nil).Times(2)
				q.EXPECT().CreateSequenceIfNotExists(ctx, constants.InvoiceSequenceID).Return(nil)
			},
			wantErr:     true,
			errorString: "still missing",
		},
		{
			name: "propagates store errors",
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().IncrementSequence(ctx, constants.InvoiceSequenceID).Return(int64(0), errors.New("connection reset"))
			},
			wantErr:     true,
			errorString: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(q)
			svc := services.NewSequenceService(mocks.NewMockStore(ctrl), zap.NewNop())

			err := svc.Increment(ctx, q, constants.InvoiceSequenceID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSequenceService_GetNextReadsOwnIncrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	q := mocks.NewMockQuerier(ctrl)
	gomock.InOrder(
		q.EXPECT().IncrementSequence(ctx, constants.InvoiceSequenceID).Return(int64(1), nil),
		q.EXPECT().GetSequence(ctx, constants.InvoiceSequenceID).Return(db.Sequence{ID: constants.InvoiceSequenceID, LastNumber: 7}, nil),
	)
	svc := services.NewSequenceService(mocks.NewMockStore(ctrl), zap.NewNop())

	next, err := svc.GetNext(ctx, q, constants.InvoiceSequenceID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), next)
}

func TestSequenceService_RaiseNeverLowers(t *testing.T) {
	store := db.NewMemoryStore()
	svc := services.NewSequenceService(store, zap.NewNop())
	ctx := context.Background()

	current, err := svc.EnsureCounter(ctx, store, constants.InvoiceSequenceID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), current)

	raised, err := svc.Raise(ctx, store, constants.InvoiceSequenceID, 42)
	require.NoError(t, err)
	assert.True(t, raised)

	raised, err = svc.Raise(ctx, store, constants.InvoiceSequenceID, 10)
	require.NoError(t, err)
	assert.False(t, raised)

	current, err = svc.CurrentValue(ctx, store, constants.InvoiceSequenceID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), current)

	next, err := svc.Next(ctx, constants.InvoiceSequenceID)
	require.NoError(t, err)
	assert.Equal(t, int64(43), next)
}

func TestSequenceService_CurrentValueMissingRow(t *testing.T) {
	store := db.NewMemoryStore()
	svc := services.NewSequenceService(store, zap.NewNop())

	_, err := svc.CurrentValue(context.Background(), store, 99)

	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))
}
