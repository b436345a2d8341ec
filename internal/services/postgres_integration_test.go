package services_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// openTestStore connects to TEST_DATABASE_URL and starts from empty tables.
func openTestStore(t *testing.T) (*db.SQLStore, *pgxpool.Pool) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping Postgres integration test in short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE payments, additional_fees, invoice_lines, invoices, pricings,
		laundry_services, articles, customers, sequences CASCADE`)
	require.NoError(t, err)

	return db.NewStore(pool), pool
}

func TestPostgres_InvoiceLifecycle(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	c := seedCatalog(t, store)
	ledger := newLedger(store)

	invoice, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)
	assert.Equal(t, "00001", invoice.InvoiceNumber)
	assert.True(t, invoice.TotalAmount().Equal(dec("6300")))

	result, err := ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: invoice.ID, Amount: dec("6300")})
	require.NoError(t, err)
	assert.True(t, result.Invoice.IsPaid())

	_, err = ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: invoice.ID, Amount: dec("1")})
	assert.True(t, services.IsValidation(err))

	loaded, err := ledger.GetInvoiceByNumber(ctx, "00001")
	require.NoError(t, err)
	assert.Len(t, loaded.Lines, 2)
	assert.Len(t, loaded.Fees, 1)
	assert.Len(t, loaded.Payments, 1)

	_, err = ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtWash.ID, 0, "2024-03-01", "2024-03-02"))
	assert.True(t, services.IsValidation(err))

	require.NoError(t, ledger.DeleteInvoice(ctx, invoice.ID))
	next, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtWash.ID, 1, "2024-03-01", "2024-03-02"))
	require.NoError(t, err)
	assert.Equal(t, "00002", next.InvoiceNumber)
}

func TestPostgres_ConcurrentCreationsGetDistinctNumbers(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	c := seedCatalog(t, store)
	ledger := newLedger(store)

	const workers = 25
	numbers := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtIron.ID, 1, "2024-03-01", "2024-03-01"))
			if assert.NoError(t, err) {
				numbers <- inv.InvoiceNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for n := range numbers {
		assert.False(t, seen[n], "duplicate invoice number %s", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
	assert.True(t, seen["00025"])
}

func TestPostgres_ReconcileRaisesLaggingCounter(t *testing.T) {
	store, pool := openTestStore(t)
	ctx := context.Background()
	c := seedCatalog(t, store)
	ledger := newLedger(store)

	for i := 0; i < 3; i++ {
		_, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtWash.ID, 1, "2024-03-01", "2024-03-01"))
		require.NoError(t, err)
	}
	_, err := pool.Exec(ctx, `UPDATE sequences SET last_number = 1`)
	require.NoError(t, err)

	reconciler := services.NewReconcileService(store, services.NewSequenceService(store, zap.NewNop()), services.NoopAuditPublisher{}, zap.NewNop())
	result, err := reconciler.Reconcile(ctx)
	require.NoError(t, err)
	assert.True(t, result.Raised)
	assert.Equal(t, int64(3), result.CounterAfter)

	inv, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtWash.ID, 1, "2024-03-02", "2024-03-02"))
	require.NoError(t, err)
	assert.Equal(t, "00004", inv.InvoiceNumber)
}

func TestPostgres_SalesReport(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	c := seedCatalog(t, store)
	ledger := newLedger(store)

	_, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)

	report, err := services.NewReportService(store, zap.NewNop()).SalesReport(ctx, date("2024-03-01"), date("2024-03-31"))
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalInvoices)
	assert.True(t, report.TotalAmount.Equal(dec("6300")))
	assert.Len(t, report.Daily, 31)
}
