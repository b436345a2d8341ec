package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/mocks"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestInvoiceService_CreateInvoice_Scenario(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	audit := &recordingPublisher{}
	ledger := newLedger(store, services.WithAuditPublisher(audit))
	ctx := context.Background()

	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)

	assert.Equal(t, "00001", inv.InvoiceNumber)
	assert.Equal(t, c.customer.Name, inv.CustomerName)
	assert.Equal(t, business.ProcessingStatusDepot, inv.ProcessingStatus)
	assert.Equal(t, constants.SystemUser, inv.CreatedBy)
	require.Len(t, inv.Lines, 2)
	assert.True(t, inv.Lines[0].UnitPrice.Equal(dec("1500")))
	assert.True(t, inv.Lines[0].Amount.Equal(dec("3000")))
	assert.Equal(t, "Chemise", inv.Lines[0].ArticleName)
	assert.Equal(t, "Lavage", inv.Lines[0].ServiceName)
	require.Len(t, inv.Fees, 1)
	assert.True(t, inv.TaxAmount.IsZero())
	assert.True(t, inv.TotalAmount().Equal(dec("6300")), "total is %s", inv.TotalAmount())
	assert.Equal(t, business.PaymentStatusUnpaid, inv.PaymentStatus())

	result, err := ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: inv.ID, Amount: dec("6300")})
	require.NoError(t, err)
	assert.True(t, result.Invoice.RemainingAmount().IsZero())
	assert.True(t, result.Invoice.IsPaid())
	assert.Equal(t, constants.DefaultPaymentMethod, result.Payment.Method)
	assert.Equal(t, constants.SystemUser, result.Payment.PaidBy)

	// A fresh read recomputes the same figures from the stored rows.
	reread, err := ledger.GetInvoiceByNumber(ctx, "00001")
	require.NoError(t, err)
	assert.True(t, reread.TotalAmount().Equal(dec("6300")))
	assert.True(t, reread.RemainingAmount().IsZero())
	assert.True(t, reread.IsPaid())

	assert.Equal(t, []string{constants.AuditInvoiceCreated, constants.AuditPaymentRecorded}, audit.types())
}

func TestInvoiceService_CreateInvoice_Validation(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	rate := func(s string) *decimal.Decimal { v := dec(s); return &v }

	tests := []struct {
		name      string
		mutate    func(p *business.CreateInvoiceParams)
		wantField string
	}{
		{name: "no lines", mutate: func(p *business.CreateInvoiceParams) { p.Lines = nil }, wantField: "lines"},
		{name: "zero quantity", mutate: func(p *business.CreateInvoiceParams) { p.Lines[0].Quantity = 0 }, wantField: "lines[0].quantity"},
		{name: "negative quantity", mutate: func(p *business.CreateInvoiceParams) { p.Lines[1].Quantity = -2 }, wantField: "lines[1].quantity"},
		{name: "missing pricing", mutate: func(p *business.CreateInvoiceParams) { p.Lines[0].PricingID = uuid.Nil }, wantField: "lines[0].pricing_id"},
		{name: "missing customer", mutate: func(p *business.CreateInvoiceParams) { p.CustomerID = uuid.Nil }, wantField: "customer_id"},
		{name: "delivery before deposit", mutate: func(p *business.CreateInvoiceParams) { p.DeliveryDate = date("2024-02-28") }, wantField: "delivery_date"},
		{name: "missing deposit date", mutate: func(p *business.CreateInvoiceParams) { p.DepositDate = time.Time{} }, wantField: "deposit_date"},
		{name: "negative discount", mutate: func(p *business.CreateInvoiceParams) { p.Discount = dec("-1") }, wantField: "discount"},
		{name: "discount above subtotal", mutate: func(p *business.CreateInvoiceParams) { p.Discount = dec("6500.01") }, wantField: "discount"},
		{name: "discount equal to subtotal", mutate: func(p *business.CreateInvoiceParams) { p.Discount = dec("6500") }, wantField: "total_amount"},
		{name: "discount with three decimals", mutate: func(p *business.CreateInvoiceParams) { p.Discount = dec("1.005") }, wantField: "discount"},
		{name: "fee without title", mutate: func(p *business.CreateInvoiceParams) { p.Fees[0].Title = "  " }, wantField: "fees[0].title"},
		{name: "negative fee", mutate: func(p *business.CreateInvoiceParams) { p.Fees[0].Amount = dec("-5") }, wantField: "fees[0].amount"},
		{name: "vat above 100", mutate: func(p *business.CreateInvoiceParams) { p.VATRate = rate("100.01") }, wantField: "vat_rate"},
		{name: "negative vat", mutate: func(p *business.CreateInvoiceParams) { p.VATRate = rate("-1") }, wantField: "vat_rate"},
		{name: "unknown processing status", mutate: func(p *business.CreateInvoiceParams) { p.ProcessingStatus = "PERDU" }, wantField: "processing_status"},
		{
			name: "zero initial payment",
			mutate: func(p *business.CreateInvoiceParams) {
				p.InitialPayment = &business.InitialPaymentParams{Amount: decimal.Zero}
			},
			wantField: "initial_payment.amount",
		},
		{
			name: "initial payment above total",
			mutate: func(p *business.CreateInvoiceParams) {
				p.InitialPayment = &business.InitialPaymentParams{Amount: dec("6300.01")}
			},
			wantField: "initial_payment.amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := scenarioParams(c)
			tt.mutate(&params)

			inv, err := ledger.CreateInvoice(ctx, params)

			require.Error(t, err)
			assert.Nil(t, inv)
			assert.True(t, services.IsValidation(err), "got %v", err)
			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}

	// Rejected requests never reach the counter.
	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)
	assert.Equal(t, "00001", inv.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_NotFound(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	params := scenarioParams(c)
	params.CustomerID = uuid.New()
	_, err := ledger.CreateInvoice(ctx, params)
	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))

	params = scenarioParams(c)
	params.Lines[1].PricingID = uuid.New()
	_, err = ledger.CreateInvoice(ctx, params)
	require.Error(t, err)
	assert.True(t, services.IsNotFound(err))

	// The failed transactions rolled back their counter increments.
	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)
	assert.Equal(t, "00001", inv.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_VATAndInitialPayment(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store, services.WithDefaultVATRate(dec("18")))
	ctx := context.Background()

	params := scenarioParams(c)
	params.ProcessingStatus = business.ProcessingStatusCollecte
	params.CreatedBy = "caisse-1"
	params.InitialPayment = &business.InitialPaymentParams{Amount: dec("2000"), Method: "Mobile Money"}

	inv, err := ledger.CreateInvoice(ctx, params)
	require.NoError(t, err)

	// (6500 - 200) x 18% = 1134
	assert.True(t, inv.VATRate.Equal(dec("18")))
	assert.True(t, inv.TaxAmount.Equal(dec("1134")), "tax is %s", inv.TaxAmount)
	assert.True(t, inv.TotalAmount().Equal(dec("7434")))
	assert.True(t, inv.AmountPaid().Equal(dec("2000")))
	assert.Equal(t, business.PaymentStatusPartiallyPaid, inv.PaymentStatus())
	require.Len(t, inv.Payments, 1)
	assert.Equal(t, "Mobile Money", inv.Payments[0].Method)
	assert.Equal(t, "caisse-1", inv.Payments[0].PaidBy)

	// An explicit zero rate overrides the default.
	zero := decimal.Zero
	params = scenarioParams(c)
	params.VATRate = &zero
	inv, err = ledger.CreateInvoice(ctx, params)
	require.NoError(t, err)
	assert.True(t, inv.TaxAmount.IsZero())
	assert.Equal(t, "00002", inv.InvoiceNumber)
}

func TestInvoiceService_CreateInvoice_FreezesCatalogPrices(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	inv, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtIron.ID, 3, "2024-03-01", "2024-03-01"))
	require.NoError(t, err)
	assert.True(t, inv.TotalAmount().Equal(dec("1500")))

	// Lines keep their own copy of the price; reads never consult the catalog.
	reread, err := ledger.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, reread.Lines[0].UnitPrice.Equal(dec("500")))
	assert.True(t, reread.TotalAmount().Equal(dec("1500")))
}

// MemoryStore serializes ExecTx, so this only checks the ledger's own
// bookkeeping. The row-lock increment on Postgres is covered by
// TestPostgres_ConcurrentCreationsGetDistinctNumbers, which needs TEST_DATABASE_URL.
func TestInvoiceService_CreateInvoice_ConcurrentNumbersAreUnique(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	const n = 40
	numbers := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inv, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtWash.ID, 1, "2024-03-01", "2024-03-02"))
			if assert.NoError(t, err) {
				numbers <- inv.InvoiceNumber
			}
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for num := range numbers {
		assert.False(t, seen[num], "duplicate invoice number %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)
}

func TestInvoiceService_CreateInvoice_StoreErrors(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	pricingID := uuid.New()

	tests := []struct {
		name       string
		setupMocks func(store *mocks.MockStore, seq *mocks.MockSequenceCounter)
		check      func(t *testing.T, err error)
	}{
		{
			name: "duplicate invoice number surfaces as a conflict",
			setupMocks: func(store *mocks.MockStore, seq *mocks.MockSequenceCounter) {
				store.EXPECT().GetCustomer(ctx, customerID).Return(db.Customer{ID: customerID}, nil)
				store.EXPECT().GetPricingDetail(ctx, pricingID).Return(db.PricingDetail{ID: pricingID, Price: dec("1000")}, nil)
				seq.EXPECT().GetNext(ctx, store, constants.InvoiceSequenceID).Return(int64(12), nil)
				store.EXPECT().CreateInvoice(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateInvoiceParams) (db.Invoice, error) {
						assert.Equal(t, "00012", arg.InvoiceNumber)
						return db.Invoice{}, &pgconn.PgError{Code: "23505", ConstraintName: "invoices_invoice_number_key"}
					})
			},
			check: func(t *testing.T, err error) {
				assert.True(t, services.IsConflict(err))
				var cerr *services.ConflictError
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, "invoice", cerr.Resource)
			},
		},
		{
			name: "missing customer",
			setupMocks: func(store *mocks.MockStore, seq *mocks.MockSequenceCounter) {
				store.EXPECT().GetCustomer(ctx, customerID).Return(db.Customer{}, pgx.ErrNoRows)
			},
			check: func(t *testing.T, err error) {
				var nerr *services.NotFoundError
				require.True(t, errors.As(err, &nerr))
				assert.Equal(t, "customer", nerr.Resource)
			},
		},
		{
			name: "counter failure aborts creation",
			setupMocks: func(store *mocks.MockStore, seq *mocks.MockSequenceCounter) {
				store.EXPECT().GetCustomer(ctx, customerID).Return(db.Customer{ID: customerID}, nil)
				store.EXPECT().GetPricingDetail(ctx, pricingID).Return(db.PricingDetail{ID: pricingID, Price: dec("1000")}, nil)
				seq.EXPECT().GetNext(ctx, store, constants.InvoiceSequenceID).Return(int64(0), errors.New("deadlock detected"))
			},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "deadlock detected")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStore(ctrl)
			seq := mocks.NewMockSequenceCounter(ctrl)
			mocks.PassThroughTx(store)
			tt.setupMocks(store, seq)

			ledger := services.NewInvoiceService(store, seq, zap.NewNop())
			inv, err := ledger.CreateInvoice(ctx, business.CreateInvoiceParams{
				CustomerID:   customerID,
				DepositDate:  date("2024-03-01"),
				DeliveryDate: date("2024-03-01"),
				Lines:        []business.CreateInvoiceLineParams{{PricingID: pricingID, Quantity: 1}},
			})

			require.Error(t, err)
			assert.Nil(t, inv)
			tt.check(t, err)
		})
	}
}

func TestInvoiceService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		payments   []string
		params     func(id uuid.UUID) business.RecordPaymentParams
		wantErr    func(error) bool
		wantRemain string
	}{
		{
			name:       "partial payment",
			params:     func(id uuid.UUID) business.RecordPaymentParams { return business.RecordPaymentParams{InvoiceID: id, Amount: dec("800")} },
			wantRemain: "5500",
		},
		{
			name:     "settles the balance exactly",
			payments: []string{"1000.25", "2000.50"},
			params: func(id uuid.UUID) business.RecordPaymentParams {
				return business.RecordPaymentParams{InvoiceID: id, Amount: dec("3299.25"), PaidBy: "caisse-2", Method: "Chèque", PaymentDate: &paidAt}
			},
			wantRemain: "0",
		},
		{
			name:    "zero amount",
			params:  func(id uuid.UUID) business.RecordPaymentParams { return business.RecordPaymentParams{InvoiceID: id} },
			wantErr: services.IsValidation,
		},
		{
			name:    "negative amount",
			params:  func(id uuid.UUID) business.RecordPaymentParams { return business.RecordPaymentParams{InvoiceID: id, Amount: dec("-10")} },
			wantErr: services.IsValidation,
		},
		{
			name:    "overpayment is rejected",
			params:  func(id uuid.UUID) business.RecordPaymentParams { return business.RecordPaymentParams{InvoiceID: id, Amount: dec("6300.01")} },
			wantErr: services.IsValidation,
		},
		{
			name:     "fully paid invoice rejects more",
			payments: []string{"6300"},
			params:   func(id uuid.UUID) business.RecordPaymentParams { return business.RecordPaymentParams{InvoiceID: id, Amount: dec("1")} },
			wantErr:  services.IsValidation,
		},
		{
			name:    "unknown invoice",
			params:  func(uuid.UUID) business.RecordPaymentParams { return business.RecordPaymentParams{InvoiceID: uuid.New(), Amount: dec("1")} },
			wantErr: services.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := db.NewMemoryStore()
			c := seedCatalog(t, store)
			ledger := newLedger(store)
			inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
			require.NoError(t, err)
			for _, p := range tt.payments {
				_, err := ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: inv.ID, Amount: dec(p)})
				require.NoError(t, err)
			}

			result, err := ledger.RecordPayment(ctx, tt.params(inv.ID))

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				after, err := ledger.GetInvoice(ctx, inv.ID)
				require.NoError(t, err)
				assert.Len(t, after.Payments, len(tt.payments), "a rejected payment must not be stored")
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Invoice.RemainingAmount().Equal(dec(tt.wantRemain)), "remaining is %s", result.Invoice.RemainingAmount())
			assert.Len(t, result.Invoice.Payments, len(tt.payments)+1)
		})
	}
}

func TestInvoiceService_RecordPayment_UsesGivenMetadata(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()
	paidAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)

	result, err := ledger.RecordPayment(ctx, business.RecordPaymentParams{
		InvoiceID:   inv.ID,
		Amount:      dec("100"),
		PaidBy:      "caisse-2",
		Method:      "Chèque",
		Notes:       "acompte",
		PaymentDate: &paidAt,
	})

	require.NoError(t, err)
	assert.Equal(t, "caisse-2", result.Payment.PaidBy)
	assert.Equal(t, "Chèque", result.Payment.Method)
	assert.Equal(t, "acompte", result.Payment.Notes)
	assert.True(t, result.Payment.PaymentDate.Equal(paidAt))
}

func TestInvoiceService_RecordPayment_ConcurrentPaymentsNeverOverpay(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)

	// 20 payments of 1000 race against a 6300 balance: six fit and the
	// rest must be rejected.
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: inv.ID, Amount: dec("1000")})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.True(t, services.IsValidation(err), "unexpected error %v", err)
		}()
	}
	wg.Wait()

	after, err := ledger.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, accepted)
	assert.True(t, after.AmountPaid().Equal(dec("6000")))
	assert.True(t, after.RemainingAmount().Equal(dec("300")))
}

func TestInvoiceService_RecordPayment_ArchivedInvoice(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)
	require.NoError(t, ledger.ArchiveInvoice(ctx, inv.ID, "gerant"))

	_, err = ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: inv.ID, Amount: dec("100")})

	require.Error(t, err)
	assert.True(t, services.IsConflict(err))
}

func TestInvoiceService_AuditFailureDoesNotFailOperation(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	audit := &recordingPublisher{err: errors.New("queue unavailable")}
	ledger := newLedger(store, services.WithAuditPublisher(audit))

	inv, err := ledger.CreateInvoice(context.Background(), scenarioParams(c))

	require.NoError(t, err)
	assert.NotNil(t, inv)
	assert.Len(t, audit.events, 1)
}

func TestInvoiceService_Lifecycle(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	audit := &recordingPublisher{}
	ledger := newLedger(store, services.WithAuditPublisher(audit))
	ctx := context.Background()

	inv, err := ledger.CreateInvoice(ctx, scenarioParams(c))
	require.NoError(t, err)
	_, err = ledger.RecordPayment(ctx, business.RecordPaymentParams{InvoiceID: inv.ID, Amount: dec("100")})
	require.NoError(t, err)

	t.Run("processing status moves freely and keeps money intact", func(t *testing.T) {
		updated, err := ledger.UpdateProcessingStatus(ctx, inv.ID, business.ProcessingStatusLivre)
		require.NoError(t, err)
		assert.Equal(t, business.ProcessingStatusLivre, updated.ProcessingStatus)
		assert.True(t, updated.RemainingAmount().Equal(dec("6200")))

		_, err = ledger.UpdateProcessingStatus(ctx, inv.ID, "SECHAGE")
		assert.True(t, services.IsValidation(err))

		_, err = ledger.UpdateProcessingStatus(ctx, uuid.New(), business.ProcessingStatusPret)
		assert.True(t, services.IsNotFound(err))
	})

	t.Run("archive hides from listings but not from reads", func(t *testing.T) {
		require.NoError(t, ledger.ArchiveInvoice(ctx, inv.ID, ""))

		err := ledger.ArchiveInvoice(ctx, inv.ID, "")
		assert.True(t, services.IsConflict(err))

		got, err := ledger.GetInvoice(ctx, inv.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.ArchivedAt)

		listed, err := ledger.ListInvoices(ctx, business.ListInvoicesParams{})
		require.NoError(t, err)
		assert.Empty(t, listed)

		listed, err = ledger.ListInvoices(ctx, business.ListInvoicesParams{IncludeArchived: true})
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("delete removes the invoice and its payments", func(t *testing.T) {
		require.NoError(t, ledger.DeleteInvoice(ctx, inv.ID))

		_, err := ledger.GetInvoice(ctx, inv.ID)
		assert.True(t, services.IsNotFound(err))

		payments, err := store.ListPaymentsByInvoiceIDs(ctx, []uuid.UUID{inv.ID})
		require.NoError(t, err)
		assert.Empty(t, payments)

		err = ledger.DeleteInvoice(ctx, inv.ID)
		assert.True(t, services.IsNotFound(err))
	})

	assert.Equal(t, []string{
		constants.AuditInvoiceCreated,
		constants.AuditPaymentRecorded,
		constants.AuditInvoiceStatusChanged,
		constants.AuditInvoiceArchived,
		constants.AuditInvoiceDeleted,
	}, audit.types())
}

func TestInvoiceService_ListInvoices(t *testing.T) {
	store := db.NewMemoryStore()
	c := seedCatalog(t, store)
	ledger := newLedger(store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := ledger.CreateInvoice(ctx, simpleParams(c.customer.ID, c.shirtWash.ID, 1, "2024-03-01", "2024-03-02"))
		require.NoError(t, err)
	}
	other, err := ledger.CreateInvoice(ctx, simpleParams(c.customer2.ID, c.suitClean.ID, 1, "2024-03-01", "2024-03-02"))
	require.NoError(t, err)
	_, err = ledger.UpdateProcessingStatus(ctx, other.ID, business.ProcessingStatusPret)
	require.NoError(t, err)

	all, err := ledger.ListInvoices(ctx, business.ListInvoicesParams{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byCustomer, err := ledger.ListInvoices(ctx, business.ListInvoicesParams{CustomerID: &c.customer2.ID})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, other.ID, byCustomer[0].ID)

	byStatus, err := ledger.ListInvoices(ctx, business.ListInvoicesParams{ProcessingStatus: business.ProcessingStatusDepot})
	require.NoError(t, err)
	assert.Len(t, byStatus, 3)

	page, err := ledger.ListInvoices(ctx, business.ListInvoicesParams{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	_, err = ledger.ListInvoices(ctx, business.ListInvoicesParams{ProcessingStatus: "PERDU"})
	assert.True(t, services.IsValidation(err))

	_, err = ledger.ListInvoices(ctx, business.ListInvoicesParams{Offset: -1})
	assert.True(t, services.IsValidation(err))
}

func TestInvoiceService_GetInvoiceByNumber(t *testing.T) {
	store := db.NewMemoryStore()
	ledger := newLedger(store)

	_, err := ledger.GetInvoiceByNumber(context.Background(), "")
	assert.True(t, services.IsValidation(err))

	_, err = ledger.GetInvoiceByNumber(context.Background(), "00404")
	assert.True(t, services.IsNotFound(err))
}
