package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/mocks"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	register(r)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleInvoice is 2 x 1500 + 3000 lines, a 500 fee and a 200 discount,
// with 1000 paid.
func sampleInvoice() *business.Invoice {
	id := uuid.New()
	deposit, _ := helpers.ParseDate("2024-03-01")
	delivery, _ := helpers.ParseDate("2024-03-04")
	return &business.Invoice{
		ID:               id,
		InvoiceNumber:    "00001",
		CustomerID:       uuid.New(),
		CustomerName:     "Awa",
		DepositDate:      deposit,
		DeliveryDate:     delivery,
		Discount:         d("200"),
		VATRate:          decimal.Zero,
		TaxAmount:        decimal.Zero,
		ProcessingStatus: business.ProcessingStatusDepot,
		CreatedBy:        constants.SystemUser,
		Lines: []business.InvoiceLine{
			{ID: uuid.New(), Quantity: 2, UnitPrice: d("1500"), Amount: d("3000")},
			{ID: uuid.New(), Quantity: 1, UnitPrice: d("3000"), Amount: d("3000")},
		},
		Fees:     []business.AdditionalFee{{ID: uuid.New(), Title: "Express", Amount: d("500")}},
		Payments: []business.Payment{{ID: uuid.New(), InvoiceID: id, Amount: d("1000"), Method: constants.DefaultPaymentMethod}},
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        &services.ValidationError{Field: "lines", Message: "at least one line is required"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "lines: at least one line is required",
		},
		{
			name:       "not found wrapped by a transaction",
			err:        fmt.Errorf("transaction failed: %w", &services.NotFoundError{Resource: "customer", Key: "x"}),
			wantStatus: http.StatusNotFound,
			wantBody:   "customer not found: x",
		},
		{
			name:       "conflict",
			err:        &services.ConflictError{Resource: "invoice", Message: "already archived"},
			wantStatus: http.StatusConflict,
			wantBody:   "invoice conflict: already archived",
		},
		{
			name:       "integrity",
			err:        &services.IntegrityError{Message: "bad number", Err: errors.New("parse")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Stored data is inconsistent",
		},
		{
			name:       "anything else",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(func(r *gin.Engine) {
				r.GET("/", func(c *gin.Context) { handleServiceError(c, zap.NewNop(), tt.err) })
			})
			w := doRequest(t, r, http.MethodGet, "/", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, w))
		})
	}
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	customerID := uuid.New()
	pricingID := uuid.New()
	validBody := map[string]interface{}{
		"customer_id":   customerID,
		"deposit_date":  "2024-03-01",
		"delivery_date": "2024-03-04",
		"lines":         []map[string]interface{}{{"pricing_id": pricingID, "quantity": 2}},
		"fees":          []map[string]interface{}{{"title": "Express", "amount": "500"}},
		"discount":      "200",
		"initial_payment": map[string]interface{}{
			"amount": "1000",
			"method": "Mobile Money",
		},
	}

	tests := []struct {
		name       string
		body       interface{}
		headers    []string
		setupMock  func(m *mocks.MockInvoiceLedger)
		wantStatus int
		check      func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:    "created",
			body:    validBody,
			headers: []string{constants.UserHeader, "marie"},
			setupMock: func(m *mocks.MockInvoiceLedger) {
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p business.CreateInvoiceParams) (*business.Invoice, error) {
						assert.Equal(t, customerID, p.CustomerID)
						assert.Equal(t, "marie", p.CreatedBy)
						assert.Equal(t, "2024-03-04", p.DeliveryDate.Format(helpers.DateLayout))
						require.Len(t, p.Lines, 1)
						assert.Equal(t, pricingID, p.Lines[0].PricingID)
						assert.Equal(t, int32(2), p.Lines[0].Quantity)
						assert.True(t, p.Discount.Equal(d("200")))
						require.NotNil(t, p.InitialPayment)
						assert.Equal(t, "Mobile Money", p.InitialPayment.Method)
						assert.Nil(t, p.VATRate)
						return sampleInvoice(), nil
					})
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "00001", resp["invoice_number"])
				assert.Equal(t, "6300", resp["total_amount"])
				assert.Equal(t, "5300", resp["remaining_amount"])
				assert.Equal(t, string(business.PaymentStatusPartiallyPaid), resp["payment_status"])
				assert.Equal(t, "2024-03-01", resp["deposit_date"])
			},
		},
		{
			name:       "malformed json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no lines",
			body: map[string]interface{}{
				"customer_id":   customerID,
				"deposit_date":  "2024-03-01",
				"delivery_date": "2024-03-04",
				"lines":         []interface{}{},
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "bad date",
			body: map[string]interface{}{
				"customer_id":   customerID,
				"deposit_date":  "01/03/2024",
				"delivery_date": "2024-03-04",
				"lines":         []map[string]interface{}{{"pricing_id": pricingID, "quantity": 1}},
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeError(t, w), "YYYY-MM-DD")
			},
		},
		{
			name: "unknown customer",
			body: validBody,
			setupMock: func(m *mocks.MockInvoiceLedger) {
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
					Return(nil, &services.NotFoundError{Resource: "customer", Key: customerID.String()})
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "system user by default",
			body: validBody,
			setupMock: func(m *mocks.MockInvoiceLedger) {
				m.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p business.CreateInvoiceParams) (*business.Invoice, error) {
						assert.Equal(t, constants.SystemUser, p.CreatedBy)
						return sampleInvoice(), nil
					})
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := mocks.NewMockInvoiceLedgerForTest(t)
			if tt.setupMock != nil {
				tt.setupMock(ledger)
			}
			h := NewInvoiceHandler(ledger, zap.NewNop())
			r := newTestRouter(func(r *gin.Engine) { r.POST("/invoices", h.CreateInvoice) })

			w := doRequest(t, r, http.MethodPost, "/invoices", tt.body, tt.headers...)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	ledger := mocks.NewMockInvoiceLedgerForTest(t)
	h := NewInvoiceHandler(ledger, zap.NewNop())
	r := newTestRouter(func(r *gin.Engine) {
		r.GET("/invoices/:invoice_id", h.GetInvoice)
		r.GET("/invoices/number/:invoice_number", h.GetInvoiceByNumber)
	})

	inv := sampleInvoice()
	ledger.EXPECT().GetInvoice(gomock.Any(), inv.ID).Return(inv, nil)
	w := doRequest(t, r, http.MethodGet, "/invoices/"+inv.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp InvoiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, inv.ID, resp.ID)
	assert.Len(t, resp.Lines, 2)
	assert.Len(t, resp.Payments, 1)
	assert.True(t, resp.Subtotal.Equal(d("6500")))

	w = doRequest(t, r, http.MethodGet, "/invoices/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid invoice id format", decodeError(t, w))

	missing := uuid.New()
	ledger.EXPECT().GetInvoice(gomock.Any(), missing).Return(nil, &services.NotFoundError{Resource: "invoice", Key: missing.String()})
	w = doRequest(t, r, http.MethodGet, "/invoices/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ledger.EXPECT().GetInvoiceByNumber(gomock.Any(), "00001").Return(inv, nil)
	w = doRequest(t, r, http.MethodGet, "/invoices/number/00001", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	ledger := mocks.NewMockInvoiceLedgerForTest(t)
	h := NewInvoiceHandler(ledger, zap.NewNop())
	r := newTestRouter(func(r *gin.Engine) { r.GET("/invoices", h.ListInvoices) })

	customerID := uuid.New()
	ledger.EXPECT().ListInvoices(gomock.Any(), business.ListInvoicesParams{
		CustomerID:       &customerID,
		ProcessingStatus: business.ProcessingStatusEnLavage,
		IncludeArchived:  true,
		Limit:            10,
		Offset:           20,
	}).Return([]*business.Invoice{sampleInvoice()}, nil)

	w := doRequest(t, r, http.MethodGet, fmt.Sprintf(
		"/invoices?customer_id=%s&processing_status=EN_LAVAGE&include_archived=true&limit=10&offset=20", customerID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Object string            `json:"object"`
		Data   []InvoiceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	assert.Len(t, resp.Data, 1)

	w = doRequest(t, r, http.MethodGet, "/invoices?customer_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ledger.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).Return(nil, nil)
	w = doRequest(t, r, http.MethodGet, "/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"object":"list","data":[]}`, w.Body.String())
}

func TestInvoiceHandler_RecordPayment(t *testing.T) {
	ledger := mocks.NewMockInvoiceLedgerForTest(t)
	h := NewInvoiceHandler(ledger, zap.NewNop())
	r := newTestRouter(func(r *gin.Engine) { r.POST("/invoices/:invoice_id/payments", h.RecordPayment) })
	inv := sampleInvoice()
	path := "/invoices/" + inv.ID.String() + "/payments"

	paidAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p business.RecordPaymentParams) (*business.PaymentResult, error) {
			assert.Equal(t, inv.ID, p.InvoiceID)
			assert.True(t, p.Amount.Equal(d("5300")))
			assert.Equal(t, "koffi", p.PaidBy)
			require.NotNil(t, p.PaymentDate)
			assert.True(t, p.PaymentDate.Equal(paidAt))
			payment := business.Payment{ID: uuid.New(), InvoiceID: inv.ID, Amount: p.Amount, PaidBy: p.PaidBy}
			inv.Payments = append(inv.Payments, payment)
			return &business.PaymentResult{Payment: &payment, Invoice: inv}, nil
		})

	w := doRequest(t, r, http.MethodPost, path,
		map[string]interface{}{"amount": "5300", "payment_date": paidAt},
		constants.UserHeader, "koffi")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Invoice.IsPaid)
	assert.Equal(t, business.PaymentStatusPaid, resp.Invoice.PaymentStatus)
	assert.True(t, resp.Invoice.RemainingAmount.IsZero())

	ledger.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).
		Return(nil, &services.ValidationError{Field: "amount", Message: "exceeds the remaining amount"})
	w = doRequest(t, r, http.MethodPost, path, map[string]interface{}{"amount": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "amount: exceeds the remaining amount", decodeError(t, w))
}

func TestInvoiceHandler_Lifecycle(t *testing.T) {
	ledger := mocks.NewMockInvoiceLedgerForTest(t)
	h := NewInvoiceHandler(ledger, zap.NewNop())
	r := newTestRouter(func(r *gin.Engine) {
		r.PATCH("/invoices/:invoice_id/status", h.UpdateProcessingStatus)
		r.POST("/invoices/:invoice_id/archive", h.ArchiveInvoice)
		r.DELETE("/invoices/:invoice_id", h.DeleteInvoice)
	})
	inv := sampleInvoice()
	base := "/invoices/" + inv.ID.String()

	updated := sampleInvoice()
	updated.ProcessingStatus = business.ProcessingStatusPret
	ledger.EXPECT().UpdateProcessingStatus(gomock.Any(), inv.ID, business.ProcessingStatusPret).Return(updated, nil)
	w := doRequest(t, r, http.MethodPatch, base+"/status", map[string]string{"processing_status": "PRET"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, r, http.MethodPatch, base+"/status", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ledger.EXPECT().ArchiveInvoice(gomock.Any(), inv.ID, "marie").Return(nil)
	w = doRequest(t, r, http.MethodPost, base+"/archive", nil, constants.UserHeader, "marie")
	assert.Equal(t, http.StatusOK, w.Code)

	ledger.EXPECT().ArchiveInvoice(gomock.Any(), inv.ID, constants.SystemUser).
		Return(&services.ConflictError{Resource: "invoice", Message: "already archived"})
	w = doRequest(t, r, http.MethodPost, base+"/archive", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	ledger.EXPECT().DeleteInvoice(gomock.Any(), inv.ID).Return(nil)
	w = doRequest(t, r, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReportHandler_GetReport(t *testing.T) {
	start, _ := helpers.ParseDate("2024-03-01")
	end, _ := helpers.ParseDate("2024-03-31")

	tests := []struct {
		name       string
		path       string
		setupMock  func(m *mocks.MockReportAggregator)
		wantStatus int
	}{
		{
			name: "sales",
			path: "/reports/sales?start_date=2024-03-01&end_date=2024-03-31",
			setupMock: func(m *mocks.MockReportAggregator) {
				m.EXPECT().GenerateReport(gomock.Any(), business.ReportKindSales, start, end).
					Return(&business.SalesReport{Period: business.Period{StartDate: start, EndDate: end}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "customers with top",
			path: "/reports/customers?start_date=2024-03-01&end_date=2024-03-31&top=3",
			setupMock: func(m *mocks.MockReportAggregator) {
				m.EXPECT().CustomerReport(gomock.Any(), start, end, 3).Return(&business.CustomerReport{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown kind",
			path:       "/reports/profit?start_date=2024-03-01&end_date=2024-03-31",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing dates",
			path:       "/reports/status",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date",
			path:       "/reports/status?start_date=2024-13-01&end_date=2024-03-31",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "range rejected by the aggregator",
			path: "/reports/services?start_date=2024-03-31&end_date=2024-03-01",
			setupMock: func(m *mocks.MockReportAggregator) {
				m.EXPECT().GenerateReport(gomock.Any(), business.ReportKindServices, gomock.Any(), gomock.Any()).
					Return(nil, &services.ValidationError{Field: "start_date", Message: "must not be after end_date"})
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reports := mocks.NewMockReportAggregator(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(reports)
			}
			h := NewReportHandler(reports, zap.NewNop())
			r := newTestRouter(func(r *gin.Engine) { r.GET("/reports/:kind", h.GetReport) })

			w := doRequest(t, r, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboards := mocks.NewMockDashboardProvider(ctrl)
	h := NewDashboardHandler(dashboards, zap.NewNop())
	r := newTestRouter(func(r *gin.Engine) {
		r.GET("/dashboard/admin", h.GetAdminDashboard)
		r.GET("/dashboard/user", h.GetUserDashboard)
	})

	dashboards.EXPECT().AdminDashboard(gomock.Any()).Return(&business.AdminDashboard{CustomerCount: 4}, nil)
	w := doRequest(t, r, http.MethodGet, "/dashboard/admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	dashboards.EXPECT().UserDashboard(gomock.Any()).Return(nil, errors.New("boom"))
	w = doRequest(t, r, http.MethodGet, "/dashboard/user", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeError(t, w))
}

func TestCatalogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalog(ctrl)
	h := NewCatalogHandler(catalog, zap.NewNop())
	r := newTestRouter(func(r *gin.Engine) {
		r.POST("/customers", h.CreateCustomer)
		r.GET("/customers/:customer_id", h.GetCustomer)
		r.POST("/articles", h.CreateArticle)
		r.POST("/services", h.CreateLaundryService)
		r.POST("/pricings", h.CreatePricing)
	})

	customerID := uuid.New()
	catalog.EXPECT().CreateCustomer(gomock.Any(), db.CreateCustomerParams{
		Name:        "Awa",
		PhoneNumber: "0197000001",
		Address:     helpers.ToPgText("Cotonou"),
	}).Return(db.Customer{ID: customerID, Name: "Awa", PhoneNumber: "0197000001", Address: helpers.ToPgText("Cotonou")}, nil)
	w := doRequest(t, r, http.MethodPost, "/customers",
		map[string]string{"name": "Awa", "phone_number": "0197000001", "address": "Cotonou"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var customer CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, customerID, customer.ID)
	assert.Equal(t, "Cotonou", customer.Address)

	w = doRequest(t, r, http.MethodPost, "/customers", map[string]string{"name": "Awa"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	catalog.EXPECT().GetCustomer(gomock.Any(), customerID).
		Return(db.Customer{}, &services.NotFoundError{Resource: "customer", Key: customerID.String()})
	w = doRequest(t, r, http.MethodGet, "/customers/"+customerID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	catalog.EXPECT().CreateArticle(gomock.Any(), db.CreateArticleParams{Name: "Chemise", Category: helpers.ToPgText("Hauts")}).
		Return(db.Article{ID: uuid.New(), Name: "Chemise", Category: helpers.ToPgText("Hauts")}, nil)
	w = doRequest(t, r, http.MethodPost, "/articles", map[string]string{"name": "Chemise", "category": "Hauts"})
	assert.Equal(t, http.StatusCreated, w.Code)

	catalog.EXPECT().CreateLaundryService(gomock.Any(), db.CreateLaundryServiceParams{Name: "Lavage"}).
		Return(db.LaundryService{}, &services.ConflictError{Resource: "service", Message: "name already exists"})
	w = doRequest(t, r, http.MethodPost, "/services", map[string]string{"name": "Lavage"})
	assert.Equal(t, http.StatusConflict, w.Code)

	articleID, serviceID := uuid.New(), uuid.New()
	catalog.EXPECT().CreatePricing(gomock.Any(), db.CreatePricingParams{ArticleID: articleID, ServiceID: serviceID, Price: d("1500")}).
		Return(db.PricingDetail{ID: uuid.New(), ArticleID: articleID, ArticleName: "Chemise", ServiceID: serviceID, ServiceName: "Lavage", Price: d("1500")}, nil)
	w = doRequest(t, r, http.MethodPost, "/pricings",
		map[string]interface{}{"article_id": articleID, "service_id": serviceID, "price": "1500"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pricing PricingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pricing))
	assert.Equal(t, "Lavage", pricing.ServiceName)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantDB     string
	}{
		{name: "healthy", db: stubPinger{}, wantStatus: http.StatusOK, wantDB: "ok"},
		{name: "database down", db: stubPinger{err: errors.New("refused")}, wantStatus: http.StatusServiceUnavailable, wantDB: "unreachable"},
		{name: "no database", wantStatus: http.StatusOK, wantDB: "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.db, zap.NewNop())
			r := newTestRouter(func(r *gin.Engine) { r.GET("/health", h.Health) })

			w := doRequest(t, r, http.MethodGet, "/health", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDB, resp.Database)
		})
	}
}
