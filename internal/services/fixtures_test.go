package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/logger"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

func init() {
	logger.InitLogger("test")
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// catalog is a small laundry price list stored in a MemoryStore.
type catalog struct {
	customer  db.Customer
	customer2 db.Customer
	// shirt washing 1500, suit dry cleaning 3000, shirt ironing 500
	shirtWash db.PricingDetail
	suitClean db.PricingDetail
	shirtIron db.PricingDetail
}

func seedCatalog(t *testing.T, store db.Store) catalog {
	t.Helper()
	ctx := context.Background()
	svc := services.NewCatalogService(store, zap.NewNop())

	customer, err := svc.CreateCustomer(ctx, db.CreateCustomerParams{Name: "Awa Houngbédji", PhoneNumber: "+229 97 00 00 01"})
	require.NoError(t, err)
	customer2, err := svc.CreateCustomer(ctx, db.CreateCustomerParams{Name: "Koffi Adjovi", PhoneNumber: "+229 97 00 00 02"})
	require.NoError(t, err)

	shirt, err := svc.CreateArticle(ctx, db.CreateArticleParams{Name: "Chemise"})
	require.NoError(t, err)
	suit, err := svc.CreateArticle(ctx, db.CreateArticleParams{Name: "Costume"})
	require.NoError(t, err)

	wash, err := svc.CreateLaundryService(ctx, db.CreateLaundryServiceParams{Name: "Lavage"})
	require.NoError(t, err)
	dry, err := svc.CreateLaundryService(ctx, db.CreateLaundryServiceParams{Name: "Nettoyage à sec"})
	require.NoError(t, err)
	iron, err := svc.CreateLaundryService(ctx, db.CreateLaundryServiceParams{Name: "Repassage"})
	require.NoError(t, err)

	shirtWash, err := svc.CreatePricing(ctx, db.CreatePricingParams{ArticleID: shirt.ID, ServiceID: wash.ID, Price: dec("1500")})
	require.NoError(t, err)
	suitClean, err := svc.CreatePricing(ctx, db.CreatePricingParams{ArticleID: suit.ID, ServiceID: dry.ID, Price: dec("3000")})
	require.NoError(t, err)
	shirtIron, err := svc.CreatePricing(ctx, db.CreatePricingParams{ArticleID: shirt.ID, ServiceID: iron.ID, Price: dec("500")})
	require.NoError(t, err)

	return catalog{
		customer:  customer,
		customer2: customer2,
		shirtWash: shirtWash,
		suitClean: suitClean,
		shirtIron: shirtIron,
	}
}

func newLedger(store db.Store, opts ...services.InvoiceServiceOption) *services.InvoiceService {
	sequence := services.NewSequenceService(store, zap.NewNop())
	return services.NewInvoiceService(store, sequence, zap.NewNop(), opts...)
}

// scenarioParams is two shirts washed, one suit cleaned, a 500 delivery fee
// and a 200 discount: 6300 in total.
func scenarioParams(c catalog) business.CreateInvoiceParams {
	return business.CreateInvoiceParams{
		CustomerID:   c.customer.ID,
		DepositDate:  date("2024-03-01"),
		DeliveryDate: date("2024-03-04"),
		Lines: []business.CreateInvoiceLineParams{
			{PricingID: c.shirtWash.ID, Quantity: 2},
			{PricingID: c.suitClean.ID, Quantity: 1},
		},
		Fees:     []business.CreateAdditionalFeeParams{{Title: "Livraison", Amount: dec("500")}},
		Discount: dec("200"),
	}
}

func simpleParams(customerID, pricingID uuid.UUID, quantity int32, deposit, delivery string) business.CreateInvoiceParams {
	return business.CreateInvoiceParams{
		CustomerID:   customerID,
		DepositDate:  date(deposit),
		DeliveryDate: date(delivery),
		Lines:        []business.CreateInvoiceLineParams{{PricingID: pricingID, Quantity: quantity}},
	}
}

type recordingPublisher struct {
	events []business.AuditEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event business.AuditEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}
