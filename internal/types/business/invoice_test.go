package business

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func scenarioInvoice() *Invoice {
	return &Invoice{
		Discount:  d("200"),
		TaxAmount: decimal.Zero,
		Lines: []InvoiceLine{
			{Quantity: 2, UnitPrice: d("1500"), Amount: d("3000")},
			{Quantity: 1, UnitPrice: d("3000"), Amount: d("3000")},
		},
		Fees: []AdditionalFee{{Title: "Livraison", Amount: d("500")}},
	}
}

func TestInvoice_DerivedTotals(t *testing.T) {
	inv := scenarioInvoice()

	assert.True(t, inv.LinesTotal().Equal(d("6000")))
	assert.True(t, inv.FeesTotal().Equal(d("500")))
	assert.True(t, inv.Subtotal().Equal(d("6500")))
	assert.True(t, inv.TotalAmount().Equal(d("6300")), "total is %s", inv.TotalAmount())
	assert.True(t, inv.RemainingAmount().Equal(d("6300")))
	assert.False(t, inv.IsPaid())
	assert.Equal(t, PaymentStatusUnpaid, inv.PaymentStatus())
}

func TestInvoice_PaymentsDriveStatus(t *testing.T) {
	inv := scenarioInvoice()
	previous := inv.RemainingAmount()

	for _, amount := range []string{"1000", "2500.50", "2799.50"} {
		inv.Payments = append(inv.Payments, Payment{Amount: d(amount)})
		remaining := inv.RemainingAmount()
		assert.True(t, remaining.LessThanOrEqual(previous), "remaining went up after paying %s", amount)
		previous = remaining
	}

	assert.True(t, inv.AmountPaid().Equal(d("6300")))
	assert.True(t, inv.RemainingAmount().IsZero())
	assert.True(t, inv.IsPaid())
	assert.Equal(t, PaymentStatusPaid, inv.PaymentStatus())
}

func TestInvoice_PartiallyPaid(t *testing.T) {
	inv := scenarioInvoice()
	inv.Payments = []Payment{{Amount: d("0.01")}}

	assert.Equal(t, PaymentStatusPartiallyPaid, inv.PaymentStatus())
	assert.True(t, inv.RemainingAmount().Equal(d("6299.99")))
}

func TestInvoice_RemainingNeverNegative(t *testing.T) {
	inv := scenarioInvoice()
	inv.Payments = []Payment{{Amount: d("7000")}}

	assert.True(t, inv.RemainingAmount().IsZero())
	assert.True(t, inv.IsPaid())
}

func TestInvoice_ZeroTotalIsNotPaid(t *testing.T) {
	inv := &Invoice{
		Discount: d("1000"),
		Lines:    []InvoiceLine{{Quantity: 1, UnitPrice: d("1000"), Amount: d("1000")}},
	}

	assert.True(t, inv.TotalAmount().IsZero())
	assert.False(t, inv.IsPaid())
	assert.Equal(t, PaymentStatusUnpaid, inv.PaymentStatus())
}

func TestInvoice_Summary(t *testing.T) {
	inv := scenarioInvoice()
	inv.InvoiceNumber = "00007"
	inv.ProcessingStatus = ProcessingStatusCollecte
	inv.Payments = []Payment{{Amount: d("6300")}}

	s := inv.Summary()

	assert.Equal(t, "00007", s.InvoiceNumber)
	assert.Equal(t, PaymentStatusPaid, s.PaymentStatus)
	assert.Equal(t, ProcessingStatusCollecte, s.ProcessingStatus)
	assert.True(t, s.TotalAmount.Equal(d("6300")))
	assert.True(t, s.RemainingAmount.IsZero())
}

func TestProcessingStatus(t *testing.T) {
	for _, s := range ProcessingStatuses {
		assert.True(t, s.IsValid(), s)
		assert.NotEqual(t, string(s), s.Label())
	}
	assert.False(t, ProcessingStatus("PERDU").IsValid())
	assert.Equal(t, "PERDU", ProcessingStatus("PERDU").Label())

	assert.True(t, ProcessingStatusLivre.Delivered())
	assert.True(t, ProcessingStatusRecupere.Delivered())
	assert.False(t, ProcessingStatusPret.Delivered())
}

func TestReportKind(t *testing.T) {
	for _, k := range []ReportKind{ReportKindSales, ReportKindCustomers, ReportKindStatus, ReportKindServices} {
		assert.True(t, k.IsValid())
	}
	assert.False(t, ReportKind("profit").IsValid())
}
