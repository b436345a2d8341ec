package services

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/types/business"
)

// The folds below are pure functions over loaded invoices. Reports and
// dashboards share them so a figure means the same thing everywhere.

func periodStats(invoices []*business.Invoice) business.PeriodStats {
	stats := business.PeriodStats{
		TotalAmount:     decimal.Zero,
		AmountPaid:      decimal.Zero,
		RemainingAmount: decimal.Zero,
	}
	for _, inv := range invoices {
		stats.InvoiceCount++
		stats.TotalAmount = stats.TotalAmount.Add(inv.TotalAmount())
		stats.AmountPaid = stats.AmountPaid.Add(inv.AmountPaid())
		stats.RemainingAmount = stats.RemainingAmount.Add(inv.RemainingAmount())
	}
	return stats
}

func filterInvoices(invoices []*business.Invoice, keep func(*business.Invoice) bool) []*business.Invoice {
	kept := []*business.Invoice{}
	for _, inv := range invoices {
		if keep(inv) {
			kept = append(kept, inv)
		}
	}
	return kept
}

// dailySales returns one bucket per calendar day of [start, end], empty days
// included, keyed on deposit date.
func dailySales(invoices []*business.Invoice, start, end time.Time) []business.DailySales {
	index := make(map[time.Time]int)
	days := []business.DailySales{}
	helpers.EachDay(start, end, func(day time.Time) {
		index[day] = len(days)
		days = append(days, business.DailySales{
			Date:        day,
			TotalAmount: decimal.Zero,
			AmountPaid:  decimal.Zero,
		})
	})
	for _, inv := range invoices {
		i, ok := index[helpers.DateOnly(inv.DepositDate)]
		if !ok {
			continue
		}
		days[i].InvoiceCount++
		days[i].TotalAmount = days[i].TotalAmount.Add(inv.TotalAmount())
		days[i].AmountPaid = days[i].AmountPaid.Add(inv.AmountPaid())
	}
	return days
}

// monthlySales returns the months calendar months ending with end's month,
// oldest first.
func monthlySales(invoices []*business.Invoice, end time.Time, months int) []business.MonthlySales {
	first := helpers.StartOfMonth(end).AddDate(0, -(months - 1), 0)
	index := make(map[string]int, months)
	buckets := make([]business.MonthlySales, months)
	for i := 0; i < months; i++ {
		key := first.AddDate(0, i, 0).Format("2006-01")
		index[key] = i
		buckets[i] = business.MonthlySales{Month: key, TotalAmount: decimal.Zero, AmountPaid: decimal.Zero}
	}
	for _, inv := range invoices {
		i, ok := index[inv.DepositDate.Format("2006-01")]
		if !ok {
			continue
		}
		buckets[i].InvoiceCount++
		buckets[i].TotalAmount = buckets[i].TotalAmount.Add(inv.TotalAmount())
		buckets[i].AmountPaid = buckets[i].AmountPaid.Add(inv.AmountPaid())
	}
	return buckets
}

func linesRevenue(invoices []*business.Invoice) (decimal.Decimal, int64) {
	revenue := decimal.Zero
	var quantity int64
	for _, inv := range invoices {
		for _, l := range inv.Lines {
			revenue = revenue.Add(l.Amount)
			quantity += int64(l.Quantity)
		}
	}
	return revenue, quantity
}

// serviceSales breaks line revenue down per laundry service, largest first.
func serviceSales(invoices []*business.Invoice) []business.ServiceSales {
	revenue, _ := linesRevenue(invoices)
	byID := make(map[uuid.UUID]*business.ServiceSales)
	seen := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, inv := range invoices {
		for _, l := range inv.Lines {
			s, ok := byID[l.ServiceID]
			if !ok {
				s = &business.ServiceSales{ServiceID: l.ServiceID, ServiceName: l.ServiceName, TotalAmount: decimal.Zero}
				byID[l.ServiceID] = s
				seen[l.ServiceID] = make(map[uuid.UUID]bool)
			}
			s.Quantity += int64(l.Quantity)
			s.TotalAmount = s.TotalAmount.Add(l.Amount)
			if !seen[l.ServiceID][inv.ID] {
				seen[l.ServiceID][inv.ID] = true
				s.InvoiceCount++
			}
		}
	}

	items := make([]business.ServiceSales, 0, len(byID))
	for _, s := range byID {
		s.Percentage = business.Percentage(s.TotalAmount, revenue)
		items = append(items, *s)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].TotalAmount.Equal(items[b].TotalAmount) {
			return items[a].TotalAmount.GreaterThan(items[b].TotalAmount)
		}
		return items[a].ServiceName < items[b].ServiceName
	})
	return items
}

func articleSales(invoices []*business.Invoice) []business.ArticleSales {
	revenue, _ := linesRevenue(invoices)
	byID := make(map[uuid.UUID]*business.ArticleSales)
	for _, inv := range invoices {
		for _, l := range inv.Lines {
			a, ok := byID[l.ArticleID]
			if !ok {
				a = &business.ArticleSales{ArticleID: l.ArticleID, ArticleName: l.ArticleName, TotalAmount: decimal.Zero}
				byID[l.ArticleID] = a
			}
			a.Quantity += int64(l.Quantity)
			a.TotalAmount = a.TotalAmount.Add(l.Amount)
		}
	}

	items := make([]business.ArticleSales, 0, len(byID))
	for _, a := range byID {
		a.Percentage = business.Percentage(a.TotalAmount, revenue)
		items = append(items, *a)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].TotalAmount.Equal(items[b].TotalAmount) {
			return items[a].TotalAmount.GreaterThan(items[b].TotalAmount)
		}
		return items[a].ArticleName < items[b].ArticleName
	})
	return items
}

type articleServiceKey struct {
	article uuid.UUID
	service uuid.UUID
}

// articleServiceSales returns the limit best selling article and service
// pairs.
func articleServiceSales(invoices []*business.Invoice, limit int) []business.ArticleServiceSales {
	revenue, _ := linesRevenue(invoices)
	byKey := make(map[articleServiceKey]*business.ArticleServiceSales)
	for _, inv := range invoices {
		for _, l := range inv.Lines {
			key := articleServiceKey{article: l.ArticleID, service: l.ServiceID}
			c, ok := byKey[key]
			if !ok {
				c = &business.ArticleServiceSales{
					ArticleID:   l.ArticleID,
					ArticleName: l.ArticleName,
					ServiceID:   l.ServiceID,
					ServiceName: l.ServiceName,
					TotalAmount: decimal.Zero,
				}
				byKey[key] = c
			}
			c.Quantity += int64(l.Quantity)
			c.TotalAmount = c.TotalAmount.Add(l.Amount)
		}
	}

	items := make([]business.ArticleServiceSales, 0, len(byKey))
	for _, c := range byKey {
		c.Percentage = business.Percentage(c.TotalAmount, revenue)
		items = append(items, *c)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].TotalAmount.Equal(items[b].TotalAmount) {
			return items[a].TotalAmount.GreaterThan(items[b].TotalAmount)
		}
		if items[a].ArticleName != items[b].ArticleName {
			return items[a].ArticleName < items[b].ArticleName
		}
		return items[a].ServiceName < items[b].ServiceName
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// customerSpend ranks customers by what they were invoiced; limit <= 0
// keeps everyone.
func customerSpend(invoices []*business.Invoice, limit int) []business.CustomerSpend {
	byID := make(map[uuid.UUID]*business.CustomerSpend)
	for _, inv := range invoices {
		c, ok := byID[inv.CustomerID]
		if !ok {
			c = &business.CustomerSpend{
				CustomerID:    inv.CustomerID,
				CustomerName:  inv.CustomerName,
				TotalSpent:    decimal.Zero,
				TotalPaid:     decimal.Zero,
				UnpaidBalance: decimal.Zero,
			}
			byID[inv.CustomerID] = c
		}
		c.InvoiceCount++
		c.TotalSpent = c.TotalSpent.Add(inv.TotalAmount())
		c.TotalPaid = c.TotalPaid.Add(inv.AmountPaid())
		c.UnpaidBalance = c.UnpaidBalance.Add(inv.RemainingAmount())
	}

	items := make([]business.CustomerSpend, 0, len(byID))
	for _, c := range byID {
		items = append(items, *c)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].TotalSpent.Equal(items[b].TotalSpent) {
			return items[a].TotalSpent.GreaterThan(items[b].TotalSpent)
		}
		return items[a].CustomerName < items[b].CustomerName
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

type paymentBuckets struct {
	paid          business.StatusBucket
	partiallyPaid business.StatusBucket
	unpaid        business.StatusBucket
}

func newStatusBucket() business.StatusBucket {
	return business.StatusBucket{TotalAmount: decimal.Zero, AmountPaid: decimal.Zero, RemainingAmount: decimal.Zero}
}

func paymentStatusBuckets(invoices []*business.Invoice) paymentBuckets {
	b := paymentBuckets{paid: newStatusBucket(), partiallyPaid: newStatusBucket(), unpaid: newStatusBucket()}
	for _, inv := range invoices {
		var bucket *business.StatusBucket
		switch inv.PaymentStatus() {
		case business.PaymentStatusPaid:
			bucket = &b.paid
		case business.PaymentStatusPartiallyPaid:
			bucket = &b.partiallyPaid
		default:
			bucket = &b.unpaid
		}
		bucket.Count++
		bucket.TotalAmount = bucket.TotalAmount.Add(inv.TotalAmount())
		bucket.AmountPaid = bucket.AmountPaid.Add(inv.AmountPaid())
		bucket.RemainingAmount = bucket.RemainingAmount.Add(inv.RemainingAmount())
	}
	return b
}

// processingStatusCounts has one entry per status in workflow order, zero
// counts included.
func processingStatusCounts(invoices []*business.Invoice) []business.ProcessingStatusCount {
	counts := make(map[business.ProcessingStatus]*business.ProcessingStatusCount, len(business.ProcessingStatuses))
	items := make([]business.ProcessingStatusCount, len(business.ProcessingStatuses))
	for i, status := range business.ProcessingStatuses {
		items[i] = business.ProcessingStatusCount{Status: status, Label: status.Label(), TotalAmount: decimal.Zero}
		counts[status] = &items[i]
	}
	for _, inv := range invoices {
		c, ok := counts[inv.ProcessingStatus]
		if !ok {
			continue
		}
		c.Count++
		c.TotalAmount = c.TotalAmount.Add(inv.TotalAmount())
	}
	return items
}

func summaries(invoices []*business.Invoice) []business.InvoiceSummary {
	items := make([]business.InvoiceSummary, len(invoices))
	for i, inv := range invoices {
		items[i] = inv.Summary()
	}
	return items
}
