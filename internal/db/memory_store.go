package db

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// MemoryStore is an in-process Store. ExecTx runs one transaction at a time
// and restores the previous state when fn fails. Writes made outside ExecTx
// while a transaction is open are lost if that transaction rolls back.
//
// Errors mirror the Postgres store: pgx.ErrNoRows for missing rows and
// *pgconn.PgError with the matching SQLSTATE for constraint violations.
type MemoryStore struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *memoryData
	now  func() time.Time
}

type memoryData struct {
	sequences map[int32]Sequence
	customers map[uuid.UUID]Customer
	articles  map[uuid.UUID]Article
	services  map[uuid.UUID]LaundryService
	pricings  map[uuid.UUID]Pricing
	invoices  map[uuid.UUID]Invoice
	lines     []InvoiceLine
	fees      []AdditionalFee
	payments  []Payment
	audit     map[uuid.UUID]AuditEvent
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: &memoryData{
			sequences: make(map[int32]Sequence),
			customers: make(map[uuid.UUID]Customer),
			articles:  make(map[uuid.UUID]Article),
			services:  make(map[uuid.UUID]LaundryService),
			pricings:  make(map[uuid.UUID]Pricing),
			invoices:  make(map[uuid.UUID]Invoice),
			audit:     make(map[uuid.UUID]AuditEvent),
		},
		now: time.Now,
	}
}

func (d *memoryData) clone() *memoryData {
	c := &memoryData{
		sequences: make(map[int32]Sequence, len(d.sequences)),
		customers: make(map[uuid.UUID]Customer, len(d.customers)),
		articles:  make(map[uuid.UUID]Article, len(d.articles)),
		services:  make(map[uuid.UUID]LaundryService, len(d.services)),
		pricings:  make(map[uuid.UUID]Pricing, len(d.pricings)),
		invoices:  make(map[uuid.UUID]Invoice, len(d.invoices)),
		lines:     append([]InvoiceLine(nil), d.lines...),
		fees:      append([]AdditionalFee(nil), d.fees...),
		payments:  append([]Payment(nil), d.payments...),
		audit:     make(map[uuid.UUID]AuditEvent, len(d.audit)),
	}
	for k, v := range d.sequences {
		c.sequences[k] = v
	}
	for k, v := range d.customers {
		c.customers[k] = v
	}
	for k, v := range d.articles {
		c.articles[k] = v
	}
	for k, v := range d.services {
		c.services[k] = v
	}
	for k, v := range d.pricings {
		c.pricings[k] = v
	}
	for k, v := range d.invoices {
		c.invoices[k] = v
	}
	for k, v := range d.audit {
		c.audit[k] = v
	}
	return c
}

func (s *MemoryStore) ExecTx(ctx context.Context, _ pgx.TxOptions, fn func(Querier) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (s *MemoryStore) timestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: s.now(), Valid: true}
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint, Message: "duplicate key value violates unique constraint"}
}

func foreignKeyViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint, Message: "violates foreign key constraint"}
}

// Sequences

func (s *MemoryStore) CreateSequenceIfNotExists(_ context.Context, id int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.sequences[id]; !ok {
		s.data.sequences[id] = Sequence{ID: id, UpdatedAt: s.timestamp()}
	}
	return nil
}

func (s *MemoryStore) GetSequence(_ context.Context, id int32) (Sequence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seq, ok := s.data.sequences[id]
	if !ok {
		return Sequence{}, pgx.ErrNoRows
	}
	return seq, nil
}

func (s *MemoryStore) IncrementSequence(_ context.Context, id int32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.data.sequences[id]
	if !ok {
		return 0, nil
	}
	seq.LastNumber++
	seq.UpdatedAt = s.timestamp()
	s.data.sequences[id] = seq
	return 1, nil
}

func (s *MemoryStore) RaiseSequence(_ context.Context, arg RaiseSequenceParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := s.data.sequences[arg.ID]
	if !ok || seq.LastNumber >= arg.LastNumber {
		return 0, nil
	}
	seq.LastNumber = arg.LastNumber
	seq.UpdatedAt = s.timestamp()
	s.data.sequences[arg.ID] = seq
	return 1, nil
}

// Catalog

func (s *MemoryStore) CreateCustomer(_ context.Context, arg CreateCustomerParams) (Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.data.customers {
		if c.Name == arg.Name {
			return Customer{}, uniqueViolation("customers_name_key")
		}
	}
	c := Customer{ID: arg.ID, Name: arg.Name, PhoneNumber: arg.PhoneNumber, Address: arg.Address, CreatedAt: s.timestamp()}
	s.data.customers[c.ID] = c
	return c, nil
}

func (s *MemoryStore) GetCustomer(_ context.Context, id uuid.UUID) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data.customers[id]
	if !ok {
		return Customer{}, pgx.ErrNoRows
	}
	return c, nil
}

func (s *MemoryStore) CountCustomers(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.data.customers)), nil
}

func (s *MemoryStore) CreateArticle(_ context.Context, arg CreateArticleParams) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.data.articles {
		if a.Name == arg.Name {
			return Article{}, uniqueViolation("articles_name_key")
		}
	}
	a := Article{ID: arg.ID, Name: arg.Name, Category: arg.Category, CreatedAt: s.timestamp()}
	s.data.articles[a.ID] = a
	return a, nil
}

func (s *MemoryStore) CreateLaundryService(_ context.Context, arg CreateLaundryServiceParams) (LaundryService, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, svc := range s.data.services {
		if svc.Name == arg.Name {
			return LaundryService{}, uniqueViolation("laundry_services_name_key")
		}
	}
	svc := LaundryService{ID: arg.ID, Name: arg.Name, CreatedAt: s.timestamp()}
	s.data.services[svc.ID] = svc
	return svc, nil
}

func (s *MemoryStore) CreatePricing(_ context.Context, arg CreatePricingParams) (Pricing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.articles[arg.ArticleID]; !ok {
		return Pricing{}, foreignKeyViolation("pricings_article_id_fkey")
	}
	if _, ok := s.data.services[arg.ServiceID]; !ok {
		return Pricing{}, foreignKeyViolation("pricings_service_id_fkey")
	}
	for _, p := range s.data.pricings {
		if p.ArticleID == arg.ArticleID && p.ServiceID == arg.ServiceID {
			return Pricing{}, uniqueViolation("pricings_article_id_service_id_key")
		}
	}
	p := Pricing{ID: arg.ID, ArticleID: arg.ArticleID, ServiceID: arg.ServiceID, Price: arg.Price, CreatedAt: s.timestamp()}
	s.data.pricings[p.ID] = p
	return p, nil
}

func (s *MemoryStore) GetPricingDetail(_ context.Context, id uuid.UUID) (PricingDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.pricings[id]
	if !ok {
		return PricingDetail{}, pgx.ErrNoRows
	}
	return PricingDetail{
		ID:          p.ID,
		ArticleID:   p.ArticleID,
		ArticleName: s.data.articles[p.ArticleID].Name,
		ServiceID:   p.ServiceID,
		ServiceName: s.data.services[p.ServiceID].Name,
		Price:       p.Price,
	}, nil
}

// Invoices

// withCustomer fills the joined customer name. Caller holds mu.
func (s *MemoryStore) withCustomer(inv Invoice) Invoice {
	inv.CustomerName = s.data.customers[inv.CustomerID].Name
	return inv
}

func (s *MemoryStore) CreateInvoice(_ context.Context, arg CreateInvoiceParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.customers[arg.CustomerID]; !ok {
		return Invoice{}, foreignKeyViolation("invoices_customer_id_fkey")
	}
	for _, existing := range s.data.invoices {
		if existing.InvoiceNumber == arg.InvoiceNumber {
			return Invoice{}, uniqueViolation("invoices_invoice_number_key")
		}
	}
	now := s.timestamp()
	inv := Invoice{
		ID:               arg.ID,
		InvoiceNumber:    arg.InvoiceNumber,
		CustomerID:       arg.CustomerID,
		DepositDate:      arg.DepositDate,
		DeliveryDate:     arg.DeliveryDate,
		Discount:         arg.Discount,
		VatRate:          arg.VatRate,
		TaxAmount:        arg.TaxAmount,
		ProcessingStatus: arg.ProcessingStatus,
		CreatedBy:        arg.CreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.data.invoices[inv.ID] = inv
	return s.withCustomer(inv), nil
}

func (s *MemoryStore) GetInvoice(_ context.Context, id uuid.UUID) (Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.data.invoices[id]
	if !ok {
		return Invoice{}, pgx.ErrNoRows
	}
	return s.withCustomer(inv), nil
}

// GetInvoiceForUpdate needs no row lock here: ExecTx already serializes.
func (s *MemoryStore) GetInvoiceForUpdate(ctx context.Context, id uuid.UUID) (Invoice, error) {
	return s.GetInvoice(ctx, id)
}

func (s *MemoryStore) GetInvoiceByNumber(_ context.Context, invoiceNumber string) (Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.data.invoices {
		if inv.InvoiceNumber == invoiceNumber {
			return s.withCustomer(inv), nil
		}
	}
	return Invoice{}, pgx.ErrNoRows
}

func (s *MemoryStore) GetMaxInvoiceNumber(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data.invoices) == 0 {
		return "", pgx.ErrNoRows
	}
	top := ""
	for _, inv := range s.data.invoices {
		n := inv.InvoiceNumber
		if len(n) > len(top) || (len(n) == len(top) && n > top) {
			top = n
		}
	}
	return top, nil
}

// selectInvoices filters and joins under a read lock.
func (s *MemoryStore) selectInvoices(keep func(Invoice) bool) []Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []Invoice{}
	for _, inv := range s.data.invoices {
		if keep(inv) {
			items = append(items, s.withCustomer(inv))
		}
	}
	return items
}

func sortByDate(items []Invoice, date func(Invoice) time.Time) {
	sort.Slice(items, func(a, b int) bool {
		ta, tb := date(items[a]), date(items[b])
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return items[a].InvoiceNumber < items[b].InvoiceNumber
	})
}

func sortNewestFirst(items []Invoice) {
	sort.Slice(items, func(a, b int) bool {
		ca, cb := items[a].CreatedAt.Time, items[b].CreatedAt.Time
		if !ca.Equal(cb) {
			return ca.After(cb)
		}
		return items[a].InvoiceNumber > items[b].InvoiceNumber
	})
}

func dateInRange(d, start, end pgtype.Date) bool {
	return !d.Time.Before(start.Time) && !d.Time.After(end.Time)
}

func (s *MemoryStore) ListInvoices(_ context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	items := s.selectInvoices(func(inv Invoice) bool {
		if arg.CustomerID.Valid && inv.CustomerID != uuid.UUID(arg.CustomerID.Bytes) {
			return false
		}
		if arg.ProcessingStatus.Valid && inv.ProcessingStatus != arg.ProcessingStatus.String {
			return false
		}
		return arg.IncludeArchived || !inv.ArchivedAt.Valid
	})
	sortNewestFirst(items)
	start := int(arg.Offset)
	if start > len(items) {
		start = len(items)
	}
	end := start + int(arg.Limit)
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}

func (s *MemoryStore) ListInvoicesByDepositDate(_ context.Context, arg ListInvoicesByDepositDateParams) ([]Invoice, error) {
	items := s.selectInvoices(func(inv Invoice) bool {
		return !inv.ArchivedAt.Valid && dateInRange(inv.DepositDate, arg.StartDate, arg.EndDate)
	})
	sortByDate(items, func(inv Invoice) time.Time { return inv.DepositDate.Time })
	return items, nil
}

func (s *MemoryStore) ListInvoicesByDeliveryDate(_ context.Context, arg ListInvoicesByDeliveryDateParams) ([]Invoice, error) {
	items := s.selectInvoices(func(inv Invoice) bool {
		return !inv.ArchivedAt.Valid && dateInRange(inv.DeliveryDate, arg.StartDate, arg.EndDate)
	})
	sortByDate(items, func(inv Invoice) time.Time { return inv.DeliveryDate.Time })
	return items, nil
}

func (s *MemoryStore) ListOutstandingInvoices(_ context.Context) ([]Invoice, error) {
	s.mu.RLock()
	charged := make(map[uuid.UUID]decimal.Decimal)
	paid := make(map[uuid.UUID]decimal.Decimal)
	for _, l := range s.data.lines {
		charged[l.InvoiceID] = charged[l.InvoiceID].Add(l.Amount)
	}
	for _, f := range s.data.fees {
		charged[f.InvoiceID] = charged[f.InvoiceID].Add(f.Amount)
	}
	for _, p := range s.data.payments {
		paid[p.InvoiceID] = paid[p.InvoiceID].Add(p.Amount)
	}
	s.mu.RUnlock()

	items := s.selectInvoices(func(inv Invoice) bool {
		total := charged[inv.ID].Add(inv.TaxAmount).Sub(inv.Discount)
		return !inv.ArchivedAt.Valid && total.GreaterThan(paid[inv.ID])
	})
	sortByDate(items, func(inv Invoice) time.Time { return inv.DeliveryDate.Time })
	return items, nil
}

func (s *MemoryStore) ListRecentInvoices(_ context.Context, limit int32) ([]Invoice, error) {
	items := s.selectInvoices(func(inv Invoice) bool { return !inv.ArchivedAt.Valid })
	sortNewestFirst(items)
	if int(limit) < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (s *MemoryStore) CountInvoicesByProcessingStatus(_ context.Context) ([]ProcessingStatusTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int64)
	for _, inv := range s.data.invoices {
		if !inv.ArchivedAt.Valid {
			counts[inv.ProcessingStatus]++
		}
	}
	items := make([]ProcessingStatusTotal, 0, len(counts))
	for status, n := range counts {
		items = append(items, ProcessingStatusTotal{ProcessingStatus: status, Count: n})
	}
	return items, nil
}

func (s *MemoryStore) UpdateInvoiceProcessingStatus(_ context.Context, arg UpdateInvoiceProcessingStatusParams) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.data.invoices[arg.ID]
	if !ok {
		return Invoice{}, pgx.ErrNoRows
	}
	inv.ProcessingStatus = arg.ProcessingStatus
	inv.UpdatedAt = s.timestamp()
	s.data.invoices[inv.ID] = inv
	return s.withCustomer(inv), nil
}

func (s *MemoryStore) ArchiveInvoice(_ context.Context, arg ArchiveInvoiceParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv, ok := s.data.invoices[arg.ID]
	if !ok || inv.ArchivedAt.Valid {
		return 0, nil
	}
	inv.ArchivedAt = s.timestamp()
	inv.ArchivedBy = arg.ArchivedBy
	inv.UpdatedAt = inv.ArchivedAt
	s.data.invoices[inv.ID] = inv
	return 1, nil
}

func (s *MemoryStore) DeleteInvoice(_ context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.invoices[id]; !ok {
		return 0, nil
	}
	delete(s.data.invoices, id)

	lines := s.data.lines[:0]
	for _, l := range s.data.lines {
		if l.InvoiceID != id {
			lines = append(lines, l)
		}
	}
	s.data.lines = lines

	fees := s.data.fees[:0]
	for _, f := range s.data.fees {
		if f.InvoiceID != id {
			fees = append(fees, f)
		}
	}
	s.data.fees = fees

	payments := s.data.payments[:0]
	for _, p := range s.data.payments {
		if p.InvoiceID != id {
			payments = append(payments, p)
		}
	}
	s.data.payments = payments
	return 1, nil
}

func (s *MemoryStore) GetCustomerFirstInvoiceDates(_ context.Context, customerIds []uuid.UUID) ([]CustomerFirstInvoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[uuid.UUID]bool, len(customerIds))
	for _, id := range customerIds {
		wanted[id] = true
	}
	first := make(map[uuid.UUID]pgtype.Date)
	for _, inv := range s.data.invoices {
		if !wanted[inv.CustomerID] || inv.ArchivedAt.Valid {
			continue
		}
		if cur, ok := first[inv.CustomerID]; !ok || inv.DepositDate.Time.Before(cur.Time) {
			first[inv.CustomerID] = inv.DepositDate
		}
	}
	items := make([]CustomerFirstInvoice, 0, len(first))
	for id, d := range first {
		items = append(items, CustomerFirstInvoice{CustomerID: id, FirstDepositDate: d})
	}
	return items, nil
}

// Lines, fees and payments

func (s *MemoryStore) CreateInvoiceLine(_ context.Context, arg CreateInvoiceLineParams) (InvoiceLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.invoices[arg.InvoiceID]; !ok {
		return InvoiceLine{}, foreignKeyViolation("invoice_lines_invoice_id_fkey")
	}
	l := InvoiceLine(arg)
	s.data.lines = append(s.data.lines, l)
	return l, nil
}

func (s *MemoryStore) CreateAdditionalFee(_ context.Context, arg CreateAdditionalFeeParams) (AdditionalFee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.invoices[arg.InvoiceID]; !ok {
		return AdditionalFee{}, foreignKeyViolation("additional_fees_invoice_id_fkey")
	}
	f := AdditionalFee(arg)
	s.data.fees = append(s.data.fees, f)
	return f, nil
}

func (s *MemoryStore) CreatePayment(_ context.Context, arg CreatePaymentParams) (Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.invoices[arg.InvoiceID]; !ok {
		return Payment{}, foreignKeyViolation("payments_invoice_id_fkey")
	}
	p := Payment{
		ID:          arg.ID,
		InvoiceID:   arg.InvoiceID,
		Amount:      arg.Amount,
		PaymentDate: arg.PaymentDate,
		PaidBy:      arg.PaidBy,
		Method:      arg.Method,
		Notes:       arg.Notes,
		CreatedAt:   s.timestamp(),
	}
	s.data.payments = append(s.data.payments, p)
	return p, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (s *MemoryStore) ListInvoiceLinesByInvoiceIDs(_ context.Context, invoiceIds []uuid.UUID) ([]InvoiceLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := idSet(invoiceIds)
	items := []InvoiceLine{}
	for _, l := range s.data.lines {
		if set[l.InvoiceID] {
			items = append(items, l)
		}
	}
	sort.SliceStable(items, func(a, b int) bool { return items[a].Position < items[b].Position })
	return items, nil
}

func (s *MemoryStore) ListAdditionalFeesByInvoiceIDs(_ context.Context, invoiceIds []uuid.UUID) ([]AdditionalFee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := idSet(invoiceIds)
	items := []AdditionalFee{}
	for _, f := range s.data.fees {
		if set[f.InvoiceID] {
			items = append(items, f)
		}
	}
	sort.SliceStable(items, func(a, b int) bool { return items[a].Position < items[b].Position })
	return items, nil
}

func (s *MemoryStore) ListPaymentsByInvoiceIDs(_ context.Context, invoiceIds []uuid.UUID) ([]Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := idSet(invoiceIds)
	items := []Payment{}
	for _, p := range s.data.payments {
		if set[p.InvoiceID] {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *MemoryStore) ListPaymentsByDateRange(_ context.Context, arg ListPaymentsByDateRangeParams) ([]Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []Payment{}
	for _, p := range s.data.payments {
		inv, ok := s.data.invoices[p.InvoiceID]
		if !ok || inv.ArchivedAt.Valid {
			continue
		}
		if !p.PaymentDate.Time.Before(arg.From.Time) && p.PaymentDate.Time.Before(arg.To.Time) {
			items = append(items, p)
		}
	}
	sort.SliceStable(items, func(a, b int) bool { return items[a].PaymentDate.Time.Before(items[b].PaymentDate.Time) })
	return items, nil
}

var _ Store = (*MemoryStore)(nil)

// Audit

func (s *MemoryStore) CreateAuditEvent(_ context.Context, arg CreateAuditEventParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.audit[arg.ID]; ok {
		return 0, nil
	}
	s.data.audit[arg.ID] = AuditEvent{
		ID:         arg.ID,
		EventType:  arg.EventType,
		EntityType: arg.EntityType,
		EntityID:   arg.EntityID,
		Actor:      arg.Actor,
		Data:       append([]byte(nil), arg.Data...),
		OccurredAt: arg.OccurredAt,
		RecordedAt: s.timestamp(),
	}
	return 1, nil
}

// AuditEvents returns the stored audit events of one entity, oldest first.
func (s *MemoryStore) AuditEvents(entityType, entityID string) []AuditEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var events []AuditEvent
	for _, e := range s.data.audit {
		if e.EntityType == entityType && e.EntityID == entityID {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].OccurredAt.Time.Before(events[j].OccurredAt.Time) })
	return events
}
