package constants

// ServiceName is attached to every production log line
const ServiceName = "sygpress-api"

// Stages
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
	StageTest  = "test"
)

// Sequence counters
const (
	// InvoiceSequenceID is the id of the singleton invoice number counter row
	InvoiceSequenceID int32 = 1
)

// Defaults applied when a request leaves a field empty
const (
	DefaultPaymentMethod = "Espèces"
	SystemUser           = "SYSTEM"
	DefaultTimezone      = "Africa/Porto-Novo"
)

// Report and dashboard limits
const (
	MaxReportDays          = 366
	DefaultTopCustomers    = 20
	DashboardTopN          = 5
	DashboardRecentInvoice = 10
	PendingPaymentsLimit   = 20
	TopCombinationsLimit   = 20
	OverdueAlertDays       = 7
	DefaultListLimit       = 50
	MaxListLimit           = 200
)

// Audit event types
const (
	AuditInvoiceCreated       = "invoice.created"
	AuditInvoiceDeleted       = "invoice.deleted"
	AuditInvoiceArchived      = "invoice.archived"
	AuditInvoiceStatusChanged = "invoice.status_changed"
	AuditPaymentRecorded      = "payment.recorded"
	AuditSequenceReconciled   = "sequence.reconciled"
)

// Headers
const (
	CorrelationIDHeader = "X-Correlation-ID"
	UserHeader          = "X-User"
)
