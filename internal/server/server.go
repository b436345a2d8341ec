package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	_ "github.com/sygpress/sygpress-api/docs"
	awsclient "github.com/sygpress/sygpress-api/internal/client/aws"
	"github.com/sygpress/sygpress-api/internal/config"
	"github.com/sygpress/sygpress-api/internal/constants"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/handlers"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"github.com/sygpress/sygpress-api/internal/middleware"
	"github.com/sygpress/sygpress-api/internal/services"
	"github.com/sygpress/sygpress-api/internal/types/business"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const databaseWait = 30 * time.Second

// Services bundles the domain services sharing one store.
type Services struct {
	Sequence   *services.SequenceService
	Ledger     *services.InvoiceService
	Reports    *services.ReportService
	Dashboards *services.DashboardService
	Catalog    *services.CatalogService
	Reconciler *services.ReconcileService
}

// NewServices wires every service against store.
func NewServices(cfg *config.Config, store db.Store, audit interfaces.AuditPublisher, log *zap.Logger) *Services {
	if audit == nil {
		audit = services.NoopAuditPublisher{}
	}
	sequence := services.NewSequenceService(store, log.Named("sequence"))
	reportOpts := []services.ReportServiceOption{}
	if cfg.Location != nil {
		reportOpts = append(reportOpts, services.WithReportLocation(cfg.Location))
	}
	return &Services{
		Sequence: sequence,
		Ledger: services.NewInvoiceService(store, sequence, log.Named("ledger"),
			services.WithDefaultVATRate(cfg.DefaultVATRate),
			services.WithAuditPublisher(audit),
		),
		Reports:    services.NewReportService(store, log.Named("reports"), reportOpts...),
		Dashboards: services.NewDashboardService(store, log.Named("dashboards"), reportOpts...),
		Catalog:    services.NewCatalogService(store, log.Named("catalog")),
		Reconciler: services.NewReconcileService(store, sequence, audit, log.Named("reconcile")),
	}
}

// Server is the HTTP API over the invoice ledger.
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	services *Services
	pool     *pgxpool.Pool
	limiter  *middleware.RateLimiter
	router   *gin.Engine
}

// Bootstrap connects to Postgres, applies the schema, reconciles the invoice
// counter and returns a server ready to take requests. A failed
// reconciliation is logged, never fatal.
func Bootstrap(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	pool, err := OpenPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	audit, err := NewAuditPublisher(ctx, cfg, log)
	if err != nil {
		pool.Close()
		return nil, err
	}

	srv := New(cfg, db.NewStore(pool), pool, audit, log)
	srv.pool = pool
	// invoice_number stays unique in the schema either way.
	if _, err := srv.Reconcile(ctx); err != nil {
		log.Error("Continuing startup without reconciling the invoice counter", zap.Error(err))
	}
	return srv, nil
}

// OpenPool resolves the DSN, sizes the pool from config and waits for the
// database to answer.
func OpenPool(ctx context.Context, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
	var secrets config.SecretResolver
	if cfg.DatabaseURL == "" && cfg.DatabaseSecretARN != "" {
		client, err := awsclient.NewSecretsManagerClient(ctx, log.Named("secrets"))
		if err != nil {
			return nil, err
		}
		secrets = client
	}
	dsn, err := cfg.ResolveDatabaseURL(ctx, secrets)
	if err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse database connection string")
	}
	poolConfig.MaxConns = cfg.DBMaxConns
	poolConfig.MinConns = cfg.DBMinConns
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create connection pool")
	}
	if err := helpers.WaitForDatabase(ctx, pool, databaseWait); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "database did not become reachable")
	}
	return pool, nil
}

// NewAuditPublisher returns the SQS publisher when a queue is configured.
func NewAuditPublisher(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.AuditPublisher, error) {
	if cfg.AuditQueueURL == "" {
		return services.NoopAuditPublisher{}, nil
	}
	publisher, err := awsclient.NewSQSPublisher(ctx, cfg.AuditQueueURL, log.Named("audit"))
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// New builds the router over store. pinger may be nil when there is no
// database to health check.
func New(cfg *config.Config, store db.Store, pinger handlers.Pinger, audit interfaces.AuditPublisher, log *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		services: NewServices(cfg, store, audit, log),
		limiter:  middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log.Named("ratelimit")),
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.initializeRoutes(pinger)
	return s
}

func (s *Server) Services() *Services {
	return s.services
}

// Handler is the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router exposes the gin engine for adapters such as the Lambda proxy.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Reconcile raises the invoice counter past every stored invoice number.
func (s *Server) Reconcile(ctx context.Context) (*business.ReconcileResult, error) {
	result, err := s.services.Reconciler.Reconcile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "invoice counter reconciliation failed")
	}
	return result, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server starting", zap.String("addr", httpServer.Addr), zap.String("stage", s.cfg.Stage))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Server is shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// Close releases the rate limiter and the pool.
func (s *Server) Close() {
	s.limiter.Stop()
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Server) initializeRoutes(pinger handlers.Pinger) {
	invoiceHandler := handlers.NewInvoiceHandler(s.services.Ledger, s.log.Named("http"))
	reportHandler := handlers.NewReportHandler(s.services.Reports, s.log.Named("http"))
	dashboardHandler := handlers.NewDashboardHandler(s.services.Dashboards, s.log.Named("http"))
	catalogHandler := handlers.NewCatalogHandler(s.services.Catalog, s.log.Named("http"))
	healthHandler := handlers.NewHealthHandler(pinger, s.log.Named("health"))

	router := s.router
	router.Use(configureCORS(s.cfg.CORSAllowedOrigins))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(s.log.Named("http")))
	router.Use(s.limiter.Middleware())

	if !s.cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		invoices := v1.Group("/invoices")
		{
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.GET("/number/:invoice_number", invoiceHandler.GetInvoiceByNumber)
			invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
			invoices.DELETE("/:invoice_id", invoiceHandler.DeleteInvoice)
			invoices.POST("/:invoice_id/archive", invoiceHandler.ArchiveInvoice)
			invoices.PATCH("/:invoice_id/status", invoiceHandler.UpdateProcessingStatus)
			invoices.POST("/:invoice_id/payments", invoiceHandler.RecordPayment)
		}

		v1.GET("/reports/:kind", reportHandler.GetReport)

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/admin", dashboardHandler.GetAdminDashboard)
			dashboard.GET("/user", dashboardHandler.GetUserDashboard)
		}

		v1.POST("/customers", catalogHandler.CreateCustomer)
		v1.GET("/customers/:customer_id", catalogHandler.GetCustomer)
		v1.POST("/articles", catalogHandler.CreateArticle)
		v1.POST("/services", catalogHandler.CreateLaundryService)
		v1.POST("/pricings", catalogHandler.CreatePricing)
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", constants.CorrelationIDHeader, constants.UserHeader}
	corsConfig.ExposeHeaders = []string{constants.CorrelationIDHeader}
	return cors.New(corsConfig)
}
