package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/types/business"
	"go.uber.org/zap"
)

// CatalogService manages the records invoices point at. It only creates
// and looks up; invoices freeze what they need at creation time.
type CatalogService struct {
	store  db.Store
	logger *zap.Logger
}

func NewCatalogService(store db.Store, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

func (s *CatalogService) CreateCustomer(ctx context.Context, params db.CreateCustomerParams) (db.Customer, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.PhoneNumber = strings.TrimSpace(params.PhoneNumber)
	if params.Name == "" {
		return db.Customer{}, newValidationError("name", "is required")
	}
	if params.PhoneNumber == "" {
		return db.Customer{}, newValidationError("phone_number", "is required")
	}
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	var customer db.Customer
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		var err error
		customer, err = q.CreateCustomer(ctx, params)
		return translateStoreError(err, "customer", params.Name)
	})
	if err != nil {
		return db.Customer{}, err
	}

	s.logger.Info("Customer created", zap.String("customer_id", customer.ID.String()))
	return customer, nil
}

func (s *CatalogService) GetCustomer(ctx context.Context, id uuid.UUID) (db.Customer, error) {
	var customer db.Customer
	err := s.store.ExecTx(ctx, readTx, func(q db.Querier) error {
		var err error
		customer, err = q.GetCustomer(ctx, id)
		return translateStoreError(err, "customer", id.String())
	})
	if err != nil {
		return db.Customer{}, err
	}
	return customer, nil
}

func (s *CatalogService) CreateArticle(ctx context.Context, params db.CreateArticleParams) (db.Article, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return db.Article{}, newValidationError("name", "is required")
	}
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	var article db.Article
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		var err error
		article, err = q.CreateArticle(ctx, params)
		return translateStoreError(err, "article", params.Name)
	})
	if err != nil {
		return db.Article{}, err
	}

	s.logger.Info("Article created", zap.String("article_id", article.ID.String()), zap.String("name", article.Name))
	return article, nil
}

func (s *CatalogService) CreateLaundryService(ctx context.Context, params db.CreateLaundryServiceParams) (db.LaundryService, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return db.LaundryService{}, newValidationError("name", "is required")
	}
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	var service db.LaundryService
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		var err error
		service, err = q.CreateLaundryService(ctx, params)
		return translateStoreError(err, "service", params.Name)
	})
	if err != nil {
		return db.LaundryService{}, err
	}

	s.logger.Info("Laundry service created", zap.String("service_id", service.ID.String()), zap.String("name", service.Name))
	return service, nil
}

// CreatePricing prices an article for a service. There is at most one price
// per pair; a second one is a ConflictError.
func (s *CatalogService) CreatePricing(ctx context.Context, params db.CreatePricingParams) (db.PricingDetail, error) {
	if params.ArticleID == uuid.Nil {
		return db.PricingDetail{}, newValidationError("article_id", "is required")
	}
	if params.ServiceID == uuid.Nil {
		return db.PricingDetail{}, newValidationError("service_id", "is required")
	}
	if err := business.CheckAmount(params.Price); err != nil {
		return db.PricingDetail{}, newValidationError("price", "%v", err)
	}
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	var detail db.PricingDetail
	err := s.store.ExecTx(ctx, writeTx, func(q db.Querier) error {
		pricing, err := q.CreatePricing(ctx, params)
		if err != nil {
			return translateStoreError(err, "pricing", params.ArticleID.String()+"/"+params.ServiceID.String())
		}
		detail, err = q.GetPricingDetail(ctx, pricing.ID)
		return translateStoreError(err, "pricing", pricing.ID.String())
	})
	if err != nil {
		return db.PricingDetail{}, err
	}

	s.logger.Info("Pricing created",
		zap.String("pricing_id", detail.ID.String()),
		zap.String("article", detail.ArticleName),
		zap.String("service", detail.ServiceName),
		zap.String("price", detail.Price.String()),
	)
	return detail, nil
}
