package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sygpress/sygpress-api/internal/db"
	"github.com/sygpress/sygpress-api/internal/helpers"
	"github.com/sygpress/sygpress-api/internal/interfaces"
	"go.uber.org/zap"
)

// CatalogHandler manages customers, articles, services and prices
type CatalogHandler struct {
	catalog interfaces.Catalog
	logger  *zap.Logger
}

func NewCatalogHandler(catalog interfaces.Catalog, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags catalog
// @Accept json
// @Produce json
// @Param customer body CreateCustomerRequest true "Customer"
// @Success 201 {object} CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /customers [post]
func (h *CatalogHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := h.catalog.CreateCustomer(c.Request.Context(), db.CreateCustomerParams{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     helpers.ToPgText(req.Address),
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusCreated, toCustomerResponse(customer))
}

// GetCustomer godoc
// @Summary Get customer by ID
// @Tags catalog
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /customers/{customer_id} [get]
func (h *CatalogHandler) GetCustomer(c *gin.Context) {
	id, ok := parseUUIDParam(c, h.logger, "customer_id")
	if !ok {
		return
	}

	customer, err := h.catalog.GetCustomer(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusOK, toCustomerResponse(customer))
}

// CreateArticle godoc
// @Summary Create an article
// @Tags catalog
// @Accept json
// @Produce json
// @Param article body CreateArticleRequest true "Article"
// @Success 201 {object} ArticleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /articles [post]
func (h *CatalogHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	article, err := h.catalog.CreateArticle(c.Request.Context(), db.CreateArticleParams{
		Name:     req.Name,
		Category: helpers.ToPgText(req.Category),
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusCreated, ArticleResponse{ID: article.ID, Name: article.Name, Category: article.Category.String})
}

// CreateLaundryService godoc
// @Summary Create a laundry service
// @Tags catalog
// @Accept json
// @Produce json
// @Param service body CreateLaundryServiceRequest true "Service"
// @Success 201 {object} LaundryServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /services [post]
func (h *CatalogHandler) CreateLaundryService(c *gin.Context) {
	var req CreateLaundryServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	service, err := h.catalog.CreateLaundryService(c.Request.Context(), db.CreateLaundryServiceParams{Name: req.Name})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusCreated, LaundryServiceResponse{ID: service.ID, Name: service.Name})
}

// CreatePricing godoc
// @Summary Price an article for a service
// @Tags catalog
// @Accept json
// @Produce json
// @Param pricing body CreatePricingRequest true "Pricing"
// @Success 201 {object} PricingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /pricings [post]
func (h *CatalogHandler) CreatePricing(c *gin.Context) {
	var req CreatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, h.logger, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	detail, err := h.catalog.CreatePricing(c.Request.Context(), db.CreatePricingParams{
		ArticleID: req.ArticleID,
		ServiceID: req.ServiceID,
		Price:     req.Price,
	})
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	sendSuccess(c, http.StatusCreated, PricingResponse{
		ID:          detail.ID,
		ArticleID:   detail.ArticleID,
		ArticleName: detail.ArticleName,
		ServiceID:   detail.ServiceID,
		ServiceName: detail.ServiceName,
		Price:       detail.Price,
	})
}
