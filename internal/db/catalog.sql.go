package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const createCustomer = `-- name: CreateCustomer :one
INSERT INTO customers (id, name, phone_number, address)
VALUES ($1, $2, $3, $4)
RETURNING id, name, phone_number, address, created_at
`

type CreateCustomerParams struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phone_number"`
	Address     pgtype.Text `json:"address"`
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, createCustomer, arg.ID, arg.Name, arg.PhoneNumber, arg.Address)
	var i Customer
	err := row.Scan(&i.ID, &i.Name, &i.PhoneNumber, &i.Address, &i.CreatedAt)
	return i, err
}

const getCustomer = `-- name: GetCustomer :one
SELECT id, name, phone_number, address, created_at FROM customers
WHERE id = $1
`

func (q *Queries) GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomer, id)
	var i Customer
	err := row.Scan(&i.ID, &i.Name, &i.PhoneNumber, &i.Address, &i.CreatedAt)
	return i, err
}

const countCustomers = `-- name: CountCustomers :one
SELECT COUNT(*) FROM customers
`

func (q *Queries) CountCustomers(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countCustomers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createArticle = `-- name: CreateArticle :one
INSERT INTO articles (id, name, category)
VALUES ($1, $2, $3)
RETURNING id, name, category, created_at
`

type CreateArticleParams struct {
	ID       uuid.UUID   `json:"id"`
	Name     string      `json:"name"`
	Category pgtype.Text `json:"category"`
}

func (q *Queries) CreateArticle(ctx context.Context, arg CreateArticleParams) (Article, error) {
	row := q.db.QueryRow(ctx, createArticle, arg.ID, arg.Name, arg.Category)
	var i Article
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.CreatedAt)
	return i, err
}

const createLaundryService = `-- name: CreateLaundryService :one
INSERT INTO laundry_services (id, name)
VALUES ($1, $2)
RETURNING id, name, created_at
`

type CreateLaundryServiceParams struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (q *Queries) CreateLaundryService(ctx context.Context, arg CreateLaundryServiceParams) (LaundryService, error) {
	row := q.db.QueryRow(ctx, createLaundryService, arg.ID, arg.Name)
	var i LaundryService
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const createPricing = `-- name: CreatePricing :one
INSERT INTO pricings (id, article_id, service_id, price)
VALUES ($1, $2, $3, $4)
RETURNING id, article_id, service_id, price, created_at
`

type CreatePricingParams struct {
	ID        uuid.UUID       `json:"id"`
	ArticleID uuid.UUID       `json:"article_id"`
	ServiceID uuid.UUID       `json:"service_id"`
	Price     decimal.Decimal `json:"price"`
}

func (q *Queries) CreatePricing(ctx context.Context, arg CreatePricingParams) (Pricing, error) {
	row := q.db.QueryRow(ctx, createPricing, arg.ID, arg.ArticleID, arg.ServiceID, arg.Price)
	var i Pricing
	err := row.Scan(&i.ID, &i.ArticleID, &i.ServiceID, &i.Price, &i.CreatedAt)
	return i, err
}

const getPricingDetail = `-- name: GetPricingDetail :one
SELECT p.id, p.article_id, a.name AS article_name, p.service_id, s.name AS service_name, p.price
FROM pricings p
JOIN articles a ON a.id = p.article_id
JOIN laundry_services s ON s.id = p.service_id
WHERE p.id = $1
`

func (q *Queries) GetPricingDetail(ctx context.Context, id uuid.UUID) (PricingDetail, error) {
	row := q.db.QueryRow(ctx, getPricingDetail, id)
	var i PricingDetail
	err := row.Scan(
		&i.ID,
		&i.ArticleID,
		&i.ArticleName,
		&i.ServiceID,
		&i.ServiceName,
		&i.Price,
	)
	return i, err
}
