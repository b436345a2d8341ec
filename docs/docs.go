// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/invoices": {
            "get": {"tags": ["invoices"], "summary": "List invoices", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["invoices"], "summary": "Create an invoice", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/invoices/number/{invoice_number}": {
            "get": {"tags": ["invoices"], "summary": "Get invoice by number", "parameters": [{"type": "string", "name": "invoice_number", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/invoices/{invoice_id}": {
            "get": {"tags": ["invoices"], "summary": "Get invoice by ID", "parameters": [{"type": "string", "name": "invoice_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["invoices"], "summary": "Delete an invoice", "parameters": [{"type": "string", "name": "invoice_id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/invoices/{invoice_id}/payments": {
            "post": {"tags": ["invoices"], "summary": "Record a payment", "parameters": [{"type": "string", "name": "invoice_id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/invoices/{invoice_id}/status": {
            "patch": {"tags": ["invoices"], "summary": "Move an invoice through the workflow", "parameters": [{"type": "string", "name": "invoice_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{invoice_id}/archive": {
            "post": {"tags": ["invoices"], "summary": "Archive an invoice", "parameters": [{"type": "string", "name": "invoice_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/reports/{kind}": {
            "get": {"tags": ["reports"], "summary": "Generate a report", "parameters": [{"type": "string", "enum": ["sales", "customers", "status", "services"], "name": "kind", "in": "path", "required": true}, {"type": "string", "name": "start_date", "in": "query", "required": true}, {"type": "string", "name": "end_date", "in": "query", "required": true}, {"type": "integer", "name": "top", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/dashboard/admin": {
            "get": {"tags": ["dashboards"], "summary": "Admin dashboard", "responses": {"200": {"description": "OK"}}}
        },
        "/dashboard/user": {
            "get": {"tags": ["dashboards"], "summary": "Counter dashboard", "responses": {"200": {"description": "OK"}}}
        },
        "/customers": {
            "post": {"tags": ["catalog"], "summary": "Create a customer", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/customers/{customer_id}": {
            "get": {"tags": ["catalog"], "summary": "Get customer by ID", "parameters": [{"type": "string", "name": "customer_id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/articles": {
            "post": {"tags": ["catalog"], "summary": "Create an article", "responses": {"201": {"description": "Created"}}}
        },
        "/services": {
            "post": {"tags": ["catalog"], "summary": "Create a laundry service", "responses": {"201": {"description": "Created"}}}
        },
        "/pricings": {
            "post": {"tags": ["catalog"], "summary": "Price an article for a service", "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Sygpress API",
	Description:      "Invoice ledger and reports for a laundry back office",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
