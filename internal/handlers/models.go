package handlers

import (
	"time"

	"catalog-service/internal/domain"
)

// ErrorResponse represents an error response
// @Description Error response with error message
type ErrorResponse struct {
	// Error message describing what went wrong
	Error string `json:"error" example:"price must be a number greater than or equal to 0"`
}

// CreateProductRequest is the body of POST /products.
// Numeric fields left out of the JSON decode to zero, which the validation
// rules accept; string fields are caught by the non-empty checks.
type CreateProductRequest struct {
	Name        string  `json:"name" example:"Red Shirt"`
	Description string  `json:"description" example:"A bright red cotton shirt"`
	Price       float64 `json:"price" example:"19.99"`
	Category    string  `json:"category" example:"CLOTHING" enums:"ELECTRONICS,CLOTHING,BOOKS,FOOD"`
	Stock       int     `json:"stock" example:"50"`
}

// ProductResponse represents a product in API responses
// @Description Response with product details
type ProductResponse struct {
	// Unique product identifier, also usable as a pagination cursor
	ID string `json:"id" example:"65f1a2b3c4d5e6f7a8b9c0d1"`

	// Product name
	Name string `json:"name" example:"Red Shirt"`

	// Product description
	Description string `json:"description" example:"A bright red cotton shirt"`

	// Unit price, never negative
	Price float64 `json:"price" example:"19.99"`

	// Product category (ELECTRONICS, CLOTHING, BOOKS, FOOD)
	Category string `json:"category" example:"CLOTHING"`

	// Units in stock, never negative
	Stock int `json:"stock" example:"50"`

	// Creation timestamp (ISO 8601 format)
	CreatedAt string `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// PaginatedProductsResponse represents one page of the product listing
// @Description Response with a cursor-paginated page of products
type PaginatedProductsResponse struct {
	// Products in ascending id order
	Data []ProductResponse `json:"data"`

	// Cursor for the next page; null on the last page
	NextCursor *string `json:"nextCursor" example:"65f1a2b3c4d5e6f7a8b9c0d1"`

	// Whether another page exists. This is the only end-of-list signal;
	// no total count is reported.
	HasMore bool `json:"hasMore" example:"true"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses
}
