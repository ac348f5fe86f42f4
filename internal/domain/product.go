package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the closed set of product classifications
type Category string

const (
	CategoryElectronics Category = "ELECTRONICS"
	CategoryClothing    Category = "CLOTHING"
	CategoryBooks       Category = "BOOKS"
	CategoryFood        Category = "FOOD"
)

// Categories lists all valid product categories
var Categories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryFood,
}

// Valid reports whether the category is a member of the fixed enumeration
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryClothing, CategoryBooks, CategoryFood:
		return true
	}
	return false
}

// Product represents a catalog product.
// The ObjectID doubles as the pagination cursor: IDs embed the creation
// timestamp, so their order matches creation order.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Category    Category           `json:"category" bson:"category"`
	Stock       int                `json:"stock" bson:"stock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
}

// NewProduct validates the input fields and builds a product ready for
// insertion. ID and CreatedAt are left zero; the store assigns them.
// Checks run in a fixed order (name, description, price, stock, category)
// and the first failing field wins.
func NewProduct(name, description string, price float64, stock int, category Category) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}
	if price < 0 {
		return nil, ErrPriceNegative
	}
	if stock < 0 {
		return nil, ErrStockNegative
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Stock:       stock,
	}, nil
}

// Validation errors
var (
	ErrNameRequired        = &ValidationError{Field: "name", Message: "name must be a non-empty string"}
	ErrDescriptionRequired = &ValidationError{Field: "description", Message: "description must be a non-empty string"}
	ErrPriceNegative       = &ValidationError{Field: "price", Message: "price must be a number greater than or equal to 0"}
	ErrStockNegative       = &ValidationError{Field: "stock", Message: "stock must be a number greater than or equal to 0"}
	ErrInvalidCategory     = &ValidationError{Field: "category", Message: "category must be one of ELECTRONICS, CLOTHING, BOOKS, FOOD"}
)

// ValidationError represents a failed field check on product input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
