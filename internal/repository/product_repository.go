package repository

import (
	"context"

	"catalog-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the store operations the catalog needs:
// a sorted, bounded range scan, a substring search, and a single insert.
type ProductRepository interface {
	// List returns up to limit products ordered by ascending ID,
	// restricted to IDs strictly greater than after when it is non-nil.
	List(ctx context.Context, after *primitive.ObjectID, limit int) ([]domain.Product, error)
	// Search returns all products whose name or description contains the
	// query, case-insensitively, ordered by descending ID (newest first).
	Search(ctx context.Context, query string) ([]domain.Product, error)
	// Insert persists the product, assigning its ID and CreatedAt.
	Insert(ctx context.Context, product *domain.Product) error
	// Close releases the underlying store connection.
	Close(ctx context.Context) error
}

var (
	ErrProductNotFound = &RepositoryError{Message: "product not found"}
)

type RepositoryError struct {
	Message string
}

func (e *RepositoryError) Error() string {
	return e.Message
}
