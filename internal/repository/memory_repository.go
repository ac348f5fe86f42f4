package repository

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"catalog-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryProductRepository keeps products in memory, ordered by ID. It mirrors
// the MongoDB repository's semantics and backs the service tests.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make([]domain.Product, 0),
	}
}

func (r *MemoryProductRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryProductRepository) List(ctx context.Context, after *primitive.ObjectID, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, limit)
	for _, p := range r.products {
		if after != nil && compareIDs(p.ID, *after) <= 0 {
			continue
		}
		result = append(result, p)
		if len(result) == limit {
			break
		}
	}

	return result, nil
}

func (r *MemoryProductRepository) Search(ctx context.Context, query string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)

	result := make([]domain.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			result = append(result, p)
		}
	}

	// Newest first
	sort.Slice(result, func(i, j int) bool {
		return compareIDs(result[i].ID, result[j].ID) > 0
	})

	return result, nil
}

func (r *MemoryProductRepository) Insert(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	r.products = append(r.products, *product)

	// ObjectIDs generated in-process are increasing, but keep the invariant
	// explicit in case callers ever seed IDs themselves
	sort.Slice(r.products, func(i, j int) bool {
		return compareIDs(r.products[i].ID, r.products[j].ID) < 0
	})

	return nil
}

func compareIDs(a, b primitive.ObjectID) int {
	return bytes.Compare(a[:], b[:])
}
