package service

import (
	"context"
	"strings"

	"catalog-service/internal/domain"
	"catalog-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size when the caller supplies none, a
	// non-positive value, or something that failed numeric parsing
	DefaultLimit = 10
	// MaxLimit caps the page size
	MaxLimit = 100
)

var (
	ErrInvalidCursor = &domain.ValidationError{Field: "cursor", Message: "cursor must be a valid product id"}
)

// PaginatedProducts is one page of list results. NextCursor is nil on the
// last page; HasMore is the only end-of-list signal, no total is reported.
type PaginatedProducts struct {
	Data       []domain.Product
	NextCursor *string
	HasMore    bool
}

// CreateProductInput carries raw create fields into validation
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
}

// ProductService implements the catalog operations over an injected repository
type ProductService struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

func NewProductService(repo repository.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns one page of products ordered by ascending ID.
// The cursor is the hex ID of the last product of the previous page and is an
// exclusive lower bound. It fetches limit+1 records to detect whether another
// page exists without a count query.
func (s *ProductService) ListProducts(ctx context.Context, cursor string, limit int) (*PaginatedProducts, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var after *primitive.ObjectID
	if cursor != "" {
		id, err := primitive.ObjectIDFromHex(cursor)
		if err != nil {
			return nil, ErrInvalidCursor
		}
		after = &id
	}

	products, err := s.repo.List(ctx, after, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(products) > limit
	if hasMore {
		products = products[:limit]
	}

	var nextCursor *string
	if hasMore {
		last := products[len(products)-1].ID.Hex()
		nextCursor = &last
	}

	return &PaginatedProducts{
		Data:       products,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}

// SearchProducts returns every product whose name or description contains the
// query, case-insensitively, newest first. A blank query returns an empty
// result without querying the store rather than matching everything.
// The full match set is returned unpaginated; acceptable while catalogs stay
// small, and kept that way deliberately so the response shape stays stable.
func (s *ProductService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Product{}, nil
	}

	return s.repo.Search(ctx, query)
}

// CreateProduct validates the input and persists a new product. Validation
// failures return a *domain.ValidationError and leave the store untouched;
// on success exactly one insert happens and the stored entity is returned
// with its assigned ID and CreatedAt.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product, err := domain.NewProduct(
		input.Name,
		input.Description,
		input.Price,
		input.Stock,
		domain.Category(input.Category),
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.Hex()),
		zap.String("name", product.Name),
		zap.String("category", string(product.Category)),
	)

	return product, nil
}
