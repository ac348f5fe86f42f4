package service

import (
	"context"
	"testing"

	"catalog-service/internal/domain"
	"catalog-service/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestService() (*ProductService, *repository.MemoryProductRepository) {
	repo := repository.NewMemoryProductRepository()
	return NewProductService(repo, zap.NewNop()), repo
}

func seedProducts(t *testing.T, svc *ProductService, count int) []domain.Product {
	t.Helper()
	created := make([]domain.Product, 0, count)
	for i := 0; i < count; i++ {
		product, err := svc.CreateProduct(context.Background(), CreateProductInput{
			Name:        "Product",
			Description: "Seeded product",
			Price:       9.99,
			Stock:       10,
			Category:    "BOOKS",
		})
		assert.NoError(t, err)
		created = append(created, *product)
	}
	return created
}

func TestListProducts_EmptyStore(t *testing.T) {
	svc, _ := newTestService()

	page, err := svc.ListProducts(context.Background(), "", 10)

	assert.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Nil(t, page.NextCursor)
	assert.False(t, page.HasMore)
}

func TestListProducts_TwoPages(t *testing.T) {
	svc, _ := newTestService()
	seeded := seedProducts(t, svc, 15)

	first, err := svc.ListProducts(context.Background(), "", 10)
	assert.NoError(t, err)
	assert.Len(t, first.Data, 10)
	assert.True(t, first.HasMore)
	assert.NotNil(t, first.NextCursor)
	// NextCursor is the ID of the 10th (last returned) item
	assert.Equal(t, seeded[9].ID.Hex(), *first.NextCursor)

	second, err := svc.ListProducts(context.Background(), *first.NextCursor, 10)
	assert.NoError(t, err)
	assert.Len(t, second.Data, 5)
	assert.False(t, second.HasMore)
	assert.Nil(t, second.NextCursor)
}

func TestListProducts_FullTraversalYieldsEachProductOnce(t *testing.T) {
	svc, _ := newTestService()
	const total = 23
	const limit = 7
	seedProducts(t, svc, total)

	seen := make(map[string]bool)
	var previous primitive.ObjectID
	cursor := ""
	pages := 0

	for {
		page, err := svc.ListProducts(context.Background(), cursor, limit)
		assert.NoError(t, err)

		for _, p := range page.Data {
			assert.False(t, seen[p.ID.Hex()], "product %s returned twice", p.ID.Hex())
			seen[p.ID.Hex()] = true
			// Ascending ID order across the whole traversal
			assert.Equal(t, 1, compareObjectIDs(p.ID, previous))
			previous = p.ID
		}

		if !page.HasMore {
			assert.Nil(t, page.NextCursor)
			break
		}
		assert.NotNil(t, page.NextCursor)
		cursor = *page.NextCursor
		pages++
		assert.Less(t, pages, 10, "traversal did not terminate")
	}

	assert.Len(t, seen, total)
}

func compareObjectIDs(a, b primitive.ObjectID) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func TestListProducts_DefaultLimit(t *testing.T) {
	svc, _ := newTestService()
	seedProducts(t, svc, 12)

	// Zero and negative limits fall back to the default of 10
	page, err := svc.ListProducts(context.Background(), "", 0)
	assert.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.True(t, page.HasMore)

	page, err = svc.ListProducts(context.Background(), "", -3)
	assert.NoError(t, err)
	assert.Len(t, page.Data, 10)
}

func TestListProducts_LimitCap(t *testing.T) {
	svc, _ := newTestService()
	seedProducts(t, svc, 5)

	page, err := svc.ListProducts(context.Background(), "", 100000)

	assert.NoError(t, err)
	assert.Len(t, page.Data, 5)
	assert.False(t, page.HasMore)
}

func TestListProducts_InvalidCursor(t *testing.T) {
	svc, _ := newTestService()

	page, err := svc.ListProducts(context.Background(), "not-an-object-id", 10)

	assert.Nil(t, page)
	assert.Equal(t, ErrInvalidCursor, err)
}

func TestListProducts_CursorForMissingIDStillWorks(t *testing.T) {
	svc, _ := newTestService()
	seedProducts(t, svc, 3)

	// A syntactically valid cursor that matches no record is just a range bound
	page, err := svc.ListProducts(context.Background(), primitive.NilObjectID.Hex(), 10)

	assert.NoError(t, err)
	assert.Len(t, page.Data, 3)
}

func TestListProducts_ExactPageBoundary(t *testing.T) {
	svc, _ := newTestService()
	seedProducts(t, svc, 10)

	page, err := svc.ListProducts(context.Background(), "", 10)

	assert.NoError(t, err)
	assert.Len(t, page.Data, 10)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestSearchProducts_BlankQueryReturnsEmpty(t *testing.T) {
	svc, _ := newTestService()
	seedProducts(t, svc, 5)

	for _, query := range []string{"", "   ", "\t\n"} {
		results, err := svc.SearchProducts(context.Background(), query)
		assert.NoError(t, err)
		assert.Empty(t, results)
	}
}

func TestSearchProducts_CaseInsensitiveNameMatch(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Red Shirt", Description: "Cotton", Price: 20, Stock: 5, Category: "CLOTHING",
	})
	assert.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Blue Hat", Description: "Wool", Price: 15, Stock: 5, Category: "CLOTHING",
	})
	assert.NoError(t, err)

	results, err := svc.SearchProducts(context.Background(), "shirt")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Red Shirt", results[0].Name)
}

func TestSearchProducts_NewestFirst(t *testing.T) {
	svc, _ := newTestService()

	older, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Go Book", Description: "First edition", Price: 30, Stock: 3, Category: "BOOKS",
	})
	assert.NoError(t, err)
	newer, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Go Book", Description: "Second edition", Price: 35, Stock: 3, Category: "BOOKS",
	})
	assert.NoError(t, err)

	results, err := svc.SearchProducts(context.Background(), "go book")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, newer.ID, results[0].ID)
	assert.Equal(t, older.ID, results[1].ID)
}

func TestCreateProduct_NegativePriceRejectedWithoutInsert(t *testing.T) {
	svc, repo := newTestService()

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Bad", Description: "Negative price", Price: -1, Stock: 5, Category: "FOOD",
	})

	assert.Nil(t, product)
	assert.Equal(t, domain.ErrPriceNegative, err)

	stored, err := repo.List(context.Background(), nil, 10)
	assert.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateProduct_UnknownCategoryRejected(t *testing.T) {
	svc, repo := newTestService()

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Toy Car", Description: "Not a valid category", Price: 5, Stock: 5, Category: "TOYS",
	})

	assert.Nil(t, product)
	assert.Equal(t, domain.ErrInvalidCategory, err)

	stored, err := repo.List(context.Background(), nil, 10)
	assert.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreateProduct_RoundTripThroughList(t *testing.T) {
	svc, _ := newTestService()
	seedProducts(t, svc, 12)

	created, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name: "Fresh Bread", Description: "Baked today", Price: 3.5, Stock: 20, Category: "FOOD",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Walk pages until the created product shows up
	cursor := ""
	var found *domain.Product
	for {
		page, err := svc.ListProducts(context.Background(), cursor, 5)
		assert.NoError(t, err)
		for i := range page.Data {
			if page.Data[i].ID == created.ID {
				found = &page.Data[i]
			}
		}
		if found != nil || !page.HasMore {
			break
		}
		cursor = *page.NextCursor
	}

	assert.NotNil(t, found)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Description, found.Description)
	assert.Equal(t, created.Price, found.Price)
	assert.Equal(t, created.Stock, found.Stock)
	assert.Equal(t, created.Category, found.Category)
	assert.Equal(t, created.CreatedAt, found.CreatedAt)
}
