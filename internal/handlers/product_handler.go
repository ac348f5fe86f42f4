package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"catalog-service/internal/cache"
	"catalog-service/internal/domain"
	"catalog-service/internal/events"
	"catalog-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler maps catalog service outcomes to HTTP responses
type ProductHandler struct {
	logger   *zap.Logger
	service  *service.ProductService
	cache    cache.Cache // nil when caching is disabled
	cacheTTL int
	eventBus events.EventPublisher
}

func NewProductHandler(logger *zap.Logger, svc *service.ProductService, cacheClient cache.Cache, cacheTTL int, eventBus events.EventPublisher) *ProductHandler {
	return &ProductHandler{
		logger:   logger,
		service:  svc,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		eventBus: eventBus,
	}
}

// ListProducts handles GET /products
// @Summary      List products with cursor pagination
// @Description  Returns one page of products ordered by ascending id. Pass the returned nextCursor to fetch the following page; hasMore=false marks the end of the catalog.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string  false  "Request ID for request tracking (UUID). Generated when absent."
// @Param        cursor        query     string  false  "Id of the last product of the previous page (exclusive lower bound)"
// @Param        limit         query     string  false  "Page size (default: 10, max: 100). Non-numeric values fall back to the default." example(10)
// @Success      200           {object}  PaginatedProductsResponse  "One page of products"
// @Failure      400           {object}  ErrorResponse              "Malformed cursor"
// @Failure      500           {object}  ErrorResponse              "Store failure"
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	cursor := c.Query("cursor")
	// Unparseable limit coerces to 0, which the service treats as "use default"
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		limit = 0
	}

	// Try cache first (if enabled)
	cacheKey := cacheKeyListProducts(cursor, limit)
	if h.cache != nil {
		var cachedResponse PaginatedProductsResponse
		if err := cache.GetJSON(c.Request.Context(), h.cache, cacheKey, &cachedResponse); err == nil {
			h.logger.Debug("Cache hit", zap.String("key", cacheKey))
			c.JSON(http.StatusOK, cachedResponse)
			return
		}
	}

	page, err := h.service.ListProducts(c.Request.Context(), cursor, limit)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		h.logger.Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}

	response := PaginatedProductsResponse{
		Data:       toProductResponses(page.Data),
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}

	if h.cache != nil {
		cache.SetJSON(c.Request.Context(), h.cache, cacheKey, response, cache.TTL(h.cacheTTL))
	}

	c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /products
// @Summary      Create a product
// @Description  Validates and persists a new product. Field checks run in order (name, description, price, stock, category) and the first failing field is reported. The store assigns id and createdAt.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string                false  "Request ID for request tracking (UUID). Generated when absent."
// @Param        request       body      CreateProductRequest  true   "Product to create"
// @Success      201           {object}  ProductResponse  "Product created"
// @Failure      400           {object}  ErrorResponse    "Validation failure or malformed body"
// @Failure      500           {object}  ErrorResponse    "Store failure"
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		h.logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	// Cached list pages are stale now
	if h.cache != nil {
		if err := h.cache.DeleteByPattern(c.Request.Context(), "products:list:*"); err != nil {
			h.logger.Warn("Failed to invalidate list cache", zap.Error(err))
		}
	}

	event := events.ProductCreatedEvent{
		ProductID:   product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    string(product.Category),
		Stock:       product.Stock,
		OccurredAt:  product.CreatedAt,
	}
	if err := h.eventBus.Publish(c.Request.Context(), event); err != nil {
		// The product is already persisted; the event is best-effort
		h.logger.Error("Failed to publish event", zap.Error(err))
	}

	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// SearchProducts handles GET /products/search
// @Summary      Search products
// @Description  Case-insensitive substring match against name or description, newest first. A blank query returns an empty list. The full match set is returned without pagination.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Request-ID  header    string  false  "Request ID for request tracking (UUID). Generated when absent."
// @Param        q             query     string  true   "Search query" example(shirt)
// @Success      200           {array}   ProductResponse  "Matching products, possibly empty"
// @Failure      400           {object}  ErrorResponse    "Missing q parameter"
// @Failure      500           {object}  ErrorResponse    "Store failure"
// @Router       /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query, ok := c.GetQuery("q")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search query is required"})
		return
	}

	products, err := h.service.SearchProducts(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("Failed to search products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search products"})
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

func cacheKeyListProducts(cursor string, limit int) string {
	return fmt.Sprintf("products:list:%s:%d", cursor, limit)
}
