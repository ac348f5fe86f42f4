package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/internal/cache"
	"catalog-service/internal/config"
	"catalog-service/internal/events"
	"catalog-service/internal/handlers"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "catalog-service/docs" // Import docs for Swagger
)

// @title           Product Catalog API
// @version         1.0
// @description     Cursor-paginated product catalog backed by MongoDB: list, search and create products.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /

// @schemes   http

// Request ID Header
// @description All endpoints support X-Request-ID header for request tracking and correlation. If not provided, a new UUID will be generated and returned in the response header.
func main() {
	// Load configuration; PORT and MONGODB_URI are required
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Initialize logger
	appLogger := logger.New(cfg.Environment)
	defer appLogger.Sync()

	appLogger.Info("🚀 Starting Catalog Service",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.Port),
	)

	appLogger.Info("💾 MongoDB Configuration",
		zap.String("database", cfg.MongoDatabase),
	)

	if cfg.UseCache {
		appLogger.Info("💾 Cache Configuration (Optional)",
			zap.String("redis_host", cfg.RedisHost),
			zap.String("redis_port", cfg.RedisPort),
			zap.Int("cache_ttl", cfg.CacheTTL),
		)
	} else {
		appLogger.Info("💾 Cache Configuration",
			zap.Bool("enabled", false),
			zap.String("note", "Cache is disabled (USE_CACHE=false)"),
		)
	}

	if cfg.UseKafka {
		appLogger.Info("📡 Kafka Configuration (Optional - for product events)",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic_products", cfg.KafkaTopicProducts),
		)
	} else {
		appLogger.Info("📡 Kafka Configuration",
			zap.Bool("enabled", false),
			zap.String("note", "Kafka is disabled (USE_KAFKA=false)"),
		)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the document store; startup fails hard when it is unreachable
	appLogger.Info("🔧 Connecting to MongoDB...")
	repo, err := repository.NewMongoProductRepository(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer repo.Close(context.Background())
	appLogger.Info("✅ MongoDB connection established")

	// Initialize cache (optional)
	var cacheClient cache.Cache
	if cfg.UseCache {
		appLogger.Info("🔧 Initializing cache (Redis)...")
		cacheClient = cache.NewCache(cfg, appLogger)
		appLogger.Info("✅ Cache initialized successfully")
	} else {
		appLogger.Info("⏭️  Skipping cache initialization (USE_CACHE=false)")
		cacheClient = nil
	}

	// Initialize event publisher (optional Kafka, in-memory fallback)
	var eventBus events.EventPublisher
	if cfg.UseKafka {
		appLogger.Info("🔧 Initializing Kafka event publisher...")
		kafkaBus, err := events.NewKafkaEventPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Failed to initialize Kafka publisher, using in-memory fallback", zap.Error(err))
			eventBus = events.NewInMemoryEventPublisher(appLogger)
		} else {
			eventBus = kafkaBus
			appLogger.Info("✅ Kafka event publisher initialized")
		}
	} else {
		appLogger.Info("⏭️  Skipping Kafka publisher (USE_KAFKA=false)")
		eventBus = events.NewInMemoryEventPublisher(appLogger)
	}
	defer eventBus.Close()

	// Wire service and handlers
	productService := service.NewProductService(repo, appLogger)
	productHandler := handlers.NewProductHandler(appLogger, productService, cacheClient, cfg.CacheTTL, eventBus)

	// Initialize router
	router := gin.New()

	// CORS middleware (must be first to handle preflight requests)
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RecoveryHandler(appLogger))
	router.Use(logger.GinMiddleware(appLogger))
	router.Use(middleware.RequestIDMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", healthCheck)

	// Catalog routes
	products := router.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/search", productHandler.SearchProducts)
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("🌐 Starting HTTP server",
			zap.String("address", ":"+cfg.Port),
			zap.String("swagger_url", "http://localhost:"+cfg.Port+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited")
}

// healthCheck godoc
// @Summary      Health check endpoint
// @Description  Reports whether the service is up.
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string  "Service operational"
// @Router       /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "catalog-service",
	})
}
