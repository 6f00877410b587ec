package main

import (
	"net/http"
	"os"

	"appraisalhub-properties/internal/handlers"
	"appraisalhub-properties/internal/middleware"
	"appraisalhub-properties/internal/repositories"
	"appraisalhub-properties/internal/services"
	"appraisalhub-properties/internal/transformers"
	"appraisalhub-properties/internal/validators"
	"appraisalhub-properties/pkg/cache"
	"appraisalhub-properties/pkg/config"
	"appraisalhub-properties/pkg/database"
	"appraisalhub-properties/pkg/logger"
	"appraisalhub-properties/pkg/metrics"
	"appraisalhub-properties/pkg/propertydata"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// App represents the application structure
type App struct {
	Config              *config.Config
	Router              *gin.Engine
	PropertyDataHandler *handlers.PropertyDataHandler
	RateLimiter         *middleware.RateLimiter
	Server              *http.Server
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the database connection
func (a *App) initializeDatabase() {
	if err := database.InitDB(a.Config.Database.URI, a.Config.Database.DBName); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
}

// initialize the Redis cache
func (a *App) initializeCache() {
	if err := cache.InitRedis(); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// repositories
	dataRepo := repositories.NewPropertyDataRepository()
	dataCache := repositories.NewPropertyDataCache()

	// transformers
	attrTrans := transformers.NewAttributeTransformer()
	addrTrans := transformers.NewAddressTransformer()
	salesTrans := transformers.NewSalesTransformer()
	compTrans := transformers.NewComparableTransformer()
	marketTrans := transformers.NewMarketTransformer()

	// validators
	responseValidator := validators.NewResponseValidator()

	// provider client
	providerClient := propertydata.NewClient(
		a.Config.Provider.BaseURL,
		a.Config.Provider.ClientID,
		a.Config.Provider.ClientSecret,
	)
	fetcher := services.NewProviderFetcher(providerClient, attrTrans, salesTrans, marketTrans)

	// services
	assembler := services.NewAssemblerService(attrTrans, compTrans, marketTrans)
	dataService := services.NewPropertyDataService(dataRepo, dataCache, fetcher, assembler, compTrans, marketTrans, addrTrans)
	batchService := services.NewBatchService(fetcher, assembler)

	// handlers
	a.PropertyDataHandler = handlers.NewPropertyDataHandler(dataService, batchService, responseValidator)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	database.CloseDB()
	cache.CloseRedis()
}
