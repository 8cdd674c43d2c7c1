package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"billbook/internal/config"
	"billbook/internal/database"
	"billbook/internal/handlers"
	"billbook/internal/logger"
	"billbook/internal/middleware"
	"billbook/internal/services"
	"billbook/internal/validator"

	_ "billbook/internal/docs" // Import swagger docs
)

// @title           Billbook API
// @version         1.0
// @description     Billbook keeps a customer register, prices taxed sales, issues sequential invoice numbers and renders PDF invoices.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared key required on write endpoints when API_KEY is configured.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	auditService := services.NewAuditService(db)
	customerService := services.NewCustomerService(db)
	recordService := services.NewRecordService(db, customerService)
	invoiceService := services.NewInvoiceService(appConfig.CurrencySymbol)
	exportService := services.NewExportService()

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(customerService, auditService)
	recordHandler := handlers.NewRecordHandler(recordService, invoiceService, exportService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(corsConfig(appConfig.CORSOrigins)))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(router.Group("/api/v1"), customerHandler, recordHandler, appConfig.APIKey)

	if appConfig.APIKey == "" {
		log.Warn("API_KEY is not set; write endpoints are open")
	}
	log.Infow("Starting billbook server", "port", appConfig.Port, "db_driver", dbConfig.Driver)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
