// Package main Go-Shop API
//
// REST API for the go-shop e-commerce backend: orders with concurrent
// stock reservation, payment types and product reviews.
//
//	@title			Go-Shop API
//	@version		1.0
//	@description	REST API for the go-shop e-commerce backend
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.email	support@example.com
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//	@schemes	http https
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "go-shop/docs/swagger"
	ordersadapters "go-shop/internal/orders/adapters"
	ordersapp "go-shop/internal/orders/application"
	ordershttp "go-shop/internal/orders/infrastructure"
	ordersports "go-shop/internal/orders/ports"
	paymentsadapters "go-shop/internal/payments/adapters"
	paymentsapp "go-shop/internal/payments/application"
	paymentshttp "go-shop/internal/payments/infrastructure"
	reviewsadapters "go-shop/internal/reviews/adapters"
	reviewsapp "go-shop/internal/reviews/application"
	reviewshttp "go-shop/internal/reviews/infrastructure"
	"go-shop/pkg/config"
	"go-shop/pkg/db"
	"go-shop/pkg/logger"
	"go-shop/pkg/middleware"
	"go-shop/pkg/rabbitmq"
	pkgtls "go-shop/pkg/tls"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	log.Info("starting " + cfg.ServiceName)

	// Connect to database
	database, err := db.NewConnection(db.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		Timeout:  cfg.DBTimeout,
	})
	if err != nil {
		log.Fatal("failed to connect to database: " + err.Error())
	}
	log.Info("connected to database")

	// Repositories and adapters
	orderRepo := ordersadapters.NewPostgresOrderRepository(database)
	stockLedger := ordersadapters.NewGormStockLedger(database)
	paymentReader := ordersadapters.NewGormPaymentTypeReader(database)
	paymentTypeRepo := paymentsadapters.NewPostgresPaymentTypeRepository(database)
	reviewRepo := reviewsadapters.NewPostgresReviewRepository(database)

	// Run migrations
	for _, migrate := range []func() error{
		paymentTypeRepo.Migrate,
		stockLedger.Migrate,
		orderRepo.Migrate,
		reviewRepo.Migrate,
	} {
		if err := migrate(); err != nil {
			log.Fatal("failed to run migrations: " + err.Error())
		}
	}
	log.Info("database migrations applied")

	// RabbitMQ is optional: orders still flow when the broker is down,
	// notification events are simply not published.
	var publisher ordersports.EventPublisher
	conn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
	if err != nil {
		log.Warn("rabbitmq unavailable, order events disabled: " + err.Error())
	} else {
		defer conn.Close()
		p, err := ordersadapters.NewRabbitMQPublisher(conn, log)
		if err != nil {
			log.Warn("failed to set up event publisher, order events disabled: " + err.Error())
		} else {
			publisher = p
		}
	}

	// Services
	orderService := ordersapp.NewOrderService(orderRepo, stockLedger, paymentReader, publisher, log)
	paymentTypeService := paymentsapp.NewPaymentTypeService(paymentTypeRepo, log)
	reviewService := reviewsapp.NewReviewService(reviewRepo, log)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())
	router.Use(middleware.Identity())

	// Register API routes
	api := router.Group("/api/v1")
	ordershttp.NewHTTPHandler(orderService).RegisterRoutes(api)
	paymentshttp.NewHTTPHandler(paymentTypeService).RegisterRoutes(api)
	reviewshttp.NewHTTPHandler(reviewService).RegisterRoutes(api)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Root redirect to Swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})

	// Start server
	if cfg.TLSEnabled {
		startHTTPSServer(cfg, log, router, ctx)
	} else {
		startHTTPServer(cfg, log, router, ctx)
	}
}

func startHTTPServer(cfg *config.Config, log *logger.Logger, router *gin.Engine, ctx context.Context) {
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTP server listening on http://localhost:" + cfg.HTTPPort)
		log.Info("Swagger UI: http://localhost:" + cfg.HTTPPort + "/swagger/index.html")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	waitForShutdown(server, log, ctx)
}

func startHTTPSServer(cfg *config.Config, log *logger.Logger, router *gin.Engine, ctx context.Context) {
	tlsConfig, err := pkgtls.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
	if err != nil {
		log.Fatal("failed to load TLS config: " + err.Error())
	}

	server := &http.Server{
		Addr:         ":" + cfg.HTTPSPort,
		Handler:      router,
		TLSConfig:    tlsConfig,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTPS server listening on https://localhost:" + cfg.HTTPSPort)
		log.Info("Swagger UI: https://localhost:" + cfg.HTTPSPort + "/swagger/index.html")
		if err := server.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTPS server error: " + err.Error())
		}
	}()

	waitForShutdown(server, log, ctx)
}

func waitForShutdown(server *http.Server, log *logger.Logger, ctx context.Context) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
