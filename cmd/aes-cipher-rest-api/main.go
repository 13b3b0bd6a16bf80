// cmd/aes-cipher-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "aes_cipher_service/internal/api/rest/v1"
	"aes_cipher_service/internal/app"
	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/domain/keys"
	"aes_cipher_service/internal/infrastructure/cryptography"
	"aes_cipher_service/internal/infrastructure/persistence"
	"aes_cipher_service/internal/infrastructure/persistence/models"
	"aes_cipher_service/internal/pkg/config"
	"aes_cipher_service/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	services, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	cipherSession       ciphers.CipherSessionService
	cipherKeyGeneration keys.CipherKeyGenerationService
	cipherKeyDownload   keys.CipherKeyDownloadService
	cipherKeyMetadata   keys.CipherKeyMetadataService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.CipherKeyModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	cipherKeyRepo, err := persistence.NewGormCipherKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher key repository: %w", err)
	}

	// Initialize the AES service backing sessions and key generation
	aesService, err := cryptography.NewAESService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(cipherKeyRepo, aesService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return services, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.cipherSession,
		services.cipherKeyGeneration,
		services.cipherKeyDownload,
		services.cipherKeyMetadata,
	)

	// Serve OpenAPI spec (replaces Swagger)
	r.GET("/api/v1/acs/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/aes-cipher.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal %v, initiating graceful shutdown", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	keyRepo keys.CipherKeyRepository,
	aesService ciphers.AESService,
	log logger.Logger,
) (*appServices, error) {
	cipherSessionService, err := app.NewCipherSessionService(aesService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher session service: %w", err)
	}

	cipherKeyGenerationService, err := app.NewCipherKeyGenerationService(keyRepo, aesService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher key generation service: %w", err)
	}

	cipherKeyDownloadService, err := app.NewCipherKeyDownloadService(keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher key download service: %w", err)
	}

	cipherKeyMetadataService, err := app.NewCipherKeyMetadataService(keyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher key metadata service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		cipherSession:       cipherSessionService,
		cipherKeyGeneration: cipherKeyGenerationService,
		cipherKeyDownload:   cipherKeyDownloadService,
		cipherKeyMetadata:   cipherKeyMetadataService,
	}, nil
}
