package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"skillserve/internal/adapter/api"
	"skillserve/internal/adapter/api/handler"
	apimiddleware "skillserve/internal/adapter/api/middleware"
	"skillserve/internal/adapter/api/router"
	"skillserve/internal/adapter/repository"
	"skillserve/internal/infrastructure/token"
	"skillserve/internal/usecase"
	"skillserve/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Credentials from environment variable (for production), falling back
	// to a file path for local development; otherwise application default.
	if credentialsJSON := os.Getenv("STORE_CREDENTIALS_JSON"); credentialsJSON != "" {
		log.Printf("Using store credentials from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else if credentialsFile := os.Getenv("STORE_CREDENTIALS_FILE"); credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); os.IsNotExist(err) {
			log.Fatalf("Credentials file does not exist: %s", credentialsFile)
		}
		log.Printf("Using store credentials from file: %s", credentialsFile)
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.StoreProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	serviceRepo := repository.NewFirestoreServiceRepository(firestoreClient)
	bookingRepo := repository.NewFirestoreBookingRepository(firestoreClient)

	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)

	authUseCase := usecase.NewAuthUseCase(tokenService)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo)

	handler.Setup(authUseCase, serviceUseCase, bookingUseCase, tokenService.Expiry(), cfg.IsProduction())

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenService)

	router.Setup(e, authMiddleware)

	go func() {
		log.Printf("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Block until a shutdown signal, then drain in-flight requests before the
	// deferred client close releases the store connection.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Log and fall through on a drain failure; the deferred client close
	// still has to run.
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
