package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/ridwanfathin/invoice-generator-service/docs"
	"github.com/ridwanfathin/invoice-generator-service/internal/config"
	"github.com/ridwanfathin/invoice-generator-service/internal/database"
	"github.com/ridwanfathin/invoice-generator-service/internal/handler"
	"github.com/ridwanfathin/invoice-generator-service/internal/pdf"
	"github.com/ridwanfathin/invoice-generator-service/internal/repository"
	"github.com/ridwanfathin/invoice-generator-service/internal/server"
	"github.com/ridwanfathin/invoice-generator-service/internal/service"
)

// @title Invoice Generator Service API
// @version 1.0
// @description Creates invoices, stores them durably and renders printable PDF documents.
// @BasePath /
func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// Load configuration
	logger.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Open the storage connection. It lives for the whole process and is
	// released through the server shutdown hook, never a finalizer.
	logger.Println("Connecting to database...")
	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize repository
	repo := repository.NewPostgresInvoiceRepository(db)

	// Create the renderer and the invoice service
	renderer := pdf.NewRenderer(cfg.Issuer)
	invoiceService := service.NewInvoiceService(repo, renderer, cfg.OutputDir, cfg.LogoPath, logger)

	// Create handler
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// Create and configure server
	logger.Println("Configuring server...")
	appServer := server.NewServer(cfg, logger, invoiceHandler)
	appServer.OnShutdown(func() {
		logger.Println("Closing database connection...")
		db.Close()
	})

	// Start server (blocking call)
	logger.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		db.Close()
		logger.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server shutdown complete")
}
