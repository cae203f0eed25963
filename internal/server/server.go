package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ridwanfathin/invoice-generator-service/internal/config"
	"github.com/ridwanfathin/invoice-generator-service/internal/handler"
	"github.com/ridwanfathin/invoice-generator-service/internal/middleware"
)

// Server represents the HTTP server exposing the invoice service.
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     *log.Logger

	// onShutdown hooks run after the HTTP server has stopped, in order.
	// Used to release the storage connection deterministically.
	onShutdown []func()
}

// NewServer creates and configures a new server instance.
func NewServer(cfg *config.Config, logger *log.Logger, invoiceHandler *handler.InvoiceHandler) *Server {
	if logger == nil {
		logger = log.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(logger))

	server := &Server{
		router: router,
		config: cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes()
	invoiceHandler.RegisterRoutes(router)

	return server
}

// OnShutdown registers a hook executed after the HTTP server stops.
func (s *Server) OnShutdown(fn func()) {
	s.onShutdown = append(s.onShutdown, fn)
}

// GetRouter returns the gin router instance.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures the non-domain routes.
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})
}

// Start begins listening for requests and handles graceful shutdown on
// SIGINT/SIGTERM. Shutdown hooks run after the listener has drained.
func (s *Server) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Printf("Server listening on port %d", s.config.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	s.logger.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.runShutdownHooks()
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.runShutdownHooks()
	s.logger.Println("Server exited gracefully")
	return nil
}

func (s *Server) runShutdownHooks() {
	for _, fn := range s.onShutdown {
		fn()
	}
}
