// Package http implements the REST surface of the SOLID examples application.
// The endpoints are the Go analog of the original UI entry points: each
// handler invokes one domain operation.
package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alem-hub/solid-go/internal/domain/logging"
	"github.com/alem-hub/solid-go/internal/domain/notification"
	"github.com/alem-hub/solid-go/internal/domain/pricing"
	"github.com/alem-hub/solid-go/internal/domain/report"
	"github.com/alem-hub/solid-go/internal/domain/student"
	"github.com/alem-hub/solid-go/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// SERVER CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config contains HTTP server configuration.
type Config struct {
	// Host - address to bind (default: "0.0.0.0").
	Host string

	// Port - port to listen on (default: 8080).
	Port int

	// ReadTimeout - maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout - maximum duration for writing the response.
	WriteTimeout time.Duration

	// IdleTimeout - maximum duration for idle connections.
	IdleTimeout time.Duration

	// MaxHeaderBytes - maximum size of request headers.
	MaxHeaderBytes int
}

// DefaultConfig returns default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8080,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}
}

// Address returns the server address string.
func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ══════════════════════════════════════════════════════════════════════════════
// DEPENDENCIES
// ══════════════════════════════════════════════════════════════════════════════

// Dependencies contains all dependencies required by HTTP handlers.
// Everything is injected; the server never constructs domain objects itself.
type Dependencies struct {
	// Roster (single responsibility example)
	Roster *student.Service

	// Pricing (open/closed example)
	Inventory *pricing.InventoryService

	// DefaultPercent is the percent used by the "percent" strategy when the
	// request does not carry one.
	DefaultPercent float64

	// Notification channels by type (Liskov substitution example)
	Channels map[notification.ChannelType]notification.Channel

	// Reports (interface segregation example)
	Summary report.Generator
	Full    report.PDFGenerator

	// Recorder (dependency inversion example)
	Recorder *logging.Recorder

	// Logger
	Logger *logger.Logger

	// HealthCheck reports backing-store health; nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

// ══════════════════════════════════════════════════════════════════════════════
// SERVER
// ══════════════════════════════════════════════════════════════════════════════

// Server represents the HTTP server.
type Server struct {
	config     Config
	deps       Dependencies
	httpServer *http.Server
	router     *http.ServeMux
	logger     *logger.Logger

	mu        sync.RWMutex
	running   bool
	startedAt time.Time
}

// NewServer creates a new HTTP server with the given configuration and dependencies.
func NewServer(config Config, deps Dependencies) *Server {
	s := &Server{
		config: config,
		deps:   deps,
		router: http.NewServeMux(),
		logger: deps.Logger,
	}

	if s.logger == nil {
		s.logger = logger.Default()
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           config.Address(),
		Handler:        s.buildMiddlewareChain(s.router),
		ReadTimeout:    config.ReadTimeout,
		WriteTimeout:   config.WriteTimeout,
		IdleTimeout:    config.IdleTimeout,
		MaxHeaderBytes: config.MaxHeaderBytes,
	}

	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health & status
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /", s.handleRoot)

	// Roster
	s.router.HandleFunc("POST /api/v1/students", s.handleAddStudent)
	s.router.HandleFunc("GET /api/v1/students", s.handleListStudents)
	s.router.HandleFunc("DELETE /api/v1/students/{index}", s.handleDeleteStudent)

	// Pricing
	s.router.HandleFunc("GET /api/v1/quote", s.handleQuote)

	// Notifications
	s.router.HandleFunc("POST /api/v1/notify", s.handleNotify)

	// Reports
	s.router.HandleFunc("GET /api/v1/reports/summary", s.handleSummaryReport)
	s.router.HandleFunc("GET /api/v1/reports/full", s.handleFullReport)
	s.router.HandleFunc("GET /api/v1/reports/full.pdf", s.handleFullReportPDF)

	// Recorder
	s.router.HandleFunc("POST /api/v1/log", s.handleRecord)
}

// Handler returns the server's root handler, wrapped in middleware.
// Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. Blocks until the server stops.
func (s *Server) Start() error {
	s.mu.Lock()
	s.running = true
	s.startedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info("http server starting", logger.String("addr", s.config.Address()))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Uptime returns how long the server has been running.
func (s *Server) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running {
		return 0
	}
	return time.Since(s.startedAt)
}
