// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GYRAG/beetkar-hub/api"
	"github.com/GYRAG/beetkar-hub/api/middleware"
	"github.com/GYRAG/beetkar-hub/internal/cache"
	"github.com/GYRAG/beetkar-hub/internal/config"
	"github.com/GYRAG/beetkar-hub/internal/database"
	"github.com/GYRAG/beetkar-hub/internal/monitoring"
	"github.com/GYRAG/beetkar-hub/internal/repository/postgres"
	"github.com/GYRAG/beetkar-hub/internal/retention"
	"github.com/GYRAG/beetkar-hub/internal/service"
	nuts "github.com/vaudience/go-nuts"
)

const databasePingTimeout = 5 * time.Second

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	service    *service.Service
	sweeper    *retention.Sweeper
	monitoring *monitoring.Service
	db         database.DB
	latest     *cache.LatestCache
	stopSweeps context.CancelFunc
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{config: cfg}
}

// Start wires storage, cache, retention and routes, then listens until a
// shutdown signal arrives.
func (s *Server) Start() error {
	s.db = initDB(s.config.Database)

	readings, err := postgres.NewReadingRepository(s.db)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to initialize reading repository: %v", err)
	}

	s.latest = cache.New(s.config.Redis)
	s.sweeper = retention.New(readings, s.config.Retention)
	s.service = service.New(readings, s.latest, s.sweeper)
	if err := s.service.Validate(); err != nil {
		nuts.L.Fatalf("[Server] Invalid service wiring: %v", err)
	}

	s.monitoring = monitoring.NewService()
	s.setupSweepHandlers()

	router := api.NewRouter(s.service)
	handler := middleware.CORS(s.config.CORS)(
		middleware.Recovery()(
			middleware.RequestLogger(router)))

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Background retention loop, independent of the request path
	sweepCtx, cancel := context.WithCancel(context.Background())
	s.stopSweeps = cancel
	go s.sweeper.Run(sweepCtx)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	s.stopSweeps()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.latest.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing cache: %v", err)
	}
	if err := s.db.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing database: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupSweepHandlers() {
	s.sweeper.OnSweep(func(deleted int64) {
		nuts.L.Infof("[Retention] Sweep removed %d readings past the horizon", deleted)
		s.monitoring.RecordEvent("retention_sweep", map[string]string{
			"deleted": fmt.Sprintf("%d", deleted),
		})
	})
}

func initDB(cfg config.PostgresConfig) database.DB {
	wrappedDB, err := database.NewPostgresDB(cfg)
	if err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to database: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), databasePingTimeout)
	defer cancel()
	if err := wrappedDB.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to ping database: %v", err)
	}
	return wrappedDB
}
