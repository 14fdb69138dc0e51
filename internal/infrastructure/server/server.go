package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	handlers "github.com/GriffinCanCode/taupy/internal/api/http"
	"github.com/GriffinCanCode/taupy/internal/api/middleware"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/config"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/monitoring"
)

// Config is the immutable binding of one asset server.
type Config struct {
	Root  string
	Host  string
	Port  uint16
	Debug bool
}

// FromApp derives the server binding from the resolved configuration.
func FromApp(app config.AppConfig, root string, debug bool) Config {
	return Config{Root: root, Host: config.ListenHost, Port: app.Port, Debug: debug}
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

// Server is the loopback asset server. Start binds synchronously and serves
// in the background until Shutdown.
type Server struct {
	config  Config
	router  *gin.Engine
	http    *http.Server
	logger  *logging.Logger
	metrics *monitoring.Metrics

	listener net.Listener
	done     chan struct{}

	mu  sync.Mutex
	err error
}

// New creates a server. metrics may be nil.
func New(cfg Config, logger *logging.Logger, metrics *monitoring.Metrics) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	logger = logger.Component("assets")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Sequential())
	router.Use(middleware.AccessLog(logger))
	if metrics != nil {
		router.Use(monitoring.Middleware(metrics))
	}

	h := handlers.NewHandlers(cfg.Root, logger)
	router.GET("/*filepath", h.ServeAsset)
	router.HEAD("/*filepath", h.ServeAsset)
	router.NoRoute(h.NotFound)

	return &Server{
		config:  cfg,
		router:  router,
		logger:  logger,
		metrics: metrics,
		http: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		done: make(chan struct{}),
	}
}

// Handler returns the request handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds the listening socket and begins serving in a goroutine.
// A bind failure is returned immediately.
func (s *Server) Start() error {
	addr := s.config.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind asset server %s: %w", addr, err)
	}
	s.listener = ln

	s.logger.Info("Starting asset server",
		zap.String("addr", ln.Addr().String()),
		zap.String("root", s.config.Root),
	)

	go func() {
		defer close(s.done)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Asset server stopped", zap.Error(err))
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
		}
	}()
	return nil
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Done is closed once the serve loop has returned.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Err reports why the serve loop stopped, nil after a clean shutdown.
func (s *Server) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Shutdown stops accepting connections, waits for in-flight requests and the
// serve loop, bounded by ctx. Calling it before Start is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.listener == nil {
		return nil
	}
	s.logger.Info("Shutting down asset server...")

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown asset server: %w", err)
	}

	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
