package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/taupy/internal/domain/window"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/config"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/server"
	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

// DefaultShutdownTimeout bounds how long the asset server may take to drain
// after the window closes.
const DefaultShutdownTimeout = 5 * time.Second

// Options wires one launch.
type Options struct {
	Config  config.Config
	Surface window.SurfaceFactory
	Logger  *logging.Logger
	Metrics *monitoring.Metrics

	ShutdownTimeout time.Duration
	OnStateChange   func(from, to window.State)
}

// Run resolves the dist root, starts the asset server unless the frontend
// is external, and blocks in the window event loop. When the window closes
// the server is shut down before Run returns. A bind failure aborts before
// any window is created.
func Run(ctx context.Context, opts Options) error {
	if opts.Surface == nil {
		return fmt.Errorf("launch: %w", window.ErrSurfaceUnavailable)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	cfg := opts.Config

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var srv *server.Server
	if cfg.App.External {
		logger.Info("Using external frontend, asset server not started", zap.String("url", cfg.App.URL()))
	} else {
		root, err := paths.ResolveDist(cfg.App.Dist)
		if err != nil {
			return fmt.Errorf("launch: %w", err)
		}
		if _, err := os.Stat(paths.IndexPath(root)); err != nil {
			logger.Warn("Dist root has no index.html", zap.String("root", root), zap.Error(err))
		}

		srv = server.New(server.FromApp(cfg.App, root, cfg.Logging.Development), logger, metrics)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("launch: %w", err)
		}
		go watchServer(ctx, srv, logger, cancel)
	}

	host := window.NewHost(cfg.App, opts.Surface, logger, window.Settings{
		OnStateChange: opts.OnStateChange,
		Metrics:       metrics,
	})
	runErr := host.Run(ctx)

	var stopErr error
	if srv != nil {
		shutdownCtx, done := context.WithTimeout(context.Background(), timeout)
		stopErr = srv.Shutdown(shutdownCtx)
		done()
	}

	s := metrics.Snapshot()
	logger.Info("Session finished",
		zap.Int64("requests", s.TotalRequests),
		zap.Int64("not_found", s.NotFound),
		zap.Int64("server_errors", s.ServerErrors),
		zap.Int64("bytes", s.BytesServed),
		zap.Duration("avg_latency", s.AverageDuration()),
	)

	return errors.Join(runErr, stopErr)
}

// watchServer closes the window if the serve loop dies on its own.
func watchServer(ctx context.Context, srv *server.Server, logger *logging.Logger, cancel context.CancelFunc) {
	select {
	case <-srv.Done():
		if err := srv.Err(); err != nil {
			logger.Error("Asset server failed, closing window", zap.Error(err))
			cancel()
		}
	case <-ctx.Done():
	}
}
