package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/taupy/internal/app"
	"github.com/GriffinCanCode/taupy/internal/domain/window"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/config"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
)

// launch is swapped in tests.
var launch = app.Run

// NewRootCommand builds the taupy command tree. surface creates the native
// window for the root command.
func NewRootCommand(surface window.SurfaceFactory) *cobra.Command {
	var flags *config.Flags

	root := &cobra.Command{
		Use:   "taupy",
		Short: "Open a web frontend in a native window",
		Long: `Serves the dist directory on http://localhost:<port> and shows it in a
native window until the window is closed.

Flags override values from taupy.toml, which override the built-in defaults.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.Resolve()
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting TauPy",
				zap.String("title", cfg.App.Title),
				zap.Uint16("port", cfg.App.Port),
				zap.Bool("external", cfg.App.External),
			)
			return launch(ctx, app.Options{
				Config:  cfg,
				Surface: surface,
				Logger:  logger,
			})
		},
	}
	flags = config.BindFlags(root.Flags())

	root.AddCommand(newInspectCommand(), newBundleCommand())
	return root
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute(ctx context.Context, surface window.SurfaceFactory) int {
	root := NewRootCommand(surface)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "taupy:", err)
		return 1
	}
	return 0
}

func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	return logging.New(logging.Config{
		Level:       cfg.Level,
		Development: cfg.Development,
	})
}
