package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/taupy/internal/bundle"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
)

func newBundleCommand() *cobra.Command {
	var opts bundle.Options

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Copy the WebView2 loader next to a Windows build",
		Long: `Finds WebView2Loader.dll for the target architecture among the build
artifacts, or in the fallback directory, and copies it into --out. A missing
loader is reported as a warning and does not fail the build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.NewDefault().Component("bundle")
			defer func() { _ = logger.Sync() }()

			res, err := bundle.Copy(opts)
			if errors.Is(err, bundle.ErrLoaderNotFound) {
				logger.Warn("WebView2Loader.dll not found; skipping copy",
					zap.String("build_dir", opts.BuildDir),
					zap.String("pattern", opts.Pattern()),
				)
				return nil
			}
			if err != nil {
				return err
			}

			if res.Fallback {
				logger.Warn("WebView2Loader.dll not found in build artifacts, used prebuilt copy",
					zap.String("source", res.Source),
				)
			}
			logger.Info("Copied loader",
				zap.String("source", res.Source),
				zap.String("destination", res.Destination),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BuildDir, "build-dir", "", "Directory holding webview2-com-sys* build artifacts")
	cmd.Flags().StringVar(&opts.FallbackDir, "fallback-dir", "utils", "Directory holding a prebuilt WebView2Loader.dll")
	cmd.Flags().StringVar(&opts.OutputDir, "out", ".", "Directory to copy the loader into")
	cmd.Flags().StringVar(&opts.Arch, "arch", "", "Target GOARCH (default the host architecture)")
	return cmd
}
