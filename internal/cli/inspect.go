package cli

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/taupy/internal/domain/assets"
	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newInspectCommand() *cobra.Command {
	var dist, pattern, format string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the files the asset server would serve",
		Long: `Walks the dist directory and prints every file with its size and detected
MIME type, the total size, and whether index.html is present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatYAML && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatYAML, formatJSON)
			}

			root, err := paths.ResolveDist(dist)
			if err != nil {
				return err
			}
			manifest, err := assets.Scan(cmd.Context(), root, pattern)
			if err != nil {
				return err
			}

			out, err := encodeManifest(manifest, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&dist, "dist", "", "Directory of web assets (default <cwd>/dist)")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Only list paths matching this glob, e.g. '**/*.js'")
	cmd.Flags().StringVarP(&format, "format", "o", formatYAML, "Output format: yaml or json")
	return cmd
}

func encodeManifest(m assets.Manifest, format string) ([]byte, error) {
	if m.Entries == nil {
		m.Entries = []assets.Entry{}
	}
	if format == formatJSON {
		data, err := sonic.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}
