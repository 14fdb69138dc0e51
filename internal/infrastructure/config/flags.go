package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

// Flag names for argument mode.
const (
	FlagTitle        = "title"
	FlagPort         = "port"
	FlagWidth        = "width"
	FlagHeight       = "height"
	FlagDist         = "dist"
	FlagExternal     = "external"
	FlagFrameless    = "frameless"
	FlagTransparent  = "transparent"
	FlagAlwaysOnTop  = "always-on-top"
	FlagResizable    = "resizable"
	FlagMinWidth     = "min-width"
	FlagMinHeight    = "min-height"
	FlagMaxWidth     = "max-width"
	FlagMaxHeight    = "max-height"
	FlagOpenDevtools = "open-devtools"
	FlagConfig       = "config"
	FlagLogLevel     = "log-level"
	FlagDev          = "dev"
)

// Flags holds argument-mode values bound onto a pflag.FlagSet.
type Flags struct {
	fs          *pflag.FlagSet
	app         AppConfig
	logging     LogConfig
	projectPath string
}

// BindFlags registers every window, project and logging flag on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.app.Title, FlagTitle, DefaultTitle, "Window title")
	fs.Uint16Var(&f.app.Port, FlagPort, DefaultPort, "Port served by the asset server and loaded by the window")
	fs.Uint32Var(&f.app.Width, FlagWidth, DefaultWidth, "Window width in logical pixels")
	fs.Uint32Var(&f.app.Height, FlagHeight, DefaultHeight, "Window height in logical pixels")
	fs.StringVar(&f.app.Dist, FlagDist, "", "Directory of web assets (default <cwd>/dist)")
	fs.BoolVar(&f.app.External, FlagExternal, false, "Do not start the asset server; something else serves --port")
	fs.BoolVar(&f.app.Frameless, FlagFrameless, false, "Create the window without decorations")
	fs.BoolVar(&f.app.Transparent, FlagTransparent, false, "Create a transparent window")
	fs.BoolVar(&f.app.AlwaysOnTop, FlagAlwaysOnTop, false, "Keep the window above others")
	fs.BoolVar(&f.app.Resizable, FlagResizable, DefaultResizable, "Allow the window to be resized (use --resizable=false to lock)")
	fs.Var((*boundFlag)(&f.app.MinWidth), FlagMinWidth, "Minimum window width")
	fs.Var((*boundFlag)(&f.app.MinHeight), FlagMinHeight, "Minimum window height")
	fs.Var((*boundFlag)(&f.app.MaxWidth), FlagMaxWidth, "Maximum window width")
	fs.Var((*boundFlag)(&f.app.MaxHeight), FlagMaxHeight, "Maximum window height")
	fs.BoolVar(&f.app.OpenDevtools, FlagOpenDevtools, false, "Enable the web inspector")

	fs.StringVar(&f.projectPath, FlagConfig, "", "Path to a taupy.toml project file (default ./taupy.toml when present)")
	fs.StringVar(&f.logging.Level, FlagLogLevel, DefaultLogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&f.logging.Development, FlagDev, false, "Human readable console logs")

	return f
}

// Resolve returns the configuration after the flag set has been parsed.
// Project file values fill every window flag that was not given explicitly.
func (f *Flags) Resolve() (Config, error) {
	cfg := Config{App: f.app, Logging: f.logging}

	path, required := f.projectPath, true
	if path == "" {
		path, required = paths.ProjectFile, false
	}

	project, err := LoadProject(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}

	if err := project.Apply(&cfg.App, f.fs.Changed); err != nil {
		return Config{}, fmt.Errorf("apply project %s: %w", path, err)
	}
	return cfg, nil
}

// boundFlag adapts Bound to pflag.Value.
type boundFlag Bound

func (b *boundFlag) String() string {
	return Bound(*b).String()
}

func (b *boundFlag) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("expected an unsigned 32-bit integer, got %q", v)
	}
	*b = boundFlag(BoundOf(uint32(n)))
	return nil
}

func (b *boundFlag) Type() string {
	return "uint32"
}
