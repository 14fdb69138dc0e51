// Package config builds the single configuration value for the window host.
//
// Two construction modes, selected by the entry point:
//   - Argument mode (cmd/taupy): cobra/pflag flags, optionally layered over a
//     taupy.toml project file. A malformed flag or project file is fatal.
//   - Environment mode (cmd/lakeengine): TAUPY_WINDOW_* and TAUPY_LOG_*
//     variables read through envconfig. Nothing is fatal; a missing or
//     unparsable variable keeps its literal default.
//
// Booleans in environment mode accept 1/true/yes/on and 0/false/no/off in any
// case. Other spellings are treated as absent.
//
// Defaults:
//   - Title "TauPy App", Port 8000, Width 800, Height 600
//   - Resizable true, every other switch false
//   - Dist empty (resolved to <cwd>/dist by the launcher)
//   - Min/max bounds unset
//
// The resulting Config is passed by value. Only this package reads the
// environment or the argument vector.
//
// Example Usage:
//
//	cfg := config.FromEnv()
//	fmt.Println(cfg.App.URL()) // http://localhost:8000
package config
