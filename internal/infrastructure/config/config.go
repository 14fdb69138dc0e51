package config

import (
	"net"
	"strconv"
)

// Literal defaults shared by argument and environment mode.
const (
	DefaultTitle     = "TauPy App"
	DefaultPort      = uint16(8000)
	DefaultWidth     = uint32(800)
	DefaultHeight    = uint32(600)
	DefaultResizable = true

	DefaultLogLevel = "info"

	// ListenHost is the interface the asset server binds to.
	ListenHost = "0.0.0.0"
	// LoopbackHost is the host the webview navigates to.
	LoopbackHost = "localhost"
)

// Config is the full process configuration built once at the process boundary.
type Config struct {
	App     AppConfig
	Logging LogConfig
}

// AppConfig parameterizes the asset server and the window host. It is passed
// by value; no component writes back to it.
type AppConfig struct {
	Title  string
	Port   uint16
	Width  uint32
	Height uint32

	// Dist overrides the dist root when non-empty.
	Dist string

	// External skips the asset server; something else serves Port.
	External bool

	Frameless   bool
	Transparent bool
	AlwaysOnTop bool
	Resizable   bool

	MinWidth  Bound
	MinHeight Bound
	MaxWidth  Bound
	MaxHeight Bound

	OpenDevtools bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string
	Development bool
}

// Bound is an optional window dimension in logical pixels.
type Bound struct {
	value uint32
	set   bool
}

// BoundOf returns a set bound.
func BoundOf(v uint32) Bound {
	return Bound{value: v, set: true}
}

// Get returns the bound and whether it is set.
func (b Bound) Get() (uint32, bool) {
	return b.value, b.set
}

// IsSet reports whether the bound carries a value.
func (b Bound) IsSet() bool {
	return b.set
}

// String renders the bound, empty when unset.
func (b Bound) String() string {
	if !b.set {
		return ""
	}
	return strconv.FormatUint(uint64(b.value), 10)
}

// Default returns the literal default configuration.
func Default() Config {
	return Config{
		App:     DefaultApp(),
		Logging: LogConfig{Level: DefaultLogLevel},
	}
}

// DefaultApp returns the literal default window configuration.
func DefaultApp() AppConfig {
	return AppConfig{
		Title:     DefaultTitle,
		Port:      DefaultPort,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Resizable: DefaultResizable,
	}
}

// ListenAddr is the address the asset server binds.
func (c AppConfig) ListenAddr() string {
	return net.JoinHostPort(ListenHost, strconv.Itoa(int(c.Port)))
}

// URL is the address the webview loads. It always carries the same port as
// ListenAddr.
func (c AppConfig) URL() string {
	return "http://" + net.JoinHostPort(LoopbackHost, strconv.Itoa(int(c.Port)))
}
