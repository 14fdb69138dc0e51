package window

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/taupy/internal/infrastructure/config"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/monitoring"
)

// State represents the window lifecycle state
type State int

const (
	StateInitializing State = iota
	StateRunning
	StateClosing
	StateTerminated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

var stateNames = []string{
	StateInitializing.String(),
	StateRunning.String(),
	StateClosing.String(),
	StateTerminated.String(),
}

// Settings configures optional Host behavior
type Settings struct {
	// OnStateChange is called after every transition, on the transitioning goroutine
	OnStateChange func(from, to State)
	// Metrics receives state and uptime updates when set
	Metrics *monitoring.Metrics
}

// Host owns one window for the lifetime of Run.
type Host struct {
	cfg      config.AppConfig
	factory  SurfaceFactory
	logger   *logging.Logger
	settings Settings

	mu    sync.Mutex
	state State
}

// NewHost creates a host for cfg. Nothing native is created until Run.
func NewHost(cfg config.AppConfig, factory SurfaceFactory, logger *logging.Logger, settings Settings) *Host {
	return &Host{
		cfg:      cfg,
		factory:  factory,
		logger:   logger.Component("window"),
		settings: settings,
		state:    StateInitializing,
	}
}

// State returns the current lifecycle state.
func (h *Host) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Run creates the window, loads the configured URL and blocks in the event
// loop until the window is closed or ctx is cancelled. It must be called on
// the goroutine locked to the main OS thread. A Host runs at most once.
func (h *Host) Run(ctx context.Context) error {
	if s := h.State(); s != StateInitializing {
		return fmt.Errorf("window host already %s", s)
	}

	surface, err := h.factory(SurfaceOptions{Debug: h.cfg.OpenDevtools})
	if err != nil {
		h.transition(StateTerminated)
		return fmt.Errorf("create window: %w", err)
	}
	if surface == nil {
		h.transition(StateTerminated)
		return fmt.Errorf("create window: %w", ErrSurfaceUnavailable)
	}

	h.warnUnsupported()
	h.apply(surface)

	url := h.cfg.URL()
	surface.Navigate(url)
	h.logger.Info("Window ready",
		zap.String("title", h.cfg.Title),
		zap.String("url", url),
		zap.Uint32("width", h.cfg.Width),
		zap.Uint32("height", h.cfg.Height),
	)

	stop := make(chan struct{})
	var watcher sync.WaitGroup
	watcher.Add(1)
	go func() {
		defer watcher.Done()
		select {
		case <-ctx.Done():
			h.logger.Info("Closing window", zap.Error(ctx.Err()))
			surface.Dispatch(surface.Terminate)
		case <-stop:
		}
	}()

	h.transition(StateRunning)
	started := time.Now()
	surface.Run()
	uptime := time.Since(started)

	close(stop)
	watcher.Wait()

	h.transition(StateClosing)
	surface.Destroy()
	if h.settings.Metrics != nil {
		h.settings.Metrics.SetWindowUptime(uptime)
	}
	h.transition(StateTerminated)

	h.logger.Info("Window closed", zap.Duration("uptime", uptime))
	return nil
}

// apply sets title and geometry. Bounds go first so the final HintNone call
// leaves the window at its configured size.
func (h *Host) apply(s Surface) {
	s.SetTitle(h.cfg.Title)

	width, height := int(h.cfg.Width), int(h.cfg.Height)
	if !h.cfg.Resizable {
		s.SetSize(width, height, HintFixed)
		return
	}

	if h.cfg.MinWidth.IsSet() || h.cfg.MinHeight.IsSet() {
		minW, _ := h.cfg.MinWidth.Get()
		minH, _ := h.cfg.MinHeight.Get()
		s.SetSize(int(minW), int(minH), HintMin)
	}
	if h.cfg.MaxWidth.IsSet() || h.cfg.MaxHeight.IsSet() {
		s.SetSize(boundOrMax(h.cfg.MaxWidth), boundOrMax(h.cfg.MaxHeight), HintMax)
	}
	s.SetSize(width, height, HintNone)
}

func (h *Host) warnUnsupported() {
	unsupported := map[string]bool{
		config.FlagFrameless:   h.cfg.Frameless,
		config.FlagTransparent: h.cfg.Transparent,
		config.FlagAlwaysOnTop: h.cfg.AlwaysOnTop,
	}
	for _, name := range []string{config.FlagFrameless, config.FlagTransparent, config.FlagAlwaysOnTop} {
		if unsupported[name] {
			h.logger.Warn("Window option not supported by the web surface, ignoring", zap.String("option", name))
		}
	}
}

func (h *Host) transition(to State) {
	h.mu.Lock()
	from := h.state
	if to <= from {
		h.mu.Unlock()
		return
	}
	h.state = to
	h.mu.Unlock()

	h.logger.Debug("Window state changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	if h.settings.Metrics != nil {
		h.settings.Metrics.SetWindowState(to.String(), stateNames)
	}
	if h.settings.OnStateChange != nil {
		h.settings.OnStateChange(from, to)
	}
}

// boundOrMax keeps an unset axis effectively unbounded.
func boundOrMax(b config.Bound) int {
	if v, ok := b.Get(); ok {
		return int(v)
	}
	return math.MaxInt32
}
