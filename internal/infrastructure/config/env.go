package config

import (
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Environment prefixes. Keys are <prefix>_<NAME>, e.g. TAUPY_WINDOW_PORT.
const (
	WindowEnvPrefix = "TAUPY_WINDOW"
	LogEnvPrefix    = "TAUPY_LOG"
)

// windowEnv mirrors AppConfig for envconfig. Each field type swallows bad
// input so a single malformed variable never discards the others. Keys are
// derived from field names; an envconfig tag would also consult the bare
// name (PORT, TITLE) when the prefixed variable is unset.
type windowEnv struct {
	Title        textVar   `split_words:"true"`
	Port         portVar   `split_words:"true"`
	Width        sizeVar   `split_words:"true"`
	Height       sizeVar   `split_words:"true"`
	Dist         textVar   `split_words:"true"`
	External     switchVar `split_words:"true"`
	Frameless    switchVar `split_words:"true"`
	Transparent  switchVar `split_words:"true"`
	AlwaysOnTop  switchVar `split_words:"true"`
	Resizable    switchVar `split_words:"true"`
	MinWidth     boundVar  `split_words:"true"`
	MinHeight    boundVar  `split_words:"true"`
	MaxWidth     boundVar  `split_words:"true"`
	MaxHeight    boundVar  `split_words:"true"`
	OpenDevtools switchVar `split_words:"true"`
}

type logEnv struct {
	Level textVar   `split_words:"true"`
	Dev   switchVar `split_words:"true"`
}

// FromEnv builds the configuration from TAUPY_WINDOW_* and TAUPY_LOG_*
// variables. It never fails: anything missing or unparsable keeps its default.
func FromEnv() Config {
	def := Default()

	w := windowEnv{
		Title:     textVar(def.App.Title),
		Port:      portVar(def.App.Port),
		Width:     sizeVar(def.App.Width),
		Height:    sizeVar(def.App.Height),
		Resizable: switchVar(def.App.Resizable),
	}
	if err := envconfig.Process(WindowEnvPrefix, &w); err != nil {
		return def
	}

	l := logEnv{Level: textVar(def.Logging.Level)}
	if err := envconfig.Process(LogEnvPrefix, &l); err != nil {
		l = logEnv{Level: textVar(def.Logging.Level)}
	}

	return Config{
		App: AppConfig{
			Title:        string(w.Title),
			Port:         uint16(w.Port),
			Width:        uint32(w.Width),
			Height:       uint32(w.Height),
			Dist:         string(w.Dist),
			External:     bool(w.External),
			Frameless:    bool(w.Frameless),
			Transparent:  bool(w.Transparent),
			AlwaysOnTop:  bool(w.AlwaysOnTop),
			Resizable:    bool(w.Resizable),
			MinWidth:     Bound(w.MinWidth),
			MinHeight:    Bound(w.MinHeight),
			MaxWidth:     Bound(w.MaxWidth),
			MaxHeight:    Bound(w.MaxHeight),
			OpenDevtools: bool(w.OpenDevtools),
		},
		Logging: LogConfig{
			Level:       string(l.Level),
			Development: bool(l.Dev),
		},
	}
}

// ParseSwitch maps the accepted boolean spellings, case-insensitively.
// ok is false for anything outside the two synonym sets.
func ParseSwitch(v string) (value bool, ok bool) {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}

type textVar string

func (t *textVar) Decode(v string) error {
	if v != "" {
		*t = textVar(v)
	}
	return nil
}

type portVar uint16

func (p *portVar) Decode(v string) error {
	if n, err := strconv.ParseUint(v, 10, 16); err == nil {
		*p = portVar(n)
	}
	return nil
}

type sizeVar uint32

func (s *sizeVar) Decode(v string) error {
	if n, err := strconv.ParseUint(v, 10, 32); err == nil {
		*s = sizeVar(n)
	}
	return nil
}

type switchVar bool

func (s *switchVar) Decode(v string) error {
	if b, ok := ParseSwitch(v); ok {
		*s = switchVar(b)
	}
	return nil
}

type boundVar Bound

func (b *boundVar) Decode(v string) error {
	if n, err := strconv.ParseUint(v, 10, 32); err == nil {
		*b = boundVar(BoundOf(uint32(n)))
	}
	return nil
}
