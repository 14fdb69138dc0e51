package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Project is the optional taupy.toml project file.
type Project struct {
	Window   ProjectWindow   `toml:"window"`
	Frontend ProjectFrontend `toml:"frontend"`
}

// ProjectWindow carries window settings; nil means "not present in the file".
type ProjectWindow struct {
	Title        *string `toml:"title"`
	Port         *uint16 `toml:"port"`
	Width        *uint32 `toml:"width"`
	Height       *uint32 `toml:"height"`
	Dist         *string `toml:"dist"`
	External     *bool   `toml:"external"`
	Frameless    *bool   `toml:"frameless"`
	Transparent  *bool   `toml:"transparent"`
	AlwaysOnTop  *bool   `toml:"always_on_top"`
	Resizable    *bool   `toml:"resizable"`
	MinWidth     *uint32 `toml:"min_width"`
	MinHeight    *uint32 `toml:"min_height"`
	MaxWidth     *uint32 `toml:"max_width"`
	MaxHeight    *uint32 `toml:"max_height"`
	OpenDevtools *bool   `toml:"open_devtools"`
}

// ProjectFrontend describes a frontend served by something other than the
// built-in asset server, typically a dev server.
type ProjectFrontend struct {
	ExternalHTTP string `toml:"external_http"`
}

// LoadProject reads and parses a project file. A missing file yields an error
// wrapping os.ErrNotExist.
func LoadProject(path string) (Project, error) {
	file, err := os.Open(path)
	if err != nil {
		return Project{}, fmt.Errorf("open project: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Project{}, fmt.Errorf("read project: %w", err)
	}

	var p Project
	if err := toml.Unmarshal(data, &p); err != nil {
		return Project{}, fmt.Errorf("parse project %s: %w", path, err)
	}
	return p, nil
}

// Apply copies present project values onto app, skipping every flag name for
// which explicit reports true.
func (p Project) Apply(app *AppConfig, explicit func(name string) bool) error {
	w := p.Window
	setString(&app.Title, w.Title, !explicit(FlagTitle))
	setValue(&app.Port, w.Port, !explicit(FlagPort))
	setValue(&app.Width, w.Width, !explicit(FlagWidth))
	setValue(&app.Height, w.Height, !explicit(FlagHeight))
	setString(&app.Dist, w.Dist, !explicit(FlagDist))
	setValue(&app.External, w.External, !explicit(FlagExternal))
	setValue(&app.Frameless, w.Frameless, !explicit(FlagFrameless))
	setValue(&app.Transparent, w.Transparent, !explicit(FlagTransparent))
	setValue(&app.AlwaysOnTop, w.AlwaysOnTop, !explicit(FlagAlwaysOnTop))
	setValue(&app.Resizable, w.Resizable, !explicit(FlagResizable))
	setBound(&app.MinWidth, w.MinWidth, !explicit(FlagMinWidth))
	setBound(&app.MinHeight, w.MinHeight, !explicit(FlagMinHeight))
	setBound(&app.MaxWidth, w.MaxWidth, !explicit(FlagMaxWidth))
	setBound(&app.MaxHeight, w.MaxHeight, !explicit(FlagMaxHeight))
	setValue(&app.OpenDevtools, w.OpenDevtools, !explicit(FlagOpenDevtools))

	external := strings.TrimSpace(p.Frontend.ExternalHTTP)
	if external == "" {
		return nil
	}
	port, err := externalPort(external)
	if err != nil {
		return err
	}
	if !explicit(FlagExternal) {
		app.External = true
	}
	if !explicit(FlagPort) {
		app.Port = port
	}
	return nil
}

func externalPort(raw string) (uint16, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("parse frontend.external_http %q: %w", raw, err)
	}
	if u.Port() == "" {
		return 0, fmt.Errorf("frontend.external_http %q has no port", raw)
	}
	n, err := strconv.ParseUint(u.Port(), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("frontend.external_http %q: invalid port: %w", raw, err)
	}
	return uint16(n), nil
}

func setValue[T any](dst *T, src *T, ok bool) {
	if ok && src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string, ok bool) {
	if ok && src != nil && strings.TrimSpace(*src) != "" {
		*dst = strings.TrimSpace(*src)
	}
}

func setBound(dst *Bound, src *uint32, ok bool) {
	if ok && src != nil {
		*dst = BoundOf(*src)
	}
}
