package bundle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

// ErrLoaderNotFound means neither the build artifacts nor the fallback
// directory hold a loader for the requested architecture.
var ErrLoaderNotFound = errors.New("native loader not found")

// Options locates and places the native loader library.
type Options struct {
	BuildDir    string // searched for webview2-com-sys*/out/<arch>/
	FallbackDir string // prebuilt copy, used when the build has none
	OutputDir   string // copy destination
	Arch        string // GOARCH; empty means runtime.GOARCH
}

// Result describes a completed copy.
type Result struct {
	Source      string
	Destination string
	Fallback    bool
}

// Pattern returns the glob matched under BuildDir for the architecture.
func (o Options) Pattern() string {
	arch := o.Arch
	if arch == "" {
		arch = runtime.GOARCH
	}
	return path.Join(paths.LoaderCratePrefix+"*", "out", paths.ArchTag(arch), paths.LoaderName)
}

// Locate finds the loader, preferring build artifacts over the fallback.
// Several crate directories are resolved by name order.
func Locate(opts Options) (source string, fallback bool, err error) {
	if opts.BuildDir != "" {
		matches, err := doublestar.Glob(os.DirFS(opts.BuildDir), opts.Pattern(), doublestar.WithFilesOnly())
		if err != nil {
			return "", false, fmt.Errorf("search %s: %w", opts.BuildDir, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return filepath.Join(opts.BuildDir, filepath.FromSlash(matches[0])), false, nil
		}
	}

	if opts.FallbackDir != "" {
		candidate := filepath.Join(opts.FallbackDir, paths.LoaderName)
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("stat fallback loader: %w", err)
		}
	}

	return "", false, ErrLoaderNotFound
}

// Copy locates the loader and copies it into OutputDir, creating the
// directory when needed.
func Copy(opts Options) (Result, error) {
	source, fallback, err := Locate(opts)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	dest := filepath.Join(opts.OutputDir, paths.LoaderName)
	if err := copyFile(source, dest); err != nil {
		return Result{}, err
	}

	return Result{Source: source, Destination: dest, Fallback: fallback}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open loader: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy loader: %w", err)
	}
	return out.Close()
}
