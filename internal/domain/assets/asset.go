package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

var (
	// ErrNotFound means no regular file exists for the request path.
	ErrNotFound = errors.New("asset not found")
	// ErrOutsideRoot means the request path would resolve above the dist root.
	ErrOutsideRoot = errors.New("asset path escapes dist root")
)

// ReadError reports a file that exists but could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read asset %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Asset is one file loaded from the dist root.
type Asset struct {
	Path string
	Data []byte
}

// Resolve maps a URL path onto a file path under root. Leading slashes are
// stripped and an empty remainder means index.html. Paths that would leave
// root return ErrOutsideRoot.
func Resolve(root, urlPath string) (string, error) {
	rel := strings.TrimLeft(urlPath, "/")
	if rel == "" {
		rel = paths.IndexFile
	}

	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", ErrOutsideRoot
	}
	return filepath.Join(root, rel), nil
}

// Load resolves urlPath under root and reads the file in full.
// Directories count as missing.
func Load(root, urlPath string) (Asset, error) {
	path, err := Resolve(root, urlPath)
	if err != nil {
		return Asset{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if isMissing(err) {
			return Asset{}, ErrNotFound
		}
		return Asset{}, &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return Asset{}, ErrNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if isMissing(err) {
			return Asset{}, ErrNotFound
		}
		return Asset{}, &ReadError{Path: path, Err: err}
	}

	return Asset{Path: path, Data: data}, nil
}

// isMissing also treats a file used as a directory (index.html/x) as missing.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
