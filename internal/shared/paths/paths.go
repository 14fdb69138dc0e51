// Package paths provides the standard filesystem locations shared by the window
// host, the asset server and the packaging commands.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dist layout
const (
	// DistSegment is the directory joined onto the working directory when no
	// explicit dist override is configured.
	DistSegment = "dist"

	// IndexFile is served for the root request.
	IndexFile = "index.html"

	// ProjectFile is the optional project configuration looked up in the
	// working directory.
	ProjectFile = "taupy.toml"
)

// Native loader layout
const (
	// LoaderName is the platform loader library shipped next to the executable.
	LoaderName = "WebView2Loader.dll"

	// LoaderCratePrefix prefixes the build artifact directories that may carry
	// an architecture specific loader.
	LoaderCratePrefix = "webview2-com-sys"
)

// getwd is swapped in tests.
var getwd = os.Getwd

// ResolveDist returns the dist root. A non-empty override is used verbatim;
// otherwise the current working directory joined with DistSegment.
func ResolveDist(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return filepath.Join(cwd, DistSegment), nil
}

// IndexPath returns the index document for a dist root.
func IndexPath(root string) string {
	return filepath.Join(root, IndexFile)
}

// ArchTag maps a GOARCH value onto the directory tag used by loader artifacts.
// Unknown architectures pass through unchanged.
func ArchTag(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "arm64":
		return "arm64"
	case "386":
		return "x86"
	default:
		return goarch
	}
}
