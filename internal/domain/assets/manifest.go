package assets

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"

	"github.com/GriffinCanCode/taupy/internal/shared/paths"
)

// Entry describes one file in a dist root.
type Entry struct {
	Path string `json:"path" yaml:"path"`
	Size int64  `json:"size" yaml:"size"`
	MIME string `json:"mime" yaml:"mime"`
}

// Manifest summarizes the contents of a dist root.
type Manifest struct {
	Root       string  `json:"root" yaml:"root"`
	Entries    []Entry `json:"entries" yaml:"entries"`
	TotalBytes int64   `json:"total_bytes" yaml:"total_bytes"`
	HasIndex   bool    `json:"has_index" yaml:"has_index"`
}

// Scan walks root and lists every regular file whose slash-separated relative
// path matches pattern. An empty pattern matches everything. Entries are
// sorted by path. HasIndex reflects root/index.html regardless of pattern.
func Scan(ctx context.Context, root, pattern string) (Manifest, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return Manifest{}, fmt.Errorf("invalid pattern %q", pattern)
	}

	var (
		mu       sync.Mutex
		manifest = Manifest{Root: root}
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, rel); !ok {
				return nil
			}
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		mime := "application/octet-stream"
		if mtype, err := mimetype.DetectFile(p); err == nil {
			mime = mtype.String()
		}

		mu.Lock()
		manifest.Entries = append(manifest.Entries, Entry{Path: rel, Size: info.Size(), MIME: mime})
		manifest.TotalBytes += info.Size()
		if rel == paths.IndexFile {
			manifest.HasIndex = true
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return Manifest{}, fmt.Errorf("scan %s: %w", root, err)
	}

	if !manifest.HasIndex {
		if _, err := Load(root, ""); err == nil {
			manifest.HasIndex = true
		}
	}

	sort.Slice(manifest.Entries, func(i, j int) bool {
		return manifest.Entries[i].Path < manifest.Entries[j].Path
	})
	return manifest, nil
}
