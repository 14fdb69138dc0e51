// Package assets maps request paths onto files in the dist root.
//
// Mapping: leading slashes are stripped, an empty path becomes index.html,
// and the remainder is joined onto the root. Results are typed so callers
// can tell a missing file (ErrNotFound) from one that failed to read
// (*ReadError). Paths containing parent segments that would climb above the
// root are refused with ErrOutsideRoot. Symlinks inside the root are followed
// as-is.
//
// Scan builds a Manifest of the root for the inspect command.
package assets
