// Package cli defines the taupy command tree.
//
//	taupy [flags]          open the window (argument mode)
//	taupy inspect          list the dist directory
//	taupy bundle           copy the WebView2 loader into a build
//
// The native surface is injected so the tree can be exercised without cgo.
package cli
