// Package main is the taupy executable (argument mode).
//
// It serves a pre-built web frontend from ./dist on a local port and shows it
// in a native window. Configuration comes from flags and an optional
// taupy.toml; the environment is not consulted.
//
// Usage:
//
//	# Serve ./dist on :8000 in an 800x600 window
//	taupy
//
//	# Custom title, size and port, window locked to its size
//	taupy --title "Notes" --width 1024 --height 768 --port 9000 --resizable=false
//
//	# A dev server is already listening on 5173
//	taupy --external --port 5173
//
//	# What would be served
//	taupy inspect --pattern '**/*.js' -o json
//
// Building the window requires cgo and the platform web view (WebKitGTK,
// WKWebView or WebView2).
package main
