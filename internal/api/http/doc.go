// Package http holds the gin handlers of the asset server.
package http
