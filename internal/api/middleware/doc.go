// Package middleware holds gin middleware shared by the asset server.
package middleware
