// Package app launches one TauPy window session.
//
// Run ties the pieces together in order:
//  1. resolve the dist root once (override or <cwd>/dist)
//  2. bind and start the asset server unless the frontend is external
//  3. run the window event loop on the calling goroutine
//  4. shut the server down and log a request summary
//
// The window always loads http://localhost:<port> with the same port the
// server bound.
//
// Example Usage:
//
//	err := app.Run(ctx, app.Options{
//	    Config:  config.FromEnv(),
//	    Surface: surface.New,
//	    Logger:  logger,
//	})
package app
