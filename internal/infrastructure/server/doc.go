// Package server runs the loopback asset server.
//
// Every GET or HEAD path is looked up under the dist root: 200 with the raw
// bytes, an empty 404 when missing, an empty 500 when unreadable. No
// Content-Type header is sent. Requests are handled one at a time.
//
// Server exposes Done, Err and Shutdown so the launcher can stop it when the
// window closes:
//
//	srv := server.New(server.FromApp(cfg.App, root, false), logger, metrics)
//	if err := srv.Start(); err != nil {
//		return err // port in use
//	}
//	defer srv.Shutdown(ctx)
package server
