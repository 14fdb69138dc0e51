/*
Package monitoring collects Prometheus metrics for the asset server and the
window lifecycle.

Metrics live on a private registry owned by each Metrics value. Nothing is
exposed over HTTP; the launcher logs a Snapshot summary when the window
closes.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	// later
	s := metrics.Snapshot()
	logger.Info("Served", zap.Int64("requests", s.TotalRequests))
*/
package monitoring
