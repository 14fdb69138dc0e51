// Package logging provides structured logging using uber/zap.
//
// Two output modes:
//   - Production: JSON lines on stderr
//   - Development: colored console output (--dev or TAUPY_LOG_DEV=1)
//
// Components log through named children so every line carries its origin:
//
//	logger := logging.NewDefault()
//	srv := logger.Component("assets")
//	srv.Info("Serving", zap.String("root", root))
package logging
