//go:build cgo

// Package main builds the shared-library entry point (environment mode).
//
//	go build -buildmode=c-shared -o lakeengine.so ./cmd/lakeengine
//
// Exports:
//   - LakeEngineRun: reads TAUPY_WINDOW_* and TAUPY_LOG_* variables, starts
//     the asset server unless TAUPY_WINDOW_EXTERNAL is set, and runs the
//     window on the calling thread.
//   - ProtectionInit: the fail-closed startup gate; the host calls it before
//     LakeEngineRun.
//
// Environment values that are missing or unparsable fall back to defaults.
package main
