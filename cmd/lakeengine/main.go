package main

import "C"

import (
	"context"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/taupy/internal/app"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/config"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/logging"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/surface"
	"github.com/GriffinCanCode/taupy/internal/protection"
)

// LakeEngineRun opens the window using TAUPY_WINDOW_* configuration and
// blocks until it closes. It returns 0 on a clean close and 1 on a startup
// failure. Call it from the host's main thread.
//
//export LakeEngineRun
func LakeEngineRun() C.int {
	cfg := config.FromEnv()

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		logger = logging.NewDefault()
	}
	defer func() { _ = logger.Sync() }()

	err = app.Run(context.Background(), app.Options{
		Config:  cfg,
		Surface: surface.New,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("Window host failed", zap.Error(err))
		return 1
	}
	return 0
}

// ProtectionInit runs the tamper gate. It returns 0 when the gate passes and
// does not return otherwise.
//
//export ProtectionInit
func ProtectionInit() C.int {
	return C.int(protection.Init())
}

func main() {}
