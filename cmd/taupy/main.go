package main

import (
	"context"
	"os"
	"runtime"

	"github.com/GriffinCanCode/taupy/internal/cli"
	"github.com/GriffinCanCode/taupy/internal/infrastructure/surface"
)

func init() {
	// The window event loop must own the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(cli.Execute(context.Background(), surface.New))
}
