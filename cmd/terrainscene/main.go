// Command terrainscene renders a heightmap terrain with a skybox, a textured
// vehicle and a spinning cube.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/xlab/closer"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scene/internal/app"
	"github.com/Faultbox/terrain-scene/internal/config"
	"github.com/Faultbox/terrain-scene/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	closer.Bind(logger.Sync)

	logger.Info("=== Terrain Scene ===")

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("initialization failed", zap.Error(err))
		closer.Exit(1)
	}

	// On SIGINT the loop finishes its frame and releases GPU state on this thread.
	done := make(chan struct{})
	closer.Bind(func() {
		a.Stop()
		<-done
	})

	runErr := a.Run()
	a.Close()
	close(done)

	if runErr != nil {
		logger.Error("frame loop stopped", zap.Error(runErr))
		closer.Exit(1)
	}
	closer.Close()
}
