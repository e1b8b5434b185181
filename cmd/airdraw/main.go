package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tacusci/logging/v2"
	"github.com/tauraamui/airdraw/pkg/airdraw"
	"github.com/tauraamui/airdraw/pkg/configdef"
	"github.com/tauraamui/airdraw/pkg/log"
	"github.com/tauraamui/airdraw/pkg/video"
	"github.com/tauraamui/airdraw/pkg/vision/visionbackend"
)

func init() {
	logging.CallbackLabelLevel = 5
	logging.ColorLogLevelLabelOnly = true
	loggingLevel := os.Getenv("AIRDRAW_LOGGING_LEVEL")

	switch strings.ToLower(loggingLevel) {
	case "info":
		logging.CurrentLoggingLevel = logging.InfoLevel
	case "warn":
		logging.CurrentLoggingLevel = logging.WarnLevel
	case "debug":
		logging.CurrentLoggingLevel = logging.DebugLevel
		logging.CallbackLabel = true
	default:
		logging.CurrentLoggingLevel = logging.WarnLevel
	}
}

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	backendType := os.Getenv("AIRDRAW_BACKEND")
	app, err := airdraw.NewApp(
		configdef.DefaultResolver(),
		video.ResolveBackend(backendType),
		visionbackend.Resolve(backendType),
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		killSignal := <-interrupt
		fmt.Print("\r")
		log.Error("Received signal: %s", killSignal)
		cancel()
	}()

	log.Info("Starting air canvas...")
	if err := app.Run(ctx); err != nil {
		log.Fatal(err.Error())
	}

	log.Info("Shutdown successful... BYE! 👋")
}
