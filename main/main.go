package main

import (
	reportBot "github.com/olegmokeev23-byte/Report-Bot-Discord"
	"github.com/olegmokeev23-byte/Report-Bot-Discord/config"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	reportBot.StartBot()
	defer reportBot.ShutdownBot()

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP, os.Interrupt)
	sig := <-shutdownSignal

	config.Logger.Debugw("received shutdown signal",
		"signal", sig,
	)
}
