/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/kestrel/engine"
	"github.com/spaghettifunk/kestrel/engine/core"
	"github.com/spaghettifunk/kestrel/testbed"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the application configuration")
	flag.Parse()

	config, err := engine.LoadApplicationConfig(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		core.LogWarn("configuration %s not found, using defaults", *configPath)
		config, err = engine.DefaultApplicationConfig(), nil
	}
	if err != nil {
		core.LogFatal("invalid configuration: %s", err)
	}

	tb, err := testbed.NewTestGame(config)
	if err != nil {
		core.LogFatal(err.Error())
	}

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("failed to initialize the engine: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the loop owns the GL context, so signals only ask it to stop
	go func() {
		<-sigCh
		e.RequestQuit()
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal(runErr.Error())
	}
}
