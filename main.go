/*
Headless orbit camera demo: replays a scripted input sequence and logs the
resulting matrices. With a config path it keeps running and applies config
edits until interrupted.

	go run . [config.toml]
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/orbitview/engine"
	"github.com/spaghettifunk/orbitview/engine/core"
	"github.com/spaghettifunk/orbitview/testbed"
)

func main() {
	appConfig := &engine.ApplicationConfig{}
	if len(os.Args) > 1 {
		appConfig.ConfigPath = os.Args[1]
	}

	e, err := engine.New(appConfig)
	if err != nil {
		core.LogFatal("%s", err)
	}
	if err := e.Initialize(); err != nil {
		core.LogFatal("%s", err)
	}

	tb := testbed.NewTestGame(e, testbed.DefaultScript())
	if err := tb.Run(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("%s", err)
	}

	reloads := e.Reloads()
	if reloads == nil {
		_ = e.Shutdown()
		return
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	core.LogInfo("watching %s, Ctrl+C to quit", appConfig.ConfigPath)
	for {
		select {
		case cfg, ok := <-reloads:
			if !ok {
				return
			}
			if err := e.ApplyConfig(cfg); err != nil {
				core.LogWarn("reload rejected: %s", err)
				continue
			}
			if _, err := e.Frame(); err != nil {
				core.LogError("%s", err)
			}
		case <-sigCh:
			if err := e.Shutdown(); err != nil {
				core.LogError("%s", err)
			}
			return
		}
	}
}
