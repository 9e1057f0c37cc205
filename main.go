/*
This is an example of application that will use the
engine packages: it loads an eye configuration, prints the
per-eye projections and keeps them in sync with the file.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/vrmath/engine/components"
	"github.com/spaghettifunk/vrmath/engine/core"
	"github.com/spaghettifunk/vrmath/engine/math"
	"github.com/spaghettifunk/vrmath/engine/systems"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML eye configuration")
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			core.LogFatal("loading config: %s", err)
		}
	}
	if cfg.LogLevel != "" {
		if err := core.SetLogLevel(cfg.LogLevel); err != nil {
			core.LogFatal("%s", err)
		}
	}

	ps, err := systems.NewProjectionSystem(cfg)
	if err != nil {
		core.LogFatal("%s", err)
	}

	sample := math.NewVec3d(0.0, 0.0, -1.0)
	for _, name := range []string{components.EyeLeft, components.EyeRight} {
		eye, err := ps.Acquire(name)
		if err != nil {
			core.LogFatal("%s", err)
		}
		proj := eye.GetProjection()
		core.LogInfo("%s eye projection:\n%s", name, core.SDump(proj.M))

		ndc, err := ps.ProjectToEye(name, sample)
		if err != nil {
			core.LogFatal("%s", err)
		}
		core.LogInfo("%s eye: tracking point %v -> ndc %v", name, sample, ndc)
		ps.Release(name)
	}

	if *configPath == "" || !cfg.Watch {
		return
	}

	// signal channel to capture system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	core.EventRegister(core.EVENT_CODE_PROJECTION_CHANGED, ps, onProjectionChanged)
	core.EventRegister(core.EVENT_CODE_RELOAD_FAILED, ps, onReloadFailed)
	defer core.EventShutdown()

	core.LogInfo("watching %s for changes", *configPath)
	if err := ps.Watch(ctx, *configPath); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

func onProjectionChanged(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	ps := listenerInst.(*systems.ProjectionSystem)
	for _, name := range []string{components.EyeLeft, components.EyeRight} {
		proj, err := ps.Projection(name)
		if err != nil {
			core.LogError("%s", err)
			continue
		}
		core.LogInfo("%s eye projection (generation %s, near %g, far %g):\n%s",
			name, data.Data.C[0], data.Data.F32[0], data.Data.F32[1], core.SDump(proj.M))
	}
	return true
}

func onReloadFailed(code core.SystemEventCode, sender interface{}, listenerInst interface{}, data core.EventContext) bool {
	core.LogWarn("keeping previous projections, %s could not be applied: %s", data.Data.C[0], data.Data.C[1])
	return true
}
