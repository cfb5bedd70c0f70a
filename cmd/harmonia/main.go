package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"harmonia/internal/app"
	"harmonia/internal/config"
	"harmonia/internal/debug"
	"harmonia/internal/fonts"
	"harmonia/internal/graphics"
	"harmonia/internal/layout"
	"harmonia/internal/logger"
	"harmonia/internal/scene"
	"harmonia/internal/simulation"
	"harmonia/internal/ui"
)

func main() {
	flags, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Cause(err) == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	prefs, cfgErr := config.Load(flags.ConfigPath)
	log := logger.NewAt(prefs.LogPath)
	if cfgErr != nil {
		log.Warnf("%v; using defaults", cfgErr)
	}
	if err := config.LoadEnv(".env"); err != nil {
		log.Warnf("%v", err)
	}
	if err := config.ApplyEnv(&prefs, os.Getenv); err != nil {
		log.Warnf("%v", err)
	}
	if err := flags.Apply(&prefs); err != nil {
		fatal(log, err)
	}

	l, err := layout.Load(prefs.Layout)
	if err != nil {
		fatal(log, err)
	}

	var opts []simulation.Option
	if prefs.Seed != 0 {
		opts = append(opts, simulation.WithSeed(prefs.Seed))
	}
	newRenderer := func(l *layout.Layout) app.Renderer { return scene.New(l) }
	bg := app.NewBackground(l, newRenderer, log, opts...)
	host := app.NewHost(bg, prefs.Mode, log)

	win := graphics.NewWindow(prefs.Window)
	win.Open()

	engine := ui.New()
	if prefs.Stylesheet != "" {
		if err := engine.LoadCSS(prefs.Stylesheet); err != nil {
			log.Warnf("%v", err)
		}
	}
	dbg := debug.New()
	dbg.ShowFPS, dbg.ShowMemAlloc, dbg.ShowStats = prefs.ShowFPS, prefs.ShowMemAlloc, prefs.ShowStats
	if path, err := fonts.Find(fonts.BaseDirs(), prefs.Font); err == nil {
		if err := engine.LoadFont(path); err != nil {
			log.Warnf("%v", err)
		}
		dbg.SetFont(engine.Font())
	}
	dbg.Stats = func() debug.Stats {
		sim := bg.Simulation()
		if sim == nil {
			return debug.Stats{Mode: host.Mode().String()}
		}
		return debug.Stats{
			Mode:      host.Mode().String(),
			LightsOn:  sim.Lights.On,
			Particles: sim.Smoke.Len(),
			Resets:    sim.Smoke.Resets(),
			Frames:    sim.Frames(),
		}
	}

	host.Start(win)
	view := ui.NewSelectorView(engine, host.Selector())
	log.Infof("harmonia started in %s mode", host.Mode())

	draw := func() {
		bg.Draw()
		view.Draw()
		dbg.Draw()
	}
	teardown := func() {
		host.Stop()
		engine.Close()
		log.Infof("harmonia stopped")
	}
	win.Run(host.Update, draw, teardown)
}

func fatal(log *logger.Logger, err error) {
	log.Errorf("%v", err)
	fmt.Fprintln(os.Stderr, "harmonia:", err)
	os.Exit(1)
}
