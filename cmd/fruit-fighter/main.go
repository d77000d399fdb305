package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/fruit-fighter/config"
	"github.com/lixenwraith/fruit-fighter/core"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/input"
	"github.com/lixenwraith/fruit-fighter/render"
	"github.com/lixenwraith/fruit-fighter/status"
	"github.com/lixenwraith/fruit-fighter/system"
)

func main() {
	cfg, err := config.Parse("fruit-fighter", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruit-fighter: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fruit-fighter: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fruit-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}
	// Crash paths restore the terminal before printing the report
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	reg := status.NewRegistry()
	mapper := render.CellMapper{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
	cols, rows := screen.Size()
	width, height := mapper.Viewport(cols, rows)

	game, err := engine.NewGame(engine.GameConfig{
		Status:      reg,
		GracePeriod: cfg.GracePeriod.Duration,
		Seed:        cfg.Seed,
		Width:       width,
		Height:      height,
	})
	if err != nil {
		return err
	}
	system.RegisterAll(game)

	scheduler, updateDone, err := engine.NewClockScheduler(game, cfg.FrameInterval.Duration, cfg.SpawnInterval.Duration)
	if err != nil {
		return err
	}
	mouse := input.NewMouseSource()
	scheduler.AttachGestureSource(mouse)

	renderer := render.NewTerminalRenderer(screen, mapper, cfg.ASCII, cfg.Debug, reg)
	machine := input.NewMachine(mapper)

	if err := scheduler.Start(); err != nil {
		return err
	}
	defer scheduler.Stop()
	log.Printf("started %.0fx%.0f seed=%d", width, height, cfg.Seed)

	events := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	renderer.RenderFrame(game.Snapshot())

	for {
		select {
		case ev := <-events:
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("quit at frame %d", game.Frame())
				return nil
			case input.IntentReset:
				machine.Reset()
				scheduler.Reset()
				renderer.RenderFrame(game.Snapshot())
			case input.IntentResize:
				screen.Sync()
				w, h := mapper.Viewport(intent.Cols, intent.Rows)
				game.PushResize(w, h)
			case input.IntentGesture:
				mouse.Feed(intent.Point)
			}

		case <-updateDone:
			renderer.RenderFrame(game.Snapshot())
		}
	}
}
