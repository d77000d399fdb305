package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ttacon/chalk"

	"github.com/lixenwraith/fruit-fighter/config"
	"github.com/lixenwraith/fruit-fighter/engine"
	"github.com/lixenwraith/fruit-fighter/network"
	"github.com/lixenwraith/fruit-fighter/service"
	"github.com/lixenwraith/fruit-fighter/status"
	"github.com/lixenwraith/fruit-fighter/system"
)

func main() {
	cfg, err := config.Parse("fruit-bridge", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fruit-bridge: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fruit-bridge: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Print(chalk.Red.Color(err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	reg := status.NewRegistry()

	game, err := engine.NewGame(engine.GameConfig{
		Status:      reg,
		GracePeriod: cfg.GracePeriod.Duration,
		Seed:        cfg.Seed,
		Width:       cfg.Width,
		Height:      cfg.Height,
	})
	if err != nil {
		return err
	}
	system.RegisterAll(game)

	scheduler, updateDone, err := engine.NewClockScheduler(game, cfg.FrameInterval.Duration, cfg.SpawnInterval.Duration)
	if err != nil {
		return err
	}

	netCfg := network.DefaultConfig()
	netCfg.Address = cfg.BridgeAddr
	netCfg.Width = cfg.Width
	netCfg.Height = cfg.Height

	hub, err := network.NewHub(netCfg, reg)
	if err != nil {
		return err
	}
	hub.SetAccessLog(os.Stderr)
	hub.SetHandlers(scheduler.Reset, game.PushResize)
	scheduler.AttachGestureSource(hub)

	services := service.NewHub()
	for _, svc := range []service.Service{
		&serverService{hub: hub, timeout: netCfg.ShutdownTimeout},
		&clockService{scheduler: scheduler},
		newPumpService(hub, game, updateDone),
	} {
		if err := services.Register(svc); err != nil {
			return err
		}
	}

	if err := services.StartAll(); err != nil {
		return err
	}
	log.Printf("game running %.0fx%.0f seed=%d", cfg.Width, cfg.Height, cfg.Seed)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	log.Print(chalk.Yellow.Color("received " + s.String() + ", shutting down"))

	services.StopAll()
	return nil
}
