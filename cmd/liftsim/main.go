package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"github.com/sondresk/liftsim/internal/dispatch"
	"github.com/sondresk/liftsim/internal/logger"
	"github.com/sondresk/liftsim/internal/simcfg"
	"github.com/sondresk/liftsim/internal/simnet"
	"github.com/sondresk/liftsim/internal/simutils"
)

var Logger = logger.GetLogger()

func main() {
	opts := simutils.ProcessCmdArgs()

	cfg := simcfg.Default()
	if opts.ConfigPath != "" {
		loaded, err := simcfg.Load(opts.ConfigPath)
		if err != nil {
			Logger.Fatal().Msgf("Could not load config %s: %v", opts.ConfigPath, err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(opts.EnvPath)
	opts.ApplyTo(&cfg)

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		Logger.Fatal().Msgf("Invalid configuration: %v", err)
	}

	// Starting Programme
	Logger.Info().Msg("Starting Elevator Simulation")
	Logger.Info().Msgf("Run %s, version %s", opts.Identifier, simutils.GetGitHash())
	Logger.Info().Msgf("Floors 0..%d, capacity %d, arrival rate %.2f, seed %d",
		cfg.MaxFloor, cfg.Capacity, cfg.ArrivalRate, cfg.Seed)

	d, err := dispatch.New(cfg)
	if err != nil {
		Logger.Fatal().Msgf("Could not create dispatcher: %v", err)
	}

	if opts.Broadcast != "" {
		broadcast := simnet.NewSnapshotBroadcast(opts.Broadcast)
		if err := broadcast.Start(opts.TickPeriod, d.Latest); err != nil {
			Logger.Fatal().Msgf("Could not start snapshot broadcast: %v", err)
		}
		defer broadcast.Stop()
	}

	if opts.Manual {
		runManual(d, opts.Ticks)
	} else {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		d.Run(ctx, opts.TickPeriod, opts.Ticks)
	}

	Logger.Info().Msgf("Simulation over after %d ticks: %d passengers created, %d delivered",
		d.Tick(), d.CreatedCount(), d.ArrivedCount())
}

// runManual advances one tick per keypress and draws the building after
// each one. Quit with q, Esc or Ctrl-C.
func runManual(d *dispatch.Dispatcher, maxTicks uint64) {
	Logger.Info().Msg("Manual mode: press space or enter to advance, q to quit")

	for {
		char, key, err := keyboard.GetSingleKey()
		if err != nil {
			Logger.Error().Msgf("Error reading keyboard: %v", err)
			return
		}
		if char == 'q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
			return
		}

		snap := d.Step()
		snap.PrintTo(Logger)

		if maxTicks > 0 && d.Tick() >= maxTicks {
			return
		}
	}
}
