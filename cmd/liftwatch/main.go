package main

import (
	"github.com/sondresk/liftsim/internal/logger"
	"github.com/sondresk/liftsim/internal/simnet"
	"github.com/sondresk/liftsim/internal/simutils"
)

var Logger = logger.GetLogger()

func main() {
	opts := simutils.ProcessCmdArgs()

	if opts.Listen == "" {
		Logger.Fatal().Msg("No address to listen on, pass -listen host:port")
	}

	// Starting Programme
	Logger.Info().Msg("Starting Simulation Watcher")
	Logger.Info().Msgf("Run %s, version %s", opts.Identifier, simutils.GetGitHash())

	listen := simnet.NewSnapshotListen(opts.Listen)
	if err := listen.Start(); err != nil {
		Logger.Fatal().Msgf("Could not listen on %s: %v", opts.Listen, err)
	}
	defer listen.Stop()

	for snap := range listen.Snapshots {
		snap.PrintTo(Logger)
	}
}
